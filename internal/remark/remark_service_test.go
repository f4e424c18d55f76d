package remark

import (
	"context"
	"strings"
	"testing"

	"github.com/buildsbyrafael/datapersistence/internal/importer"

	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	insertChunkFn func(ctx context.Context, chunk []Observacao) error
	findAllFn     func(ctx context.Context, ano, mes, offset, limit int) ([]Observacao, int64, error)
	deleteFn      func(ctx context.Context, id int64) error
}

func (f *fakeRepo) InsertChunk(ctx context.Context, chunk []Observacao) error {
	return f.insertChunkFn(ctx, chunk)
}
func (f *fakeRepo) FindAll(ctx context.Context, ano, mes, offset, limit int) ([]Observacao, int64, error) {
	return f.findAllFn(ctx, ano, mes, offset, limit)
}
func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

const remarkHeader = "Id_SERVIDOR_PORTAL;ANO;MES;OBSERVACAO"

func TestImport_DerivesCeilingFlag(t *testing.T) {
	payload := remarkHeader + "\n" +
		"100;2023;3;REMUNERACAO ACIMA DO TETO CONSTITUCIONAL\n" +
		"200;2023;3;remuneracao acima do teto constitucional\n" +
		"300;2023;3;Verba indenizatoria\n"

	var inserted []Observacao
	repo := &fakeRepo{
		insertChunkFn: func(ctx context.Context, chunk []Observacao) error {
			inserted = append(inserted, chunk...)
			return nil
		},
	}

	svc := NewService(repo, importer.NewNoopEventPublisher())
	total, err := svc.Import(context.Background(), strings.NewReader(payload))

	assert.NoError(t, err)
	assert.Equal(t, 3, total)
	if assert.Len(t, inserted, 3) {
		assert.True(t, inserted[0].FlagTeto)
		assert.True(t, inserted[1].FlagTeto, "flag comparison is case-insensitive")
		assert.False(t, inserted[2].FlagTeto)
	}
}

func TestImport_DropsRowsWithoutRemarkText(t *testing.T) {
	payload := remarkHeader + "\n" +
		"100;2023;3;\n" +
		"200;2023;3;   \n" +
		"300;2023;3;Exercicio decisao judicial\n"

	var inserted []Observacao
	repo := &fakeRepo{
		insertChunkFn: func(ctx context.Context, chunk []Observacao) error {
			inserted = append(inserted, chunk...)
			return nil
		},
	}

	svc := NewService(repo, importer.NewNoopEventPublisher())
	total, err := svc.Import(context.Background(), strings.NewReader(payload))

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	if assert.Len(t, inserted, 1) {
		assert.Equal(t, int64(300), inserted[0].IDServidor)
		assert.Equal(t, "Exercicio decisao judicial", inserted[0].Observacao)
	}
}
