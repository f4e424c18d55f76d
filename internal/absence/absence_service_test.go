package absence

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/buildsbyrafael/datapersistence/internal/importer"

	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	insertChunkFn func(ctx context.Context, chunk []Afastamento) error
	findAllFn     func(ctx context.Context, ano, mes, offset, limit int) ([]Afastamento, int64, error)
	deleteFn      func(ctx context.Context, id int64) error
}

func (f *fakeRepo) InsertChunk(ctx context.Context, chunk []Afastamento) error {
	return f.insertChunkFn(ctx, chunk)
}
func (f *fakeRepo) FindAll(ctx context.Context, ano, mes, offset, limit int) ([]Afastamento, int64, error) {
	return f.findAllFn(ctx, ano, mes, offset, limit)
}
func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

const absenceHeader = "Id_SERVIDOR_PORTAL;ANO;MES;DATA_INICIO_AFASTAMENTO"

func TestImport_StartDateAndDefaultDuration(t *testing.T) {
	payload := absenceHeader + "\n" +
		"100;2023;3;15/03/2023\n" +
		"200;2023;4;data invalida\n"

	var inserted []Afastamento
	repo := &fakeRepo{
		insertChunkFn: func(ctx context.Context, chunk []Afastamento) error {
			inserted = append(inserted, chunk...)
			return nil
		},
	}

	svc := NewService(repo, importer.NewNoopEventPublisher())
	total, err := svc.Import(context.Background(), strings.NewReader(payload))

	assert.NoError(t, err)
	assert.Equal(t, 2, total)
	if assert.Len(t, inserted, 2) {
		if assert.NotNil(t, inserted[0].InicioAfastamento) {
			assert.Equal(t, time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC), *inserted[0].InicioAfastamento)
		}
		assert.Equal(t, 1, inserted[0].DuracaoDias)

		assert.Nil(t, inserted[1].InicioAfastamento, "unparsable start date is absent, not an error")
		assert.Equal(t, 1, inserted[1].DuracaoDias)
	}
}

func TestFim_DerivedEndDate(t *testing.T) {
	inicio := time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)

	umDia := Afastamento{InicioAfastamento: &inicio, DuracaoDias: 1}
	if fim := umDia.Fim(); assert.NotNil(t, fim) {
		assert.Equal(t, inicio, *fim, "one-day leave ends on its start date")
	}

	dezDias := Afastamento{InicioAfastamento: &inicio, DuracaoDias: 10}
	if fim := dezDias.Fim(); assert.NotNil(t, fim) {
		assert.Equal(t, time.Date(2023, 3, 24, 0, 0, 0, 0, time.UTC), *fim)
	}

	semInicio := Afastamento{DuracaoDias: 1}
	assert.Nil(t, semInicio.Fim())
}
