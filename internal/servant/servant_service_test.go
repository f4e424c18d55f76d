package servant

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/buildsbyrafael/datapersistence/internal/importer"
	"github.com/buildsbyrafael/datapersistence/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	insertChunkFn func(ctx context.Context, chunk []Servidor) error
	findAllFn     func(ctx context.Context, offset, limit int) ([]Servidor, int64, error)
	findByIDFn    func(ctx context.Context, id int64) (*Servidor, error)
	deleteFn      func(ctx context.Context, id int64) error
}

func (f *fakeRepo) InsertChunk(ctx context.Context, chunk []Servidor) error {
	return f.insertChunkFn(ctx, chunk)
}
func (f *fakeRepo) FindAll(ctx context.Context, offset, limit int) ([]Servidor, int64, error) {
	return f.findAllFn(ctx, offset, limit)
}
func (f *fakeRepo) FindByID(ctx context.Context, id int64) (*Servidor, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

const servantHeader = "Id_SERVIDOR_PORTAL;NOME;CPF;DESCRICAO_CARGO;ORGSUP_EXERCICIO;ORG_EXERCICIO;REGIME_JURIDICO;JORNADA_DE_TRABALHO"

func TestImport_NormalizesAndLoads(t *testing.T) {
	payload := servantHeader + "\n" +
		"100;Maria Silva;***123**;Analista;ministerio x;orgao y;estatutario;40 horas\n"

	var inserted []Servidor
	repo := &fakeRepo{
		insertChunkFn: func(ctx context.Context, chunk []Servidor) error {
			inserted = append(inserted, chunk...)
			return nil
		},
	}

	svc := NewService(repo, importer.NewNoopEventPublisher())
	total, err := svc.Import(context.Background(), strings.NewReader(payload))

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	if assert.Len(t, inserted, 1) {
		assert.Equal(t, int64(100), inserted[0].IDServidor)
		assert.Equal(t, "Maria Silva", inserted[0].Nome)
		assert.Equal(t, "MINISTERIO X", inserted[0].OrgSuperior)
		assert.Equal(t, "ESTATUTARIO", inserted[0].Regime)
	}
}

func TestImport_DropsNonNumericIDs(t *testing.T) {
	payload := servantHeader + "\n" +
		"abc;A;1;C;O;O;R;J\n" +
		";B;2;C;O;O;R;J\n" +
		"200;C;3;C;O;O;R;J\n"

	var inserted []Servidor
	repo := &fakeRepo{
		insertChunkFn: func(ctx context.Context, chunk []Servidor) error {
			inserted = append(inserted, chunk...)
			return nil
		},
	}

	svc := NewService(repo, importer.NewNoopEventPublisher())
	total, err := svc.Import(context.Background(), strings.NewReader(payload))

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, inserted, 1)
	assert.Equal(t, int64(200), inserted[0].IDServidor)
}

func TestImport_DedupsWithinBatch(t *testing.T) {
	payload := servantHeader + "\n" +
		"300;Primeira;1;C;O;O;R;J\n" +
		"300;Segunda;2;C;O;O;R;J\n"

	var inserted []Servidor
	repo := &fakeRepo{
		insertChunkFn: func(ctx context.Context, chunk []Servidor) error {
			inserted = append(inserted, chunk...)
			return nil
		},
	}

	svc := NewService(repo, importer.NewNoopEventPublisher())
	total, err := svc.Import(context.Background(), strings.NewReader(payload))

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	if assert.Len(t, inserted, 1) {
		assert.Equal(t, "Primeira", inserted[0].Nome)
	}
}

func TestServidor_PrimaryKeyIsExternallySupplied(t *testing.T) {
	field, ok := reflect.TypeOf(Servidor{}).FieldByName("IDServidor")
	if assert.True(t, ok) {
		tag := field.Tag.Get("gorm")
		assert.Contains(t, tag, "primaryKey")
		assert.Contains(t, tag, "autoIncrement:false",
			"the id comes from the export; migration must not attach a sequence")
	}
}

func TestImport_MissingColumnAborts(t *testing.T) {
	payload := "Id_SERVIDOR_PORTAL;NOME\n100;Maria\n"

	repo := &fakeRepo{
		insertChunkFn: func(ctx context.Context, chunk []Servidor) error {
			t.Fatal("insert should not be reached")
			return nil
		},
	}

	svc := NewService(repo, importer.NewNoopEventPublisher())
	total, err := svc.Import(context.Background(), strings.NewReader(payload))

	assert.Equal(t, 0, total)
	var appErr *apperror.AppError
	if assert.True(t, errors.As(err, &appErr)) {
		assert.Equal(t, apperror.CodeSchemaError, appErr.Code)
	}
}
