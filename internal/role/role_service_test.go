package role

import (
	"context"
	"strings"
	"testing"

	"github.com/buildsbyrafael/datapersistence/internal/importer"

	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	insertCatalogFn    func(ctx context.Context, chunk []CargoFuncao) error
	insertAssignmentFn func(ctx context.Context, chunk []FuncaoCargo) error
	findAllCatalogFn   func(ctx context.Context) ([]CargoFuncao, error)
	findCatalogFn      func(ctx context.Context, offset, limit int) ([]CargoFuncao, int64, error)
	findAssignmentsFn  func(ctx context.Context, servidorID int64, offset, limit int) ([]FuncaoCargo, int64, error)
}

func (f *fakeRepo) InsertCatalogChunk(ctx context.Context, chunk []CargoFuncao) error {
	return f.insertCatalogFn(ctx, chunk)
}
func (f *fakeRepo) InsertAssignmentChunk(ctx context.Context, chunk []FuncaoCargo) error {
	return f.insertAssignmentFn(ctx, chunk)
}
func (f *fakeRepo) FindAllCatalog(ctx context.Context) ([]CargoFuncao, error) {
	return f.findAllCatalogFn(ctx)
}
func (f *fakeRepo) FindCatalog(ctx context.Context, offset, limit int) ([]CargoFuncao, int64, error) {
	return f.findCatalogFn(ctx, offset, limit)
}
func (f *fakeRepo) FindAssignments(ctx context.Context, servidorID int64, offset, limit int) ([]FuncaoCargo, int64, error) {
	return f.findAssignmentsFn(ctx, servidorID, offset, limit)
}

const catalogHeader = "CLASSE_CARGO;REFERENCIA_CARGO;PADRAO_CARGO;NIVEL_CARGO;FUNCAO;DESCRICAO_CARGO;NIVEL_FUNCAO"

const assignmentHeader = "Id_SERVIDOR_PORTAL;DATA_INGRESSO_CARGOFUNCAO;CLASSE_CARGO;REFERENCIA_CARGO;PADRAO_CARGO;NIVEL_CARGO;FUNCAO;DESCRICAO_CARGO;NIVEL_FUNCAO"

func strPtr(s string) *string { return &s }

func TestImportCatalog_DedupsByCompositeKey(t *testing.T) {
	payload := catalogHeader + "\n" +
		"A;1;2;3;FCT;ANALISTA;4\n" +
		"A;1;2;3;FCT;ANALISTA;4\n" +
		"B;1;2;3;FCT;ANALISTA;4\n"

	var inserted []CargoFuncao
	repo := &fakeRepo{
		insertCatalogFn: func(ctx context.Context, chunk []CargoFuncao) error {
			inserted = append(inserted, chunk...)
			return nil
		},
	}

	svc := NewService(repo, importer.NewNoopEventPublisher())
	total, err := svc.ImportCatalog(context.Background(), strings.NewReader(payload))

	assert.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, inserted, 2)
}

func TestImportAssignments_ResolvesCatalogID(t *testing.T) {
	catalogo := []CargoFuncao{
		{
			IDCargoFuncao:  7,
			ClasseCargo:    strPtr("A"),
			PadraoCargo:    int64Ptr(2),
			NivelCargo:     int64Ptr(3),
			DescricaoCargo: "ANALISTA",
		},
	}

	payload := assignmentHeader + "\n" +
		"100;15/03/2023;A;1;2;3;FCT;ANALISTA;4\n"

	var inserted []FuncaoCargo
	repo := &fakeRepo{
		findAllCatalogFn: func(ctx context.Context) ([]CargoFuncao, error) { return catalogo, nil },
		insertAssignmentFn: func(ctx context.Context, chunk []FuncaoCargo) error {
			inserted = append(inserted, chunk...)
			return nil
		},
	}

	svc := NewService(repo, importer.NewNoopEventPublisher())
	total, err := svc.ImportAssignments(context.Background(), strings.NewReader(payload))

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	if assert.Len(t, inserted, 1) {
		assert.Equal(t, int64(100), inserted[0].IDServidor)
		assert.Equal(t, int64(7), inserted[0].IDCargoFuncao)
		assert.NotNil(t, inserted[0].DataIngressoFuncao)
	}
}

func TestImportAssignments_UnmatchedRowIsDropped(t *testing.T) {
	payload := assignmentHeader + "\n" +
		"100;15/03/2023;Z;1;9;9;FCT;INEXISTENTE;4\n"

	repo := &fakeRepo{
		findAllCatalogFn: func(ctx context.Context) ([]CargoFuncao, error) { return nil, nil },
		insertAssignmentFn: func(ctx context.Context, chunk []FuncaoCargo) error {
			t.Fatal("no assignment should be inserted")
			return nil
		},
	}

	svc := NewService(repo, importer.NewNoopEventPublisher())
	total, err := svc.ImportAssignments(context.Background(), strings.NewReader(payload))

	assert.NoError(t, err)
	assert.Equal(t, 0, total)
}

func int64Ptr(n int64) *int64 { return &n }
