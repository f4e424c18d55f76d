package role

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/buildsbyrafael/datapersistence/internal/events"
	"github.com/buildsbyrafael/datapersistence/internal/importer"
	"github.com/buildsbyrafael/datapersistence/internal/shared/contextutil"

	"go.uber.org/zap"
)

const (
	colID        = "Id_SERVIDOR_PORTAL"
	colIngresso  = "DATA_INGRESSO_CARGOFUNCAO"
	colClasse    = "CLASSE_CARGO"
	colReferencia = "REFERENCIA_CARGO"
	colPadrao    = "PADRAO_CARGO"
	colNivel     = "NIVEL_CARGO"
	colFuncao    = "FUNCAO"
	colDescricao = "DESCRICAO_CARGO"
	colNivelFn   = "NIVEL_FUNCAO"
)

type Service interface {
	ImportCatalog(ctx context.Context, r io.Reader) (int, error)
	ImportAssignments(ctx context.Context, r io.Reader) (int, error)
	GetCatalog(ctx context.Context, page, pageSize int) ([]CargoFuncaoResponse, int64, error)
	GetAssignments(ctx context.Context, servidorID int64, page, pageSize int) ([]FuncaoCargoResponse, int64, error)
}

type service struct {
	repo      Repository
	publisher importer.EventPublisher
}

func NewService(repo Repository, publisher importer.EventPublisher) Service {
	return &service{repo: repo, publisher: publisher}
}

// ImportCatalog normalizes role-descriptor rows, deduplicates them by the
// full seven-field logical key (first occurrence wins) and loads the rest.
// A sanitize pass nils any residual numeric outside int64 range before the
// records reach the store.
func (s *service) ImportCatalog(ctx context.Context, r io.Reader) (int, error) {
	logger := contextutil.GetLogger(ctx)
	start := time.Now()

	table, err := importer.Read(r)
	if err != nil {
		return 0, err
	}
	if err := table.Require(
		colClasse, colReferencia, colPadrao, colNivel,
		colFuncao, colDescricao, colNivelFn,
	); err != nil {
		return 0, err
	}

	seen := make(map[string]struct{}, table.Len())
	records := make([]CargoFuncao, 0, table.Len())

	for _, row := range table.Rows() {
		cargo := CargoFuncao{
			ClasseCargo:     importer.CleanCategory(table.Field(row, colClasse)),
			ReferenciaCargo: importer.ParseRoleNumber(table.Field(row, colReferencia)),
			PadraoCargo:     importer.ParseRoleNumber(table.Field(row, colPadrao)),
			NivelCargo:      importer.ParseRoleNumber(table.Field(row, colNivel)),
			Funcao:          importer.CleanCategory(table.Field(row, colFuncao)),
			DescricaoCargo:  importer.CleanText(table.Field(row, colDescricao)),
			NivelFuncao:     importer.ParseRoleNumber(table.Field(row, colNivelFn)),
		}

		key := dedupKey(cargo)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		cargo.ReferenciaCargo = importer.SanitizeNumber(cargo.ReferenciaCargo)
		cargo.PadraoCargo = importer.SanitizeNumber(cargo.PadraoCargo)
		cargo.NivelCargo = importer.SanitizeNumber(cargo.NivelCargo)
		cargo.NivelFuncao = importer.SanitizeNumber(cargo.NivelFuncao)

		records = append(records, cargo)
	}

	total := importer.Load(ctx, records, importer.DefaultChunkSize, s.repo.InsertCatalogChunk)

	logger.Info("role catalog import finished",
		zap.Int("submitted", total),
		zap.Int("input_rows", table.Len()),
		zap.Int("distinct", len(records)),
	)

	_ = s.publisher.PublishImportCompleted(ctx, events.ImportCompletedEvent{
		Entity:    "cargofuncao",
		Rows:      total,
		ElapsedMS: time.Since(start).Milliseconds(),
		RequestID: contextutil.GetRequestID(ctx),
	})

	return total, nil
}

// ImportAssignments resolves each assignment row against an in-memory index
// of the existing catalog, keyed by (class, standard, level, description).
// The index is built once per run from a snapshot read; rows whose tuple
// matches no entry are dropped with a warning, never an error.
func (s *service) ImportAssignments(ctx context.Context, r io.Reader) (int, error) {
	logger := contextutil.GetLogger(ctx)
	start := time.Now()

	table, err := importer.Read(r)
	if err != nil {
		return 0, err
	}
	if err := table.Require(
		colID, colIngresso, colClasse, colReferencia,
		colPadrao, colNivel, colFuncao, colDescricao, colNivelFn,
	); err != nil {
		return 0, err
	}

	catalogo, err := s.repo.FindAllCatalog(ctx)
	if err != nil {
		return 0, err
	}

	index := make(map[string]int64, len(catalogo))
	for _, cargo := range catalogo {
		index[lookupKey(cargo.ClasseCargo, cargo.PadraoCargo, cargo.NivelCargo, cargo.DescricaoCargo)] = cargo.IDCargoFuncao
	}

	records := make([]FuncaoCargo, 0, table.Len())

	for _, row := range table.Rows() {
		rawID := importer.CleanText(table.Field(row, colID))
		if !importer.IsDigits(rawID) {
			continue
		}
		servidorID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			continue
		}

		descricao := importer.CleanText(table.Field(row, colDescricao))
		if descricao == "" {
			continue
		}

		classe := importer.CleanCategory(table.Field(row, colClasse))
		padrao := importer.ParseRoleNumber(table.Field(row, colPadrao))
		nivel := importer.ParseRoleNumber(table.Field(row, colNivel))

		cargoID, ok := index[lookupKey(classe, padrao, nivel, descricao)]
		if !ok {
			logger.Warn("role not found for assignment, row dropped",
				zap.Int64("id_servidor", servidorID),
				zap.String("descricao_cargo", descricao),
			)
			continue
		}

		records = append(records, FuncaoCargo{
			IDServidor:         servidorID,
			IDCargoFuncao:      cargoID,
			DataIngressoFuncao: importer.ParseDate(table.Field(row, colIngresso)),
		})
	}

	if len(records) == 0 {
		logger.Warn("no valid assignments to import")
		return 0, nil
	}

	total := importer.Load(ctx, records, importer.DefaultChunkSize, s.repo.InsertAssignmentChunk)

	logger.Info("role assignment import finished",
		zap.Int("submitted", total),
		zap.Int("input_rows", table.Len()),
	)

	_ = s.publisher.PublishImportCompleted(ctx, events.ImportCompletedEvent{
		Entity:    "funcao_cargo",
		Rows:      total,
		ElapsedMS: time.Since(start).Milliseconds(),
		RequestID: contextutil.GetRequestID(ctx),
	})

	return total, nil
}

func (s *service) GetCatalog(ctx context.Context, page, pageSize int) ([]CargoFuncaoResponse, int64, error) {
	offset := (page - 1) * pageSize
	cargos, total, err := s.repo.FindCatalog(ctx, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return mapToCatalogListResponse(cargos), total, nil
}

func (s *service) GetAssignments(ctx context.Context, servidorID int64, page, pageSize int) ([]FuncaoCargoResponse, int64, error) {
	offset := (page - 1) * pageSize
	vinculos, total, err := s.repo.FindAssignments(ctx, servidorID, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return mapToAssignmentListResponse(vinculos), total, nil
}
