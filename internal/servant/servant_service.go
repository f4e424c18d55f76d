package servant

import (
	"context"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/buildsbyrafael/datapersistence/internal/events"
	"github.com/buildsbyrafael/datapersistence/internal/importer"
	"github.com/buildsbyrafael/datapersistence/internal/shared/apperror"
	"github.com/buildsbyrafael/datapersistence/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Expected source columns of the servant export.
const (
	colID           = "Id_SERVIDOR_PORTAL"
	colNome         = "NOME"
	colCPF          = "CPF"
	colDescrCargo   = "DESCRICAO_CARGO"
	colOrgSuperior  = "ORGSUP_EXERCICIO"
	colOrgExercicio = "ORG_EXERCICIO"
	colRegime       = "REGIME_JURIDICO"
	colJornada      = "JORNADA_DE_TRABALHO"
)

type Service interface {
	Import(ctx context.Context, r io.Reader) (int, error)
	GetAll(ctx context.Context, page, pageSize int) ([]ServidorResponse, int64, error)
	GetByID(ctx context.Context, id int64) (ServidorResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo      Repository
	publisher importer.EventPublisher
}

func NewService(repo Repository, publisher importer.EventPublisher) Service {
	return &service{repo: repo, publisher: publisher}
}

// Import runs normalize -> dedup -> chunked load over a servant CSV export.
// Rows with a non-numeric portal id are dropped silently; repeated ids keep
// their first occurrence. Existing servants are never overwritten.
func (s *service) Import(ctx context.Context, r io.Reader) (int, error) {
	logger := contextutil.GetLogger(ctx)
	start := time.Now()

	table, err := importer.Read(r)
	if err != nil {
		return 0, err
	}
	if err := table.Require(
		colID, colNome, colCPF, colDescrCargo,
		colOrgSuperior, colOrgExercicio, colRegime, colJornada,
	); err != nil {
		return 0, err
	}

	seen := make(map[int64]struct{}, table.Len())
	records := make([]Servidor, 0, table.Len())

	for _, row := range table.Rows() {
		rawID := importer.CleanText(table.Field(row, colID))
		if !importer.IsDigits(rawID) {
			continue
		}
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		records = append(records, Servidor{
			IDServidor:      id,
			Nome:            importer.CleanText(table.Field(row, colNome)),
			CPF:             importer.CleanText(table.Field(row, colCPF)),
			DescrCargo:      importer.CleanText(table.Field(row, colDescrCargo)),
			OrgSuperior:     importer.CleanUpper(table.Field(row, colOrgSuperior)),
			OrgExercicio:    importer.CleanUpper(table.Field(row, colOrgExercicio)),
			Regime:          importer.CleanUpper(table.Field(row, colRegime)),
			JornadaTrabalho: importer.CleanUpper(table.Field(row, colJornada)),
		})
	}

	total := importer.Load(ctx, records, importer.DefaultChunkSize, s.repo.InsertChunk)

	logger.Info("servant import finished",
		zap.Int("submitted", total),
		zap.Int("input_rows", table.Len()),
	)

	_ = s.publisher.PublishImportCompleted(ctx, events.ImportCompletedEvent{
		Entity:    "servidores",
		Rows:      total,
		ElapsedMS: time.Since(start).Milliseconds(),
		RequestID: contextutil.GetRequestID(ctx),
	})

	return total, nil
}

func (s *service) GetAll(ctx context.Context, page, pageSize int) ([]ServidorResponse, int64, error) {
	offset := (page - 1) * pageSize
	servidores, total, err := s.repo.FindAll(ctx, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return mapToListResponse(servidores), total, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (ServidorResponse, error) {
	servidor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ServidorResponse{}, apperror.ErrNotFound
		}
		return ServidorResponse{}, err
	}
	return mapToResponse(*servidor), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
