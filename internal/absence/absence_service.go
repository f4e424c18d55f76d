package absence

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
	colID     = "Id_SERVIDOR_PORTAL"
	colAno    = "ANO"
	colMes    = "MES"
	colInicio = "DATA_INICIO_AFASTAMENTO"
)

type Service interface {
	Import(ctx context.Context, r io.Reader) (int, error)
	GetAll(ctx context.Context, ano, mes, page, pageSize int) ([]AfastamentoResponse, int64, error)
}

type service struct {
	repo      Repository
	publisher importer.EventPublisher
}

func NewService(repo Repository, publisher importer.EventPublisher) Service {
	return &service{repo: repo, publisher: publisher}
}

// Import normalizes and loads an absence export. An unparsable start date
// becomes absent, not an error; duration defaults to 1 day.
func (s *service) Import(ctx context.Context, r io.Reader) (int, error) {
	logger := contextutil.GetLogger(ctx)
	start := time.Now()

	table, err := importer.Read(r)
	if err != nil {
		return 0, err
	}
	if err := table.Require(colID, colAno, colMes, colInicio); err != nil {
		return 0, err
	}

	records := make([]Afastamento, 0, table.Len())

	for _, row := range table.Rows() {
		rawID := importer.CleanText(table.Field(row, colID))
		if !importer.IsDigits(rawID) {
			continue
		}
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			continue
		}

		ano, err := strconv.Atoi(importer.CleanText(table.Field(row, colAno)))
		if err != nil {
			continue
		}
		mes, err := strconv.Atoi(importer.CleanText(table.Field(row, colMes)))
		if err != nil {
			continue
		}

		records = append(records, Afastamento{
			IDServidor:        id,
			Ano:               ano,
			Mes:               mes,
			InicioAfastamento: importer.ParseDate(table.Field(row, colInicio)),
			DuracaoDias:       1,
		})
	}

	total := importer.Load(ctx, records, importer.DefaultChunkSize, s.repo.InsertChunk)

	logger.Info("absence import finished",
		zap.Int("submitted", total),
		zap.Int("input_rows", table.Len()),
	)

	_ = s.publisher.PublishImportCompleted(ctx, events.ImportCompletedEvent{
		Entity:    "afastamentos",
		Rows:      total,
		ElapsedMS: time.Since(start).Milliseconds(),
		RequestID: contextutil.GetRequestID(ctx),
	})

	return total, nil
}

func (s *service) GetAll(ctx context.Context, ano, mes, page, pageSize int) ([]AfastamentoResponse, int64, error) {
	offset := (page - 1) * pageSize
	afastamentos, total, err := s.repo.FindAll(ctx, ano, mes, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return mapToListResponse(afastamentos), total, nil
}
