package remark

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/buildsbyrafael/datapersistence/internal/events"
	"github.com/buildsbyrafael/datapersistence/internal/importer"
	"github.com/buildsbyrafael/datapersistence/internal/shared/contextutil"

	"go.uber.org/zap"
)

const (
	colID         = "Id_SERVIDOR_PORTAL"
	colAno        = "ANO"
	colMes        = "MES"
	colObservacao = "OBSERVACAO"
)

// ceilingPhrase marks a pay above the constitutional ceiling.
const ceilingPhrase = "ACIMA DO TETO"

type Service interface {
	Import(ctx context.Context, r io.Reader) (int, error)
	GetAll(ctx context.Context, ano, mes, page, pageSize int) ([]ObservacaoResponse, int64, error)
}

type service struct {
	repo      Repository
	publisher importer.EventPublisher
}

func NewService(repo Repository, publisher importer.EventPublisher) Service {
	return &service{repo: repo, publisher: publisher}
}

// Import normalizes and loads a remark export. The remark text itself is a
// mandatory key field: rows without it are dropped.
func (s *service) Import(ctx context.Context, r io.Reader) (int, error) {
	logger := contextutil.GetLogger(ctx)
	start := time.Now()

	table, err := importer.Read(r)
	if err != nil {
		return 0, err
	}
	if err := table.Require(colID, colAno, colMes, colObservacao); err != nil {
		return 0, err
	}

	records := make([]Observacao, 0, table.Len())

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

		texto := importer.CleanText(table.Field(row, colObservacao))
		if texto == "" {
			continue
		}

		records = append(records, Observacao{
			IDServidor: id,
			Ano:        ano,
			Mes:        mes,
			Observacao: texto,
			FlagTeto:   strings.Contains(strings.ToUpper(texto), ceilingPhrase),
		})
	}

	total := importer.Load(ctx, records, importer.DefaultChunkSize, s.repo.InsertChunk)

	logger.Info("remark import finished",
		zap.Int("submitted", total),
		zap.Int("input_rows", table.Len()),
	)

	_ = s.publisher.PublishImportCompleted(ctx, events.ImportCompletedEvent{
		Entity:    "observacoes",
		Rows:      total,
		ElapsedMS: time.Since(start).Milliseconds(),
		RequestID: contextutil.GetRequestID(ctx),
	})

	return total, nil
}

func (s *service) GetAll(ctx context.Context, ano, mes, page, pageSize int) ([]ObservacaoResponse, int64, error) {
	offset := (page - 1) * pageSize
	observacoes, total, err := s.repo.FindAll(ctx, ano, mes, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return mapToListResponse(observacoes), total, nil
}
