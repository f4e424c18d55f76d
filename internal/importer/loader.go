package importer

import (
	"context"

	"github.com/buildsbyrafael/datapersistence/internal/shared/contextutil"

	"go.uber.org/zap"
)

// DefaultChunkSize is how many records each transaction carries.
const DefaultChunkSize = 1000

// InsertChunkFunc persists one chunk atomically. Implementations are
// expected to use insert-ignore semantics under the entity's unique key.
type InsertChunkFunc[T any] func(ctx context.Context, chunk []T) error

// Load batches records and submits each chunk in its own transaction. A
// failing chunk is logged and skipped; earlier chunks stay committed. The
// returned count is rows submitted, not necessarily rows created: records
// ignored on conflict are still counted, records in failed chunks are not,
// so callers may observe a total lower than the input size.
func Load[T any](ctx context.Context, records []T, chunkSize int, insert InsertChunkFunc[T]) int {
	logger := contextutil.GetLogger(ctx)
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	total := 0
	for i := 0; i < len(records); i += chunkSize {
		end := i + chunkSize
		if end > len(records) {
			end = len(records)
		}
		chunk := records[i:end]

		if err := insert(ctx, chunk); err != nil {
			logger.Error("chunk import failed",
				zap.Int("chunk", i/chunkSize+1),
				zap.Int("rows", len(chunk)),
				zap.Error(err),
			)
			continue
		}

		total += len(chunk)
		logger.Info("chunk imported",
			zap.Int("chunk", i/chunkSize+1),
			zap.Int("rows", len(chunk)),
		)
	}

	return total
}
