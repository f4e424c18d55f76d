package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_ChunksAndCounts(t *testing.T) {
	records := make([]int, 25)
	var chunks [][]int

	total := Load(context.Background(), records, 10, func(ctx context.Context, chunk []int) error {
		chunks = append(chunks, chunk)
		return nil
	})

	assert.Equal(t, 25, total)
	assert.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 10)
	assert.Len(t, chunks[2], 5)
}

func TestLoad_FailedChunkIsSkipped(t *testing.T) {
	records := make([]int, 30)
	call := 0

	total := Load(context.Background(), records, 10, func(ctx context.Context, chunk []int) error {
		call++
		if call == 2 {
			return errors.New("constraint violation")
		}
		return nil
	})

	// The failing chunk's rows are not counted; the rest still load.
	assert.Equal(t, 20, total)
	assert.Equal(t, 3, call)
}

func TestLoad_EmptyInput(t *testing.T) {
	total := Load(context.Background(), []int{}, 10, func(ctx context.Context, chunk []int) error {
		t.Fatal("insert should not be called")
		return nil
	})
	assert.Equal(t, 0, total)
}
