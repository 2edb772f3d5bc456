package transform

import (
	"sync"

	"github.com/cwbudde/algo-rocket/series"
)

// run partitions the batch rows across workers. Each worker owns a
// contiguous row range and writes only its own region of out, so no
// locking is needed. Cancellation is checked between rows; the first
// context error aborts all workers and discards the matrix.
func (t *Transformer) run(batch *series.Batch, out []float64, rows, cols int) error {
	workers := t.cfg.workers
	if workers > rows {
		workers = rows
	}

	if workers <= 1 {
		return t.runRange(batch, out, 0, rows, cols)
	}

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	chunk := (rows + workers - 1) / workers
	for start := 0; start < rows; start += chunk {
		end := start + chunk
		if end > rows {
			end = rows
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			if err := t.runRange(batch, out, start, end, cols); err != nil {
				errOnce.Do(func() { firstErr = err })
			}
		}(start, end)
	}
	wg.Wait()

	return firstErr
}

// runRange extracts rows [start, end) into out.
func (t *Transformer) runRange(batch *series.Batch, out []float64, start, end, cols int) error {
	conv := t.scratch.Get().(*[]float64)
	defer t.scratch.Put(conv)

	ctx := t.cfg.ctx
	for i := start; i < end; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		t.extractRow(out[i*cols:(i+1)*cols], batch.Row(i), *conv)
	}
	return nil
}
