package parallel

import "runtime"

// bandsPerWorker oversplits the row range so idle workers have something
// to steal.
const bandsPerWorker = 4

// Band is a half-open range of rows [Top, Bottom).
type Band struct {
	Top, Bottom int
}

// SplitRows divides [top, bottom) into at most n contiguous bands of
// near-equal size, in order. It returns nil for an empty range.
func SplitRows(top, bottom, n int) []Band {
	rows := bottom - top
	if rows <= 0 {
		return nil
	}
	n = max(min(n, rows), 1)

	bands := make([]Band, n)
	size, extra := rows/n, rows%n
	y := top
	for i := range bands {
		h := size
		if i < extra {
			h++
		}
		bands[i] = Band{Top: y, Bottom: y + h}
		y += h
	}
	return bands
}

// ForEachRow splits [top, bottom) into bands and runs fn on each, using up
// to workers goroutines. workers <= 0 means GOMAXPROCS. A single worker, or
// a single row, runs fn inline on the calling goroutine.
func ForEachRow(workers, top, bottom int, fn func(Band) error) error {
	if bottom <= top {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || bottom-top == 1 {
		return fn(Band{Top: top, Bottom: bottom})
	}

	bands := SplitRows(top, bottom, workers*bandsPerWorker)
	return NewWorkerPool(workers).ForEachBand(bands, fn)
}
