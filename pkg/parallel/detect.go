package parallel

import (
	"errors"
	"fmt"

	"github.com/dd0wney/cluso-communities/pkg/algorithms"
)

// DetectAll runs the detector on every graph using the given number of
// workers and returns the results in input order. Each graph is mutated by
// its own run, so graphs must not share storage.
//
// A run that panics leaves a nil result and is reported in the returned
// error; the other runs still complete.
func DetectAll(detector *algorithms.GirvanNewmanDetector, graphs []algorithms.MutableGraph, workers int) ([]*algorithms.GirvanNewmanResult, error) {
	if detector == nil {
		return nil, errors.New("detector cannot be nil")
	}

	results := make([]*algorithms.GirvanNewmanResult, len(graphs))
	pool := NewWorkerPool(workers, nil)

	for i, g := range graphs {
		pool.Submit(func() {
			results[i] = detector.Detect(g)
		})
	}
	pool.Close()

	if panics := pool.Panics(); len(panics) > 0 {
		return results, fmt.Errorf("%d of %d detections failed: %w", len(panics), len(graphs), errors.Join(panics...))
	}
	return results, nil
}
