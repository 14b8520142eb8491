package worker

// InOrder reads results that may arrive out of order and calls emit for
// each one in ascending Index order, starting at 0. Indices must be dense.
// It stops at the first error from emit; remaining results are drained.
func InOrder(results <-chan ProcessResult, emit func(ProcessResult) error) error {
	pending := make(map[int]ProcessResult)
	next := 0
	var err error
	for r := range results {
		if err != nil {
			continue
		}
		pending[r.Index] = r
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err = emit(ready); err != nil {
				break
			}
		}
	}
	return err
}
