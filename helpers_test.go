package qualify_test

import (
	"context"
	"sync"

	"github.com/zoobzio/qualify"
)

var logMu sync.Mutex

// recording returns an async qualifier that appends enter and exit markers
// to log around its evaluation.
func recording(name string, result bool, log *[]string) qualify.AsyncFunc[int] {
	return func(ctx context.Context, _ int) (bool, error) {
		mark(log, name+":enter")
		defer mark(log, name+":exit")
		if err := ctx.Err(); err != nil {
			return false, err
		}
		return result, nil
	}
}

func mark(log *[]string, m string) {
	logMu.Lock()
	defer logMu.Unlock()
	*log = append(*log, m)
}
