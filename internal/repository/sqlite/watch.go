// Package sqlite contains SQLite-backed implementations of the repository
// interfaces.
package sqlite

import (
	"context"

	storage "github.com/jhpk/purchtrac/internal/storage/sqlite"
)

// watch emits an initial snapshot and then a freshly loaded one after every
// change signal for the table. Each observer sees a monotonically current
// snapshot. The snapshot channel closes when ctx is done; a load failure
// delivers one error and terminates the stream.
func watch[T any](
	ctx context.Context,
	db *storage.DB,
	table string,
	load func(context.Context) ([]T, error),
) (<-chan []T, <-chan error) {
	out := make(chan []T, 1)
	errc := make(chan error, 1)
	signals, cancel := db.Subscribe(table)

	go func() {
		defer close(out)
		defer cancel()
		for {
			snap, err := load(ctx)
			if err != nil {
				errc <- err
				return
			}
			select {
			case out <- snap:
			case <-ctx.Done():
				return
			}
			select {
			case <-signals:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, errc
}
