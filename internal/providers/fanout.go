package providers

import (
	"context"

	"github.com/sourcegraph/conc/pool"
)

// FetchAll runs the given feed fetches concurrently and waits for all of
// them. The first error cancels the remaining fetches; a provider either
// produces every required feed or fails as a unit.
func FetchAll(ctx context.Context, fns ...func(ctx context.Context) error) error {
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	for _, fn := range fns {
		p.Go(fn)
	}
	return p.Wait()
}
