package navmesh

import (
	"context"

	"github.com/gorustyt/regionnav/common"
	"golang.org/x/sync/errgroup"
)

type PathQuery struct {
	From common.Vec3
	To   common.Vec3
}

// FindPaths answers queries concurrently on at most workers goroutines
// (unbounded when workers <= 0). Results keep the order of queries.
func (n *NavMesh) FindPaths(ctx context.Context, queries []PathQuery, workers int) ([][]common.Vec3, error) {
	results := make([][]common.Vec3, len(queries))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = n.FindPath(q.From, q.To)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
