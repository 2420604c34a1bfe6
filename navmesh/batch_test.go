package navmesh

import (
	"context"
	"testing"

	"github.com/gorustyt/regionnav/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPathsMatchesFindPath(t *testing.T) {
	n := New(DefaultConfig(), nil).Build(ring(t))
	queries := []PathQuery{
		{From: common.Vec3{0.5, 0, 1.5}, To: common.Vec3{2.5, 0, 1.5}},
		{From: common.Vec3{0.5, 0, 0.5}, To: common.Vec3{2.5, 0, 2.5}},
		{From: common.Vec3{1.5, 0, 0.5}, To: common.Vec3{1.5, 0, 2.5}},
		{From: common.Vec3{0.2, 0, 0.2}, To: common.Vec3{0.8, 0, 0.8}},
	}
	for _, workers := range []int{0, 1, 3} {
		results, err := n.FindPaths(context.Background(), queries, workers)
		require.NoError(t, err)
		require.Len(t, results, len(queries))
		for i, q := range queries {
			assert.Equal(t, n.FindPath(q.From, q.To), results[i], "query %d workers %d", i, workers)
		}
	}
}

func TestFindPathsCancelled(t *testing.T) {
	n := New(DefaultConfig(), nil).Build(ring(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := n.FindPaths(ctx, []PathQuery{{To: common.Vec3{1, 0, 1}}}, 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}
