package migrations

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles(t *testing.T) {
	up, err := Files(Up)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_init.up.sql"}, up)

	down, err := Files(Down)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_init.down.sql"}, down)
}

func TestRun_RejectsUnknownDirection(t *testing.T) {
	n, err := Run(context.Background(), nil, Direction("sideways"), slog.Default())
	require.Error(t, err)
	assert.Zero(t, n)
	assert.Contains(t, err.Error(), "sideways")
}
