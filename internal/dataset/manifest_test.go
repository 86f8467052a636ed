package dataset

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	m := Manifest{
		RunID:       "7b3a4a1e-3a7e-4a59-9f57-0d2a3b8f1c2d",
		Seed:        2024,
		GeneratedAt: "2024-06-01T12:00:00Z",
		Tables: map[string]int{
			"customers":   500,
			"products":    200,
			"orders":      987,
			"order_items": 2841,
			"payments":    987,
		},
	}
	require.NoError(t, WriteManifest(dir, m))

	got, err := ReadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestReadManifest_Missing(t *testing.T) {
	_, err := ReadManifest(t.TempDir())
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
