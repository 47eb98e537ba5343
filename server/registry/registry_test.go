package registry_test

import (
	"testing"

	"github.com/basaltmc/basalt/server/registry"
	"github.com/stretchr/testify/require"
)

func TestLoadAllTables(t *testing.T) {
	tables, err := registry.Load()
	require.NoError(t, err)

	for _, id := range registry.RegistryIDs() {
		table, ok := tables[id]
		require.True(t, ok, "missing table %s", id)
		require.NotEmpty(t, table.Entries)
		require.NotZero(t, table.Checksum)
	}
}

func TestVerifyPassesForFreshlyLoadedTables(t *testing.T) {
	tables, err := registry.Load()
	require.NoError(t, err)
	require.NoError(t, registry.Verify(tables))
}

func TestVerifyCatchesMutatedChecksum(t *testing.T) {
	tables, err := registry.Load()
	require.NoError(t, err)

	tables["minecraft:worldgen/biome"].Checksum++
	require.Error(t, registry.Verify(tables))
}
