package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NotNil(t, c)

	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, "sqlite", c.Database.Driver)
	assert.Equal(t, NearbyModeBox, c.Game.NearbyMode)
	assert.Equal(t, 1, c.Game.DefaultRadius)
	assert.Zero(t, c.Game.MaxRadius, "nearby radius is unlimited by default")
	assert.False(t, c.Game.EnforceInventoryCapacity)
	assert.Equal(t, "zstd", c.Game.Snapshot.Compression)
	assert.Equal(t, "0.0.0.0:8080", c.Server.Addr())
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	c := Default()
	c.Game.NearbyMode = "circle"
	assert.Error(t, c.Validate())

	c = Default()
	c.Game.DefaultRadius = -1
	assert.Error(t, c.Validate())

	c = Default()
	c.Game.MaxRadius = 1
	c.Game.DefaultRadius = 2
	assert.Error(t, c.Validate())

	c = Default()
	c.Game.MaxRadius = -1
	assert.Error(t, c.Validate())

	c = Default()
	c.Game.MaxRadius = 0
	c.Game.DefaultRadius = 2
	assert.NoError(t, c.Validate())

	c = Default()
	c.Game.Snapshot.Compression = "gzip"
	assert.Error(t, c.Validate())

	c = Default()
	c.Game.NearbyMode = NearbyModeHex
	assert.NoError(t, c.Validate())
}
