package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/hexrealm/internal/config"
	"github.com/wfunc/hexrealm/internal/models"
)

func sampleSnapshot() *models.WorldSnapshot {
	snap := &models.WorldSnapshot{
		GameID: 7,
		Tick:   3,
		Status: models.GameStatusActive,
		Players: []models.PlayerSnapshot{
			{ID: 1, Name: "red", Color: "#FF0000", IsActive: true, Resources: map[string]int{"gold": 10, "wood": 4}},
		},
		Characters: []models.CharacterSnapshot{
			{ID: 1, OwnerID: 1, Name: "hero", Q: 0, R: 0, Status: models.CharacterStatusIdle, Health: 100},
		},
	}
	for q := 0; q < 20; q++ {
		for r := 0; r < 20; r++ {
			snap.Tiles = append(snap.Tiles, models.TileSnapshot{Q: q, R: r, Terrain: models.TerrainPlains, IsPassable: true})
		}
	}
	return snap
}

func TestRoundTripZstd(t *testing.T) {
	codec, err := NewCodec(config.SnapshotConfig{Compression: CompressionZstd, Level: "best"})
	require.NoError(t, err)
	defer codec.Close()

	snap := sampleSnapshot()
	enc, err := codec.Encode(snap)
	require.NoError(t, err)
	assert.Equal(t, CompressionZstd, enc.Compression)
	assert.Len(t, enc.Hash, 64)

	decoded, err := codec.Decode(enc.Data, enc.Compression)
	require.NoError(t, err)
	assert.Equal(t, snap, decoded)

	ok, err := codec.Verify(enc.Data, enc.Compression, enc.Hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHashIsStableAcrossCompression(t *testing.T) {
	zc, err := NewCodec(config.SnapshotConfig{Compression: CompressionZstd})
	require.NoError(t, err)
	defer zc.Close()
	nc, err := NewCodec(config.SnapshotConfig{Compression: CompressionNone})
	require.NoError(t, err)
	defer nc.Close()

	a, err := zc.Encode(sampleSnapshot())
	require.NoError(t, err)
	b, err := nc.Encode(sampleSnapshot())
	require.NoError(t, err)

	assert.Equal(t, a.Hash, b.Hash)
	assert.Less(t, len(a.Data), len(b.Data))
}

func TestVerifyDetectsTampering(t *testing.T) {
	codec, err := NewCodec(config.SnapshotConfig{Compression: CompressionNone})
	require.NoError(t, err)
	defer codec.Close()

	enc, err := codec.Encode(sampleSnapshot())
	require.NoError(t, err)

	tampered := append([]byte(nil), enc.Data...)
	tampered[len(tampered)-2] = ' '
	ok, err := codec.Verify(tampered, enc.Compression, enc.Hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnknownLevel(t *testing.T) {
	_, err := NewCodec(config.SnapshotConfig{Compression: CompressionZstd, Level: "ludicrous"})
	assert.Error(t, err)
}
