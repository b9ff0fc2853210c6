package mapio

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/voxel-fighter/terrain"
)

func TestSaveLoad(t *testing.T) {
	m, _ := terrain.Maze(20, 16, 6, 1, terrain.MazeConfig{CellSize: 2, WallHeight: 2, Seed: 3},
		terrain.GroundColor, terrain.WallColor)
	m.Set(0, 0, 0, mgl32.Vec4{0.1, 0.2, 0.3, 0.15})

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, m))

	got, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, m.X, got.X)
	assert.Equal(t, m.Y, got.Y)
	assert.Equal(t, m.Z, got.Z)
	assert.Equal(t, m.Cells, got.Cells)
	assert.Equal(t, m.Digest(), got.Digest())
}

func TestSaveLoadFile(t *testing.T) {
	m := terrain.Flat(4, 4, 4, 1, terrain.GroundColor)
	path := filepath.Join(t.TempDir(), "maps", "flat.vxm")

	require.NoError(t, SaveFile(path, m))
	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, m.Digest(), got.Digest())
}

func compressed(t *testing.T, raw []byte) *bytes.Buffer {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = enc.Write(raw)
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	return &buf
}

func TestLoad_BadMagic(t *testing.T) {
	_, err := Load(compressed(t, bytes.Repeat([]byte{'x'}, 24)))
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestLoad_TooLarge(t *testing.T) {
	raw := make([]byte, 24)
	copy(raw, "VXM1")
	raw[4], raw[8], raw[12] = 0xff, 0xff, 0xff
	raw[5], raw[9], raw[13] = 0xff, 0xff, 0xff
	_, err := Load(compressed(t, raw))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestLoad_DimensionProductWraps(t *testing.T) {
	cases := map[string][3]uint32{
		"wraps to zero":     {1 << 21, 1 << 21, 1 << 22},
		"wraps negative":    {1 << 31, 1 << 31, 2},
		"single axis large": {MaxCells + 1, 1, 1},
	}
	for name, dims := range cases {
		t.Run(name, func(t *testing.T) {
			raw := make([]byte, 24)
			copy(raw, "VXM1")
			binary.LittleEndian.PutUint32(raw[4:], dims[0])
			binary.LittleEndian.PutUint32(raw[8:], dims[1])
			binary.LittleEndian.PutUint32(raw[12:], dims[2])

			var err error
			require.NotPanics(t, func() { _, err = Load(compressed(t, raw)) })
			assert.ErrorIs(t, err, ErrTooLarge)
		})
	}
}

func TestCellCountOK(t *testing.T) {
	assert.True(t, cellCountOK(1<<13, 1<<13, 1))
	assert.True(t, cellCountOK(MaxCells, 1, 1))
	assert.False(t, cellCountOK(1<<13, 1<<13, 2))
	assert.True(t, cellCountOK(0, 1<<20, 1<<20), "empty maps carry no cells")
}

func TestLoad_DigestMismatch(t *testing.T) {
	m := terrain.Flat(2, 2, 2, 1, terrain.GroundColor)
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, m))

	dec, err := zstd.NewReader(nil)
	require.NoError(t, err)
	raw, err := dec.DecodeAll(buf.Bytes(), nil)
	require.NoError(t, err)
	dec.Close()

	raw[len(raw)-1] ^= 0x01
	_, err = Load(compressed(t, raw))
	assert.ErrorIs(t, err, ErrDigestMismatch)
}

func TestLoad_Truncated(t *testing.T) {
	raw := make([]byte, 24)
	copy(raw, "VXM1")
	raw[4], raw[8], raw[12] = 2, 2, 2
	_, err := Load(compressed(t, raw))
	assert.Error(t, err)
}
