// Package mapio persists voxel maps as zstd-compressed binary snapshots
//
// Layout before compression, little endian:
//
//	magic  [4]byte "VXM1"
//	dims   3 x uint32
//	digest uint64 (VoxelMapComponent.Digest)
//	cells  dims product x 4 x float32 RGBA
package mapio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/lixenwraith/voxel-fighter/component"
)

// MaxCells bounds the cell count accepted by Load
const MaxCells = 1 << 26

var magic = [4]byte{'V', 'X', 'M', '1'}

var (
	ErrBadMagic       = errors.New("mapio: not a voxel map")
	ErrTooLarge       = errors.New("mapio: map exceeds cell limit")
	ErrDigestMismatch = errors.New("mapio: digest mismatch")
)

// Save writes m to w
func Save(w io.Writer, m component.VoxelMapComponent) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	bw := bufio.NewWriterSize(enc, 64*1024)

	var header [24]byte
	copy(header[0:4], magic[:])
	binary.LittleEndian.PutUint32(header[4:], uint32(m.X))
	binary.LittleEndian.PutUint32(header[8:], uint32(m.Y))
	binary.LittleEndian.PutUint32(header[12:], uint32(m.Z))
	binary.LittleEndian.PutUint64(header[16:], m.Digest())
	if _, err := bw.Write(header[:]); err != nil {
		enc.Close()
		return err
	}

	var cell [16]byte
	for _, c := range m.Cells {
		for i := 0; i < 4; i++ {
			binary.LittleEndian.PutUint32(cell[i*4:], math.Float32bits(c[i]))
		}
		if _, err := bw.Write(cell[:]); err != nil {
			enc.Close()
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Load reads a map written by Save and verifies its digest
func Load(r io.Reader) (component.VoxelMapComponent, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return component.VoxelMapComponent{}, err
	}
	defer dec.Close()
	br := bufio.NewReaderSize(dec, 64*1024)

	var header [24]byte
	if _, err := io.ReadFull(br, header[:]); err != nil {
		return component.VoxelMapComponent{}, fmt.Errorf("read header: %w", err)
	}
	if [4]byte(header[0:4]) != magic {
		return component.VoxelMapComponent{}, ErrBadMagic
	}
	ux := uint64(binary.LittleEndian.Uint32(header[4:]))
	uy := uint64(binary.LittleEndian.Uint32(header[8:]))
	uz := uint64(binary.LittleEndian.Uint32(header[12:]))
	digest := binary.LittleEndian.Uint64(header[16:])
	if !cellCountOK(ux, uy, uz) {
		return component.VoxelMapComponent{}, fmt.Errorf("%dx%dx%d: %w", ux, uy, uz, ErrTooLarge)
	}
	x, y, z := int(ux), int(uy), int(uz)

	m := component.NewVoxelMap(x, y, z)
	var cell [16]byte
	for i := range m.Cells {
		if _, err := io.ReadFull(br, cell[:]); err != nil {
			return component.VoxelMapComponent{}, fmt.Errorf("read cell %d: %w", i, err)
		}
		for k := 0; k < 4; k++ {
			m.Cells[i][k] = math.Float32frombits(binary.LittleEndian.Uint32(cell[k*4:]))
		}
	}

	if got := m.Digest(); got != digest {
		return component.VoxelMapComponent{}, fmt.Errorf("%w: header %x, cells %x", ErrDigestMismatch, digest, got)
	}
	return m, nil
}

// cellCountOK bounds each partial product so the cell count never wraps
func cellCountOK(x, y, z uint64) bool {
	if x > MaxCells || y > MaxCells || z > MaxCells {
		return false
	}
	return x*y <= MaxCells && x*y*z <= MaxCells
}

// SaveFile writes m to path, creating parent directories
func SaveFile(path string, m component.VoxelMapComponent) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if err := Save(f, m); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	return f.Close()
}

// LoadFile reads a map from path
func LoadFile(path string) (component.VoxelMapComponent, error) {
	f, err := os.Open(path)
	if err != nil {
		return component.VoxelMapComponent{}, err
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return component.VoxelMapComponent{}, fmt.Errorf("load %s: %w", path, err)
	}
	return m, nil
}
