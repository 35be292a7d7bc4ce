package vox

import (
	"bytes"
	"encoding/binary"
)

const (
	// Magic is the 4-byte file signature preceding the version field.
	Magic = "VOX "
	// Version is the only supported container version.
	Version = 150
)

// Voxel is one sparse entry from an XYZI chunk. Material indexes the palette;
// 0 never appears in a valid model (it means empty).
type Voxel struct {
	X, Y, Z  uint8
	Material uint8
}

// Model is the extracted content of a .vox stream: the first SIZE/XYZI pair
// plus the resolved palette.
type Model struct {
	SizeX, SizeY, SizeZ int
	Voxels              []Voxel
	Palette             Palette
	// NumModels is the model count declared by a PACK chunk (1 when absent).
	// Only the first model is extracted; the rest stay in the chunk tree.
	NumModels int
}

// DecodeModel validates the signature and version, decodes the chunk tree and
// extracts the first model.
func DecodeModel(data []byte) (*Model, error) {
	if len(data) < 8 || string(data[:4]) != Magic {
		return nil, formatErrf("", 0, "missing %q signature", Magic)
	}
	version := binary.LittleEndian.Uint32(data[4:8])
	if version != Version {
		return nil, formatErrf("", 4, "unsupported version %d (want %d)", version, Version)
	}
	root, err := DecodeChunk(data[8:], 8)
	if err != nil {
		return nil, err
	}
	return ExtractModel(root)
}

// ExtractModel pulls the first SIZE/XYZI pair and the palette out of a
// decoded chunk tree rooted at MAIN.
func ExtractModel(root *Chunk) (*Model, error) {
	if root.ID != "MAIN" {
		return nil, formatErrf(root.ID, -1, "top-level chunk must be MAIN")
	}
	m := &Model{NumModels: 1, Palette: DefaultPalette()}

	if pack := root.Find("PACK"); pack != nil {
		if len(pack.Content) < 4 {
			return nil, formatErrf("PACK", -1, "content too short (%d bytes, want 4)", len(pack.Content))
		}
		m.NumModels = int(binary.LittleEndian.Uint32(pack.Content[:4]))
	}

	size := root.Find("SIZE")
	if size == nil {
		return nil, formatErrf("SIZE", -1, "chunk missing")
	}
	if len(size.Content) < 12 {
		return nil, formatErrf("SIZE", -1, "content too short (%d bytes, want 12)", len(size.Content))
	}
	m.SizeX = int(binary.LittleEndian.Uint32(size.Content[0:4]))
	m.SizeY = int(binary.LittleEndian.Uint32(size.Content[4:8]))
	m.SizeZ = int(binary.LittleEndian.Uint32(size.Content[8:12]))
	if m.SizeX == 0 || m.SizeY == 0 || m.SizeZ == 0 {
		return nil, formatErrf("SIZE", -1, "dimensions (%d,%d,%d) must be positive", m.SizeX, m.SizeY, m.SizeZ)
	}

	xyzi := root.Find("XYZI")
	if xyzi == nil {
		return nil, formatErrf("XYZI", -1, "chunk missing")
	}
	if len(xyzi.Content) < 4 {
		return nil, formatErrf("XYZI", -1, "content too short (%d bytes, want at least 4)", len(xyzi.Content))
	}
	n := int(binary.LittleEndian.Uint32(xyzi.Content[:4]))
	tuples := xyzi.Content[4:]
	if len(tuples) != 4*n {
		return nil, formatErrf("XYZI", -1, "declared %d voxels but content holds %d", n, len(tuples)/4)
	}
	m.Voxels = make([]Voxel, n)
	for i := 0; i < n; i++ {
		v := Voxel{tuples[i*4], tuples[i*4+1], tuples[i*4+2], tuples[i*4+3]}
		if int(v.X) >= m.SizeX || int(v.Y) >= m.SizeY || int(v.Z) >= m.SizeZ || v.Material == 0 {
			return nil, formatErrf("XYZI", -1,
				"voxel[%d] = (%d,%d,%d,%d) out of range of dimensions (%d,%d,%d, 1..255)",
				i, v.X, v.Y, v.Z, v.Material, m.SizeX, m.SizeY, m.SizeZ)
		}
		m.Voxels[i] = v
	}

	if rgba := root.Find("RGBA"); rgba != nil {
		pal, err := parsePalette(rgba.Content)
		if err != nil {
			return nil, err
		}
		m.Palette = pal
	}
	return m, nil
}

// EncodeModel builds a complete .vox stream holding the model as a single
// SIZE/XYZI pair plus its palette. DecodeModel(EncodeModel(m)) restores m.
func EncodeModel(m *Model) []byte {
	var sizeContent bytes.Buffer
	_ = binary.Write(&sizeContent, binary.LittleEndian, uint32(m.SizeX))
	_ = binary.Write(&sizeContent, binary.LittleEndian, uint32(m.SizeY))
	_ = binary.Write(&sizeContent, binary.LittleEndian, uint32(m.SizeZ))

	var xyziContent bytes.Buffer
	_ = binary.Write(&xyziContent, binary.LittleEndian, uint32(len(m.Voxels)))
	for _, v := range m.Voxels {
		xyziContent.Write([]byte{v.X, v.Y, v.Z, v.Material})
	}

	rgbaContent := make([]byte, 1024)
	for i := 0; i < 255; i++ {
		c := m.Palette[i+1]
		rgbaContent[i*4] = c.R
		rgbaContent[i*4+1] = c.G
		rgbaContent[i*4+2] = c.B
		rgbaContent[i*4+3] = c.A
	}

	main := &Chunk{ID: "MAIN", Children: []*Chunk{
		{ID: "SIZE", Content: sizeContent.Bytes()},
		{ID: "XYZI", Content: xyziContent.Bytes()},
		{ID: "RGBA", Content: rgbaContent},
	}}

	var out bytes.Buffer
	out.WriteString(Magic)
	_ = binary.Write(&out, binary.LittleEndian, uint32(Version))
	_, _ = out.Write(main.Encode())
	return out.Bytes()
}
