package vox

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
)

// MeshCompression selects the codec for the blob content section.
type MeshCompression uint8

const (
	MeshCompNone MeshCompression = 0
	MeshCompZstd MeshCompression = 1
)

const (
	meshMagicStr = "VMSH"
	meshVersion1 = 1
)

// EncodeMesh serializes a mesh and the palette it should be rendered with
// into a cacheable blob: magic, version, compression byte, xxhash64 of the
// raw section, then the (possibly compressed) section. Meshing is
// deterministic, so the digest doubles as a content key.
func EncodeMesh(m *Mesh, pal Palette, comp MeshCompression) ([]byte, error) {
	raw := marshalMeshSection(m, pal)
	digest := xxhash.Sum64(raw)

	var section []byte
	switch comp {
	case MeshCompNone:
		section = raw
	case MeshCompZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		section = enc.EncodeAll(raw, nil)
	default:
		return nil, fmt.Errorf("unsupported mesh compression: %d", comp)
	}

	var out bytes.Buffer
	out.WriteString(meshMagicStr)
	_ = binary.Write(&out, binary.LittleEndian, uint8(meshVersion1))
	_ = binary.Write(&out, binary.LittleEndian, uint8(comp))
	_ = binary.Write(&out, binary.LittleEndian, digest)
	_, _ = out.Write(section)
	return out.Bytes(), nil
}

// DecodeMesh parses a mesh blob, verifying the content digest.
func DecodeMesh(data []byte) (*Mesh, Palette, error) {
	var pal Palette
	if len(data) < 14 || string(data[:4]) != meshMagicStr {
		return nil, pal, formatErrf(meshMagicStr, 0, "missing %q signature", meshMagicStr)
	}
	if data[4] != meshVersion1 {
		return nil, pal, formatErrf(meshMagicStr, 4, "unsupported version %d", data[4])
	}
	comp := MeshCompression(data[5])
	digest := binary.LittleEndian.Uint64(data[6:14])

	raw := data[14:]
	switch comp {
	case MeshCompNone:
		// as-is
	case MeshCompZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, pal, err
		}
		defer dec.Close()
		raw, err = dec.DecodeAll(raw, nil)
		if err != nil {
			return nil, pal, err
		}
	default:
		return nil, pal, formatErrf(meshMagicStr, 5, "unsupported compression %d", comp)
	}

	if got := xxhash.Sum64(raw); got != digest {
		return nil, pal, formatErrf(meshMagicStr, 6, "content digest mismatch (want %016x, got %016x)", digest, got)
	}
	return unmarshalMeshSection(raw)
}

// MeshDigest returns the xxhash64 content key of a mesh+palette pair.
func MeshDigest(m *Mesh, pal Palette) uint64 {
	return xxhash.Sum64(marshalMeshSection(m, pal))
}

func marshalMeshSection(m *Mesh, pal Palette) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(m.Vertices)))
	for _, v := range m.Vertices {
		_ = binary.Write(&buf, binary.LittleEndian, v.Position)
		buf.WriteByte(v.Material)
	}
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(m.Indices)))
	_ = binary.Write(&buf, binary.LittleEndian, m.Indices)
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(m.Materials)))
	_, _ = buf.Write(m.Materials)
	for _, c := range pal {
		_, _ = buf.Write([]byte{c.R, c.G, c.B, c.A})
	}
	return buf.Bytes()
}

func unmarshalMeshSection(raw []byte) (*Mesh, Palette, error) {
	var pal Palette
	r := bytes.NewReader(raw)
	mesh := &Mesh{}

	var nVerts uint32
	if err := binary.Read(r, binary.LittleEndian, &nVerts); err != nil {
		return nil, pal, err
	}
	mesh.Vertices = make([]Vertex, nVerts)
	for i := range mesh.Vertices {
		if err := binary.Read(r, binary.LittleEndian, &mesh.Vertices[i].Position); err != nil {
			return nil, pal, err
		}
		if err := binary.Read(r, binary.LittleEndian, &mesh.Vertices[i].Material); err != nil {
			return nil, pal, err
		}
	}
	var nIdx uint32
	if err := binary.Read(r, binary.LittleEndian, &nIdx); err != nil {
		return nil, pal, err
	}
	mesh.Indices = make([]uint32, nIdx)
	if err := binary.Read(r, binary.LittleEndian, &mesh.Indices); err != nil {
		return nil, pal, err
	}
	var nMat uint32
	if err := binary.Read(r, binary.LittleEndian, &nMat); err != nil {
		return nil, pal, err
	}
	mesh.Materials = make([]uint8, nMat)
	if _, err := io.ReadFull(r, mesh.Materials); err != nil {
		return nil, pal, err
	}
	var rgba [4]byte
	for i := range pal {
		if _, err := io.ReadFull(r, rgba[:]); err != nil {
			return nil, pal, err
		}
		pal[i] = RGBA{rgba[0], rgba[1], rgba[2], rgba[3]}
	}
	if r.Len() != 0 {
		return nil, pal, formatErrf(meshMagicStr, -1, "%d trailing bytes in mesh section", r.Len())
	}
	return mesh, pal, nil
}
