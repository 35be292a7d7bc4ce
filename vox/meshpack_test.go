package vox

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func testMeshAndPalette(t *testing.T) (*Mesh, Palette) {
	t.Helper()
	m := shellModel(3, 4)
	mesh, model, err := MeshVox(EncodeModel(m))
	if err != nil {
		t.Fatalf("mesh failed: %v", err)
	}
	return mesh, model.Palette
}

func TestMeshBlobRoundtrip(t *testing.T) {
	mesh, pal := testMeshAndPalette(t)
	for _, comp := range []MeshCompression{MeshCompNone, MeshCompZstd} {
		blob, err := EncodeMesh(mesh, pal, comp)
		if err != nil {
			t.Fatalf("encode comp=%d: %v", comp, err)
		}
		got, gotPal, err := DecodeMesh(blob)
		if err != nil {
			t.Fatalf("decode comp=%d: %v", comp, err)
		}
		if !reflect.DeepEqual(got, mesh) {
			t.Fatalf("comp=%d: mesh not restored", comp)
		}
		if gotPal != pal {
			t.Fatalf("comp=%d: palette not restored", comp)
		}
	}
}

func TestMeshBlobDigestMismatch(t *testing.T) {
	mesh, pal := testMeshAndPalette(t)
	blob, err := EncodeMesh(mesh, pal, MeshCompNone)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	blob[len(blob)-1] ^= 0xFF
	_, _, err = DecodeMesh(blob)
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("want FormatError, got %v", err)
	}
	if !strings.Contains(fe.Msg, "digest") {
		t.Fatalf("error should report the digest mismatch, got %q", fe.Msg)
	}
}

func TestMeshBlobBadMagic(t *testing.T) {
	var fe *FormatError
	if _, _, err := DecodeMesh([]byte("not a mesh blob at all")); !errors.As(err, &fe) {
		t.Fatalf("want FormatError, got %v", err)
	}
}

func TestMeshDigestDistinguishes(t *testing.T) {
	mesh, pal := testMeshAndPalette(t)
	d1 := MeshDigest(mesh, pal)
	mesh.Vertices[0].Material++
	if d2 := MeshDigest(mesh, pal); d1 == d2 {
		t.Fatal("digest should change when the mesh changes")
	}
}
