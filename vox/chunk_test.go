package vox

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func rawChunk(id string, content []byte, children ...[]byte) []byte {
	var kids bytes.Buffer
	for _, c := range children {
		kids.Write(c)
	}
	var buf bytes.Buffer
	buf.WriteString(id)
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(content)))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(kids.Len()))
	buf.Write(content)
	buf.Write(kids.Bytes())
	return buf.Bytes()
}

func rawVoxFile(chunks ...[]byte) []byte {
	var buf bytes.Buffer
	buf.WriteString(Magic)
	_ = binary.Write(&buf, binary.LittleEndian, uint32(Version))
	buf.Write(rawChunk("MAIN", nil, chunks...))
	return buf.Bytes()
}

func TestChunkRoundtrip(t *testing.T) {
	raw := rawChunk("MAIN", nil,
		rawChunk("SIZE", []byte{1, 0, 0, 0, 2, 0, 0, 0, 3, 0, 0, 0}),
		rawChunk("NOTE", []byte("freeform"), rawChunk("SUBB", []byte{9})),
	)
	c, err := DecodeChunk(raw, 0)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if c.ID != "MAIN" || len(c.Children) != 2 {
		t.Fatalf("unexpected tree: id=%q children=%d", c.ID, len(c.Children))
	}
	// unknown ids survive decode untouched
	note := c.Children[1]
	if note.ID != "NOTE" || string(note.Content) != "freeform" || len(note.Children) != 1 {
		t.Fatalf("unknown chunk not preserved: %+v", note)
	}
	if !bytes.Equal(c.Encode(), raw) {
		t.Fatalf("encode does not reproduce input bytes")
	}
}

func TestChunkTruncated(t *testing.T) {
	raw := rawChunk("MAIN", []byte{1, 2, 3})
	binary.LittleEndian.PutUint32(raw[4:8], 100) // declare more content than exists
	_, err := DecodeChunk(raw, 0)
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("want FormatError, got %v", err)
	}
	if fe.Chunk != "MAIN" {
		t.Fatalf("error should name the chunk, got %+v", fe)
	}
}

func TestChunkHeaderTooShort(t *testing.T) {
	_, err := DecodeChunk([]byte("MAI"), 0)
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("want FormatError, got %v", err)
	}
}

func TestChunkTrailingBytes(t *testing.T) {
	raw := append(rawChunk("MAIN", nil), 0xFF)
	_, err := DecodeChunk(raw, 0)
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("want FormatError for trailing bytes, got %v", err)
	}
}

func TestChunkFindDepthFirst(t *testing.T) {
	raw := rawChunk("MAIN", nil,
		rawChunk("WRAP", nil, rawChunk("SIZE", []byte("first-------"))),
		rawChunk("SIZE", []byte("second------")),
	)
	c, err := DecodeChunk(raw, 0)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	got := c.Find("SIZE")
	if got == nil || string(got.Content) != "first-------" {
		t.Fatalf("Find should return the first SIZE depth-first, got %+v", got)
	}
	if c.Find("NOPE") != nil {
		t.Fatal("Find of absent id should return nil")
	}
}
