package vox

import (
	"bytes"
	"encoding/binary"
)

// Chunk is one record of the container: a 4-byte id, raw content bytes and an
// ordered list of child chunks. Ids this package does not interpret are kept
// uninterpreted so a decoded tree can be re-encoded without loss.
type Chunk struct {
	ID       string
	Content  []byte
	Children []*Chunk
}

const chunkHeaderSize = 12

// DecodeChunk parses the chunk record (and its children, recursively) filling
// all of data. base is the absolute offset of data within the original
// stream, used only for error context.
func DecodeChunk(data []byte, base int) (*Chunk, error) {
	c, n, err := decodeOne(data, base)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, formatErrf(c.ID, base+n, "%d trailing bytes after chunk", len(data)-n)
	}
	return c, nil
}

func decodeOne(data []byte, base int) (*Chunk, int, error) {
	if len(data) < chunkHeaderSize {
		return nil, 0, formatErrf("", base, "chunk header too short (%d bytes, want %d)", len(data), chunkHeaderSize)
	}
	id := string(data[:4])
	contentLen := int(binary.LittleEndian.Uint32(data[4:8]))
	childrenLen := int(binary.LittleEndian.Uint32(data[8:12]))
	rest := data[chunkHeaderSize:]
	if contentLen < 0 || childrenLen < 0 || contentLen+childrenLen > len(rest) {
		return nil, 0, formatErrf(id, base, "declared %d content + %d children bytes, only %d remain", contentLen, childrenLen, len(rest))
	}
	content := rest[:contentLen]
	children, err := decodeChildren(rest[contentLen:contentLen+childrenLen], base+chunkHeaderSize+contentLen)
	if err != nil {
		return nil, 0, err
	}
	return &Chunk{ID: id, Content: content, Children: children}, chunkHeaderSize + contentLen + childrenLen, nil
}

func decodeChildren(block []byte, base int) ([]*Chunk, error) {
	var children []*Chunk
	for len(block) > 0 {
		c, n, err := decodeOne(block, base)
		if err != nil {
			return nil, err
		}
		children = append(children, c)
		block = block[n:]
		base += n
	}
	return children, nil
}

// Encode re-serializes the chunk tree. Decoding the result yields an equal
// tree; encoding a freshly decoded tree reproduces the input bytes.
func (c *Chunk) Encode() []byte {
	var buf bytes.Buffer
	c.encodeInto(&buf)
	return buf.Bytes()
}

func (c *Chunk) encodeInto(buf *bytes.Buffer) {
	var kids bytes.Buffer
	for _, ch := range c.Children {
		ch.encodeInto(&kids)
	}
	buf.WriteString(c.ID)
	_ = binary.Write(buf, binary.LittleEndian, uint32(len(c.Content)))
	_ = binary.Write(buf, binary.LittleEndian, uint32(kids.Len()))
	_, _ = buf.Write(c.Content)
	_, _ = buf.Write(kids.Bytes())
}

// Find returns the first chunk with the given id in depth-first order,
// starting at c itself, or nil.
func (c *Chunk) Find(id string) *Chunk {
	if c.ID == id {
		return c
	}
	for _, ch := range c.Children {
		if f := ch.Find(id); f != nil {
			return f
		}
	}
	return nil
}
