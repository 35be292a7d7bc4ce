package vox

import "fmt"

// FormatError reports a malformed, truncated or unsupported input stream.
// Chunk and Offset narrow the failure down to the exact record when known;
// Offset is -1 when no byte position applies.
type FormatError struct {
	Chunk  string
	Offset int
	Msg    string
}

func (e *FormatError) Error() string {
	switch {
	case e.Chunk != "" && e.Offset >= 0:
		return fmt.Sprintf("vox: %s chunk at offset %d: %s", e.Chunk, e.Offset, e.Msg)
	case e.Chunk != "":
		return fmt.Sprintf("vox: %s chunk: %s", e.Chunk, e.Msg)
	case e.Offset >= 0:
		return fmt.Sprintf("vox: offset %d: %s", e.Offset, e.Msg)
	}
	return "vox: " + e.Msg
}

func formatErrf(chunk string, offset int, format string, args ...any) *FormatError {
	return &FormatError{Chunk: chunk, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// ValidationError reports voxel data that contradicts the model's own
// declared dimensions: out-of-bounds or duplicate coordinates.
type ValidationError struct {
	X, Y, Z int
	Msg     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("vox: voxel (%d,%d,%d): %s", e.X, e.Y, e.Z, e.Msg)
}
