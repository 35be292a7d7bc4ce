package vox

import "fmt"

// Coord addresses one cell of a VoxelGrid.
type Coord struct {
	X, Y, Z int
}

// VoxelGrid is the occupancy store for one model: coordinate -> material
// index, absence meaning empty. Read-only once built.
type VoxelGrid struct {
	SizeX, SizeY, SizeZ int
	cells               map[Coord]uint8
}

// Filter selects voxels during grid construction. It must be a pure function
// of coordinate and material.
type Filter func(x, y, z int, material uint8) bool

// BuildGrid indexes the model's sparse voxels for O(1) lookup.
func BuildGrid(m *Model) (*VoxelGrid, error) {
	return BuildGridFiltered(m, nil)
}

// BuildGridFiltered builds the grid keeping only voxels accepted by keep
// (nil keeps everything). Bounds and duplicates are checked before the
// filter runs, so a filter never masks bad data.
func BuildGridFiltered(m *Model, keep Filter) (*VoxelGrid, error) {
	g := &VoxelGrid{
		SizeX: m.SizeX, SizeY: m.SizeY, SizeZ: m.SizeZ,
		cells: make(map[Coord]uint8, len(m.Voxels)),
	}
	seen := make(map[Coord]struct{}, len(m.Voxels))
	for i, v := range m.Voxels {
		x, y, z := int(v.X), int(v.Y), int(v.Z)
		if x >= g.SizeX || y >= g.SizeY || z >= g.SizeZ {
			return nil, &ValidationError{X: x, Y: y, Z: z,
				Msg: fmt.Sprintf("entry %d outside grid (%d,%d,%d)", i, g.SizeX, g.SizeY, g.SizeZ)}
		}
		if v.Material == 0 {
			return nil, &ValidationError{X: x, Y: y, Z: z,
				Msg: fmt.Sprintf("entry %d has material 0 (empty)", i)}
		}
		key := Coord{x, y, z}
		if _, dup := seen[key]; dup {
			return nil, &ValidationError{X: x, Y: y, Z: z,
				Msg: fmt.Sprintf("duplicate coordinate at entry %d", i)}
		}
		seen[key] = struct{}{}
		if keep != nil && !keep(x, y, z, v.Material) {
			continue
		}
		g.cells[key] = v.Material
	}
	return g, nil
}

// Occupied returns the material at (x,y,z), or 0 when the cell is empty or
// out of bounds.
func (g *VoxelGrid) Occupied(x, y, z int) uint8 {
	if x < 0 || x >= g.SizeX || y < 0 || y >= g.SizeY || z < 0 || z >= g.SizeZ {
		return 0
	}
	return g.cells[Coord{x, y, z}]
}

// Len reports how many cells are occupied.
func (g *VoxelGrid) Len() int {
	return len(g.cells)
}
