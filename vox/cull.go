package vox

// direction is one of the 6 axis-aligned face orientations: the axis
// perpendicular to the face (perp), the sign along it, and the two in-plane
// axes (u, v) that index slice masks.
type direction struct {
	perp int
	sign int
	u, v int
}

var directions = [6]direction{
	{perp: 0, sign: +1, u: 1, v: 2},
	{perp: 0, sign: -1, u: 1, v: 2},
	{perp: 1, sign: +1, u: 0, v: 2},
	{perp: 1, sign: -1, u: 0, v: 2},
	{perp: 2, sign: +1, u: 0, v: 1},
	{perp: 2, sign: -1, u: 0, v: 1},
}

// sliceMask is the exposure map of one slice: material per (u,v) cell, 0 for
// cells with no exposed face.
type sliceMask struct {
	du, dv int
	cells  []uint8
}

func newSliceMask(du, dv int) *sliceMask {
	return &sliceMask{du: du, dv: dv, cells: make([]uint8, du*dv)}
}

func (m *sliceMask) at(u, v int) uint8 {
	return m.cells[u*m.dv+v]
}

func (m *sliceMask) set(u, v int, c uint8) {
	m.cells[u*m.dv+v] = c
}

// cullFaces builds the exposure mask for slice p of the given direction. A
// face is exposed iff the neighbor across it is out of bounds or empty, so
// faces between two solid voxels never reach the mesher.
func cullFaces(g *VoxelGrid, dir direction, p int) *sliceMask {
	dims := [3]int{g.SizeX, g.SizeY, g.SizeZ}
	mask := newSliceMask(dims[dir.u], dims[dir.v])
	for u := 0; u < dims[dir.u]; u++ {
		for v := 0; v < dims[dir.v]; v++ {
			var pos [3]int
			pos[dir.u], pos[dir.v], pos[dir.perp] = u, v, p
			c := g.Occupied(pos[0], pos[1], pos[2])
			if c == 0 {
				continue
			}
			adj := pos
			adj[dir.perp] += dir.sign
			if g.Occupied(adj[0], adj[1], adj[2]) == 0 {
				mask.set(u, v, c)
			}
		}
	}
	return mask
}
