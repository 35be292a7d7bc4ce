package vox

// Vertex is one mesh corner: lattice position plus the material of the quad
// that produced it.
type Vertex struct {
	Position [3]float32
	Material uint8
}

// Mesh is the assembled payload. Indices come in groups of 3 (two triangles
// per quad); Materials holds one entry per triangle.
type Mesh struct {
	Vertices  []Vertex
	Indices   []uint32
	Materials []uint8
}

// addQuad emits the quad's 4 corners and 2 triangles. Faces sit on integer
// boundaries: a positive-direction face is offset +1 along its axis from the
// owning voxel. Corner order is flipped where needed so triangle winding
// yields an outward normal.
func addQuad(mesh *Mesh, q Quad) {
	dir := directions[q.Dir]
	var du, dv [3]float32
	du[dir.u] = float32(q.H)
	dv[dir.v] = float32(q.W)

	var base [3]float32
	base[dir.perp] = float32(q.P)
	if dir.sign > 0 {
		base[dir.perp]++
	}
	base[dir.u] = float32(q.U)
	base[dir.v] = float32(q.V)

	verts := [4]Vertex{
		{Position: base, Material: q.Material},
		{Position: [3]float32{base[0] + du[0], base[1] + du[1], base[2] + du[2]}, Material: q.Material},
		{Position: [3]float32{base[0] + du[0] + dv[0], base[1] + du[1] + dv[1], base[2] + du[2] + dv[2]}, Material: q.Material},
		{Position: [3]float32{base[0] + dv[0], base[1] + dv[1], base[2] + dv[2]}, Material: q.Material},
	}

	// e_u x e_v points along +perp except for the y axis, whose in-plane
	// axes (x,z) cross to -y.
	swap := (dir.sign < 0) != (dir.perp == 1)
	if swap {
		verts[1], verts[3] = verts[3], verts[1]
	}

	baseIdx := uint32(len(mesh.Vertices))
	mesh.Vertices = append(mesh.Vertices, verts[:]...)
	mesh.Indices = append(mesh.Indices, baseIdx, baseIdx+1, baseIdx+2, baseIdx, baseIdx+2, baseIdx+3)
	mesh.Materials = append(mesh.Materials, q.Material, q.Material)
}

// MeshGrid culls and merges every direction and slice and assembles the
// mesh. Directions and slices run in a fixed order, so identical grids
// always produce identical meshes.
func MeshGrid(g *VoxelGrid) *Mesh {
	mesh := &Mesh{}
	dims := [3]int{g.SizeX, g.SizeY, g.SizeZ}
	for di, dir := range directions {
		for p := 0; p < dims[dir.perp]; p++ {
			mask := cullFaces(g, dir, p)
			for _, q := range mergeSlice(mask, di, p) {
				addQuad(mesh, q)
			}
		}
	}
	return mesh
}

// MeshVox decodes a .vox stream and meshes its first model. Either the whole
// pipeline succeeds or no mesh is returned.
func MeshVox(data []byte) (*Mesh, *Model, error) {
	m, err := DecodeModel(data)
	if err != nil {
		return nil, nil, err
	}
	g, err := BuildGrid(m)
	if err != nil {
		return nil, nil, err
	}
	return MeshGrid(g), m, nil
}
