package vox

import (
	"reflect"
	"testing"
)

func buildTestGrid(t *testing.T, m *Model) *VoxelGrid {
	t.Helper()
	g, err := BuildGrid(m)
	if err != nil {
		t.Fatalf("build grid: %v", err)
	}
	return g
}

func solidCubeModel(n int, material uint8) *Model {
	m := &Model{SizeX: n, SizeY: n, SizeZ: n, Palette: DefaultPalette(), NumModels: 1}
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				m.Voxels = append(m.Voxels, Voxel{uint8(x), uint8(y), uint8(z), material})
			}
		}
	}
	return m
}

func shellModel(n int, material uint8) *Model {
	m := &Model{SizeX: n, SizeY: n, SizeZ: n, Palette: DefaultPalette(), NumModels: 1}
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				if x == 0 || x == n-1 || y == 0 || y == n-1 || z == 0 || z == n-1 {
					m.Voxels = append(m.Voxels, Voxel{uint8(x), uint8(y), uint8(z), material})
				}
			}
		}
	}
	return m
}

func collectQuads(g *VoxelGrid) []Quad {
	dims := [3]int{g.SizeX, g.SizeY, g.SizeZ}
	var quads []Quad
	for di, dir := range directions {
		for p := 0; p < dims[dir.perp]; p++ {
			quads = append(quads, mergeSlice(cullFaces(g, dir, p), di, p)...)
		}
	}
	return quads
}

func TestSolidCubeSixQuads(t *testing.T) {
	g := buildTestGrid(t, solidCubeModel(3, 1))
	quads := collectQuads(g)
	if len(quads) != 6 {
		t.Fatalf("3x3x3 cube should mesh to 6 quads, got %d", len(quads))
	}
	for _, q := range quads {
		if q.W != 3 || q.H != 3 {
			t.Fatalf("each face should merge to one 3x3 quad, got %+v", q)
		}
	}
	mesh := MeshGrid(g)
	if len(mesh.Vertices) != 24 || len(mesh.Indices) != 36 || len(mesh.Materials) != 12 {
		t.Fatalf("mesh size mismatch: %d verts, %d indices, %d materials",
			len(mesh.Vertices), len(mesh.Indices), len(mesh.Materials))
	}
}

func TestHollowShellBothBoundaries(t *testing.T) {
	g := buildTestGrid(t, shellModel(4, 2))
	quads := collectQuads(g)
	if len(quads) != 12 {
		t.Fatalf("4x4x4 shell should mesh to 12 quads, got %d", len(quads))
	}
	// per direction: one 4x4 outer face and one 2x2 inner face
	perDir := map[int][]int{}
	total := 0
	for _, q := range quads {
		perDir[q.Dir] = append(perDir[q.Dir], q.W*q.H)
		total += q.W * q.H
	}
	if total != 120 {
		t.Fatalf("covered cells = %d, want 120 (96 outer + 24 inner)", total)
	}
	for dir, areas := range perDir {
		if len(areas) != 2 {
			t.Fatalf("direction %d should have outer and inner quads, got %v", dir, areas)
		}
		if !(areas[0] == 16 && areas[1] == 4 || areas[0] == 4 && areas[1] == 16) {
			t.Fatalf("direction %d areas = %v, want one 16 and one 4", dir, areas)
		}
	}
}

func TestNoInternalFaces(t *testing.T) {
	m := &Model{SizeX: 2, SizeY: 1, SizeZ: 1, Palette: DefaultPalette(), NumModels: 1,
		Voxels: []Voxel{{0, 0, 0, 1}, {1, 0, 0, 1}}}
	g := buildTestGrid(t, m)
	quads := collectQuads(g)
	if len(quads) != 6 {
		t.Fatalf("1x1x2 bar should mesh to 6 quads, got %d", len(quads))
	}
	for _, q := range quads {
		// the shared plane between the two voxels is +x at slice 0 and -x at slice 1
		if q.Dir == 0 && q.P == 0 {
			t.Fatalf("internal +x face leaked: %+v", q)
		}
		if q.Dir == 1 && q.P == 1 {
			t.Fatalf("internal -x face leaked: %+v", q)
		}
	}
}

func TestSlicePartition(t *testing.T) {
	m := &Model{SizeX: 5, SizeY: 5, SizeZ: 5, Palette: DefaultPalette(), NumModels: 1}
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			for z := 0; z < 5; z++ {
				if (x+2*y+3*z)%5 != 0 {
					m.Voxels = append(m.Voxels, Voxel{uint8(x), uint8(y), uint8(z), uint8((x+y+z)%3 + 1)})
				}
			}
		}
	}
	g := buildTestGrid(t, m)
	dims := [3]int{g.SizeX, g.SizeY, g.SizeZ}

	for di, dir := range directions {
		for p := 0; p < dims[dir.perp]; p++ {
			mask := cullFaces(g, dir, p)
			covered := make([]int, len(mask.cells))
			for _, q := range mergeSlice(mask, di, p) {
				for u := q.U; u < q.U+q.H; u++ {
					for v := q.V; v < q.V+q.W; v++ {
						if mask.at(u, v) != q.Material {
							t.Fatalf("dir %d slice %d: quad %+v covers cell (%d,%d) of different material", di, p, q, u, v)
						}
						covered[u*mask.dv+v]++
					}
				}
			}
			for i, n := range covered {
				exposed := mask.cells[i] != 0
				if exposed && n != 1 {
					t.Fatalf("dir %d slice %d: exposed cell %d covered %d times", di, p, i, n)
				}
				if !exposed && n != 0 {
					t.Fatalf("dir %d slice %d: empty cell %d covered %d times", di, p, i, n)
				}
			}
		}
	}
}

func TestMeshDeterminism(t *testing.T) {
	data := EncodeModel(shellModel(5, 3))
	mesh1, model1, err := MeshVox(data)
	if err != nil {
		t.Fatalf("mesh failed: %v", err)
	}
	mesh2, model2, err := MeshVox(data)
	if err != nil {
		t.Fatalf("mesh failed: %v", err)
	}
	if !reflect.DeepEqual(mesh1, mesh2) {
		t.Fatal("identical input produced different meshes")
	}
	if MeshDigest(mesh1, model1.Palette) != MeshDigest(mesh2, model2.Palette) {
		t.Fatal("identical meshes have different digests")
	}
}

func TestWindingOutward(t *testing.T) {
	g := buildTestGrid(t, solidCubeModel(1, 1))
	mesh := MeshGrid(g)
	if len(mesh.Materials) != 12 {
		t.Fatalf("unit voxel should mesh to 6 quads, got %d triangles", len(mesh.Indices)/3)
	}
	want := [6][3]float32{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	plane := [6]float32{1, 0, 1, 0, 1, 0} // boundary coordinate along each quad's axis
	for k := 0; k < 6; k++ {
		dir := directions[k]
		for _, vi := range mesh.Indices[k*6 : k*6+6] {
			if got := mesh.Vertices[vi].Position[dir.perp]; got != plane[k] {
				t.Fatalf("quad %d vertex off its face plane: got %v, want %v", k, got, plane[k])
			}
		}
		p0 := mesh.Vertices[mesh.Indices[k*6]].Position
		p1 := mesh.Vertices[mesh.Indices[k*6+1]].Position
		p2 := mesh.Vertices[mesh.Indices[k*6+2]].Position
		e1 := [3]float32{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
		e2 := [3]float32{p2[0] - p1[0], p2[1] - p1[1], p2[2] - p1[2]}
		normal := [3]float32{
			e1[1]*e2[2] - e1[2]*e2[1],
			e1[2]*e2[0] - e1[0]*e2[2],
			e1[0]*e2[1] - e1[1]*e2[0],
		}
		if normal != want[k] {
			t.Fatalf("quad %d winding gives normal %v, want %v", k, normal, want[k])
		}
	}
}
