package utils

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/voxelsplace/voxmesh/vox"
)

// solidModel fills an n-cubed grid completely with one material.
func solidModel(n int, material uint8) *vox.Model {
	m := &vox.Model{SizeX: n, SizeY: n, SizeZ: n, Palette: vox.DefaultPalette(), NumModels: 1}
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				m.Voxels = append(m.Voxels, vox.Voxel{X: uint8(x), Y: uint8(y), Z: uint8(z), Material: material})
			}
		}
	}
	return m
}

// shellModel occupies only the boundary cells of an n-cubed grid, leaving the
// interior hollow.
func shellModel(n int, material uint8) *vox.Model {
	m := &vox.Model{SizeX: n, SizeY: n, SizeZ: n, Palette: vox.DefaultPalette(), NumModels: 1}
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				if x == 0 || x == n-1 || y == 0 || y == n-1 || z == 0 || z == n-1 {
					m.Voxels = append(m.Voxels, vox.Voxel{X: uint8(x), Y: uint8(y), Z: uint8(z), Material: material})
				}
			}
		}
	}
	return m
}

// noiseModel fills the given percentage of an n-cubed grid with random
// materials in [1..255].
func noiseModel(n int, percentage float64, r *rand.Rand) *vox.Model {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	total := n * n * n
	want := int(float64(total)*(percentage/100.0) + 0.5)

	idx := make([]int, total)
	for i := range idx {
		idx[i] = i
	}
	// Fisher-Yates shuffle only the first 'want' items
	for i := 0; i < want; i++ {
		j := i + r.Intn(total-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	m := &vox.Model{SizeX: n, SizeY: n, SizeZ: n, Palette: vox.DefaultPalette(), NumModels: 1}
	for k := 0; k < want; k++ {
		i := idx[k]
		x := i % n
		y := (i / n) % n
		z := i / (n * n)
		m.Voxels = append(m.Voxels, vox.Voxel{
			X: uint8(x), Y: uint8(y), Z: uint8(z),
			Material: uint8(1 + r.Intn(255)),
		})
	}
	return m
}

// RunGenShape writes a procedurally generated .vox file. kind is one of
// solid, shell or noise; percentage only applies to noise.
func RunGenShape(kind string, n int, percentage float64, outPath string) error {
	if n < 1 || n > 256 {
		return fmt.Errorf("size %d out of range (1..256)", n)
	}
	var m *vox.Model
	switch kind {
	case "solid":
		m = solidModel(n, 1)
	case "shell":
		m = shellModel(n, 1)
	case "noise":
		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		m = noiseModel(n, percentage, r)
	default:
		return fmt.Errorf("unknown shape kind %q", kind)
	}
	data := vox.EncodeModel(m)
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return err
	}
	fmt.Printf(".vox saved (%d voxels, %d bytes)\n", len(m.Voxels), len(data))
	return nil
}
