package utils

import (
	"fmt"
	"os"

	"github.com/voxelsplace/voxmesh/api"
	"github.com/voxelsplace/voxmesh/vox"
)

// RunVOX2Mesh meshes a .vox file and writes the result as a compressed mesh
// blob, printing the content digest for cache bookkeeping.
func RunVOX2Mesh(inPath, outPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	mesh, model, err := vox.MeshVox(data)
	if err != nil {
		return err
	}
	blob, err := vox.EncodeMesh(mesh, model.Palette, vox.MeshCompZstd)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, blob, 0o644); err != nil {
		return err
	}
	fmt.Printf("mesh blob saved (%d quads, %d bytes, digest %016x)\n",
		len(mesh.Materials)/2, len(blob), vox.MeshDigest(mesh, model.Palette))
	return nil
}

// RunMesh2GLB converts a mesh blob back to a .glb file.
func RunMesh2GLB(inPath, outPath string) error {
	blob, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	glb, err := api.MeshBlobToGLB(blob)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, glb, 0o644)
}

// RunVOXInfo prints the extracted model's dimensions, voxel count and the
// size of the greedy mesh it produces.
func RunVOXInfo(inPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	mesh, model, err := vox.MeshVox(data)
	if err != nil {
		return err
	}
	fmt.Printf("dimensions: %dx%dx%d\n", model.SizeX, model.SizeY, model.SizeZ)
	fmt.Printf("models in file: %d (first extracted)\n", model.NumModels)
	fmt.Printf("voxels: %d\n", len(model.Voxels))
	fmt.Printf("quads: %d (%d vertices, %d triangles)\n",
		len(mesh.Materials)/2, len(mesh.Vertices), len(mesh.Indices)/3)
	return nil
}
