//go:build !(js && wasm)

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/voxelsplace/voxmesh/utils"
)

func usage() {
	fmt.Println("Usage: voxtool <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  vox2glb input.vox output.glb           (convert .vox -> .glb using greedy mesh)")
	fmt.Println("  vox2mesh input.vox output.vmsh         (mesh .vox into a compressed mesh blob)")
	fmt.Println("  mesh2glb input.vmsh output.glb         (convert a mesh blob -> .glb)")
	fmt.Println("  voxinfo input.vox                      (print model and mesh statistics)")
	fmt.Println("  genshape solid <size> output.vox       (generate a solid cube)")
	fmt.Println("  genshape shell <size> output.vox       (generate a hollow shell)")
	fmt.Println("  genshape noise <size> <percentage> output.vox  (generate random fill)")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "vox2glb":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunVOX2GLB(os.Args[2], os.Args[3]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "vox2mesh":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunVOX2Mesh(os.Args[2], os.Args[3]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "mesh2glb":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunMesh2GLB(os.Args[2], os.Args[3]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "voxinfo":
		if len(os.Args) != 3 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunVOXInfo(os.Args[2]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "genshape":
		switch {
		case len(os.Args) == 5 && (os.Args[2] == "solid" || os.Args[2] == "shell"):
			n, err := strconv.Atoi(os.Args[3])
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			if err := utils.RunGenShape(os.Args[2], n, 0, os.Args[4]); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
		case len(os.Args) == 6 && os.Args[2] == "noise":
			n, err := strconv.Atoi(os.Args[3])
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			perc, err := strconv.ParseFloat(os.Args[4], 64)
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			if err := utils.RunGenShape("noise", n, perc, os.Args[5]); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
		default:
			usage()
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(1)
	}

	fmt.Println("Operation completed!")
}
