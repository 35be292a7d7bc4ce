//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/voxelsplace/voxmesh/api"
)

func bytesArg(v js.Value) []byte {
	buf := make([]byte, v.Get("length").Int())
	js.CopyBytesToGo(buf, v)
	return buf
}

func bytesResult(b []byte) js.Value {
	arr := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(arr, b)
	return arr
}

func vox2glb(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing vox bytes")
	}
	out, err := api.VOXToGLB(bytesArg(args[0]))
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return bytesResult(out)
}

func vox2mesh(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing vox bytes")
	}
	out, err := api.VOXToMeshBlob(bytesArg(args[0]))
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return bytesResult(out)
}

func mesh2glb(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing mesh blob bytes")
	}
	out, err := api.MeshBlobToGLB(bytesArg(args[0]))
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return bytesResult(out)
}

func main() {
	js.Global().Set("vox2glb", js.FuncOf(vox2glb))
	js.Global().Set("vox2mesh", js.FuncOf(vox2mesh))
	js.Global().Set("mesh2glb", js.FuncOf(mesh2glb))
	select {}
}
