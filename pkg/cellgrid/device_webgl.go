//go:build js && wasm

package cellgrid

import (
	"fmt"
	"syscall/js"
)

// WebGLDevice drives a WebGL1 context obtained from a canvas. GL object
// handles live in per-kind tables so the renderer can keep using plain
// uint32 names; slot 0 is reserved as the null handle.
type WebGLDevice struct {
	gl     js.Value
	consts glConsts

	shaders  []js.Value
	programs []js.Value
	buffers  []js.Value
	textures []js.Value

	uniforms   []js.Value
	uniformIdx map[uniformKey]int32
}

type uniformKey struct {
	program uint32
	name    string
}

type glConsts struct {
	arrayBuffer      int
	dynamicDraw      int
	floatType        int
	triangles        int
	texture2D        int
	luminance        int
	unsignedByte     int
	textureMinFilter int
	textureMagFilter int
	nearest          int
	clampToEdge      int
	colorBufferBit   int
	blend            int
	srcAlpha         int
	oneMinusSrcAlpha int
	compileStatus    int
	linkStatus       int
	vertexShader     int
	fragmentShader   int
	textureWrapS     int
	textureWrapT     int
	texture0         int
	unpackAlignment  int
}

func NewWebGLDevice(glCtx any) (*WebGLDevice, error) {
	gl, ok := glCtx.(js.Value)
	if !ok || gl.IsUndefined() || gl.IsNull() {
		return nil, fmt.Errorf("webgl context is required")
	}
	d := &WebGLDevice{
		gl:         gl,
		uniformIdx: make(map[uniformKey]int32),
	}
	d.consts = glConsts{
		arrayBuffer:      gl.Get("ARRAY_BUFFER").Int(),
		dynamicDraw:      gl.Get("DYNAMIC_DRAW").Int(),
		floatType:        gl.Get("FLOAT").Int(),
		triangles:        gl.Get("TRIANGLES").Int(),
		texture2D:        gl.Get("TEXTURE_2D").Int(),
		luminance:        gl.Get("LUMINANCE").Int(),
		unsignedByte:     gl.Get("UNSIGNED_BYTE").Int(),
		textureMinFilter: gl.Get("TEXTURE_MIN_FILTER").Int(),
		textureMagFilter: gl.Get("TEXTURE_MAG_FILTER").Int(),
		nearest:          gl.Get("NEAREST").Int(),
		clampToEdge:      gl.Get("CLAMP_TO_EDGE").Int(),
		colorBufferBit:   gl.Get("COLOR_BUFFER_BIT").Int(),
		blend:            gl.Get("BLEND").Int(),
		srcAlpha:         gl.Get("SRC_ALPHA").Int(),
		oneMinusSrcAlpha: gl.Get("ONE_MINUS_SRC_ALPHA").Int(),
		compileStatus:    gl.Get("COMPILE_STATUS").Int(),
		linkStatus:       gl.Get("LINK_STATUS").Int(),
		vertexShader:     gl.Get("VERTEX_SHADER").Int(),
		fragmentShader:   gl.Get("FRAGMENT_SHADER").Int(),
		textureWrapS:     gl.Get("TEXTURE_WRAP_S").Int(),
		textureWrapT:     gl.Get("TEXTURE_WRAP_T").Int(),
		texture0:         gl.Get("TEXTURE0").Int(),
		unpackAlignment:  gl.Get("UNPACK_ALIGNMENT").Int(),
	}
	return d, nil
}

func (d *WebGLDevice) Viewport(width, height int) {
	d.gl.Call("viewport", 0, 0, width, height)
}

func (d *WebGLDevice) CompileShader(stage ShaderStage, source string) (uint32, error) {
	shaderType := d.consts.vertexShader
	if stage == FragmentStage {
		shaderType = d.consts.fragmentShader
	}
	shader := d.gl.Call("createShader", shaderType)
	d.gl.Call("shaderSource", shader, source)
	d.gl.Call("compileShader", shader)
	if !d.gl.Call("getShaderParameter", shader, d.consts.compileStatus).Bool() {
		log := d.gl.Call("getShaderInfoLog", shader).String()
		d.gl.Call("deleteShader", shader)
		return 0, fmt.Errorf("compile error: %s", log)
	}
	d.shaders = append(d.shaders, shader)
	return uint32(len(d.shaders)), nil
}

func (d *WebGLDevice) LinkProgram(vertex, fragment uint32) (uint32, error) {
	program := d.gl.Call("createProgram")
	d.gl.Call("attachShader", program, d.shaders[vertex-1])
	d.gl.Call("attachShader", program, d.shaders[fragment-1])
	d.gl.Call("linkProgram", program)
	if !d.gl.Call("getProgramParameter", program, d.consts.linkStatus).Bool() {
		log := d.gl.Call("getProgramInfoLog", program).String()
		d.gl.Call("deleteProgram", program)
		return 0, fmt.Errorf("link error: %s", log)
	}
	d.programs = append(d.programs, program)
	return uint32(len(d.programs)), nil
}

func (d *WebGLDevice) DeleteShader(shader uint32) {
	d.gl.Call("deleteShader", d.shaders[shader-1])
	d.shaders[shader-1] = js.Null()
}

func (d *WebGLDevice) UseProgram(program uint32) {
	if program == 0 {
		d.gl.Call("useProgram", js.Null())
		return
	}
	d.gl.Call("useProgram", d.programs[program-1])
}

func (d *WebGLDevice) AttribLocation(program uint32, name string) int32 {
	return int32(d.gl.Call("getAttribLocation", d.programs[program-1], name).Int())
}

func (d *WebGLDevice) UniformLocation(program uint32, name string) int32 {
	key := uniformKey{program: program, name: name}
	if idx, ok := d.uniformIdx[key]; ok {
		return idx
	}
	loc := d.gl.Call("getUniformLocation", d.programs[program-1], name)
	if loc.IsNull() {
		return -1
	}
	d.uniforms = append(d.uniforms, loc)
	idx := int32(len(d.uniforms))
	d.uniformIdx[key] = idx
	return idx
}

func (d *WebGLDevice) Uniform1i(location int32, value int) {
	if location <= 0 {
		return
	}
	d.gl.Call("uniform1i", d.uniforms[location-1], value)
}

func (d *WebGLDevice) Uniform3f(location int32, x, y, z float32) {
	if location <= 0 {
		return
	}
	d.gl.Call("uniform3f", d.uniforms[location-1], x, y, z)
}

func (d *WebGLDevice) CreateBuffer() uint32 {
	d.buffers = append(d.buffers, d.gl.Call("createBuffer"))
	return uint32(len(d.buffers))
}

func (d *WebGLDevice) BindArrayBuffer(buffer uint32) {
	if buffer == 0 {
		d.gl.Call("bindBuffer", d.consts.arrayBuffer, js.Null())
		return
	}
	d.gl.Call("bindBuffer", d.consts.arrayBuffer, d.buffers[buffer-1])
}

func (d *WebGLDevice) BufferData(data []float32) {
	d.gl.Call("bufferData", d.consts.arrayBuffer, float32Array(data), d.consts.dynamicDraw)
}

func (d *WebGLDevice) BufferSubData(offset int, data []float32) {
	d.gl.Call("bufferSubData", d.consts.arrayBuffer, offset, float32Array(data))
}

func (d *WebGLDevice) CreateAlphaTexture(width, height int, pixels []byte) uint32 {
	texture := d.gl.Call("createTexture")
	d.gl.Call("activeTexture", d.consts.texture0)
	d.gl.Call("bindTexture", d.consts.texture2D, texture)
	d.gl.Call("pixelStorei", d.consts.unpackAlignment, 1)
	arr := js.Global().Get("Uint8Array").New(len(pixels))
	js.CopyBytesToJS(arr, pixels)
	d.gl.Call("texImage2D", d.consts.texture2D, 0, d.consts.luminance,
		width, height, 0, d.consts.luminance, d.consts.unsignedByte, arr)
	d.gl.Call("texParameteri", d.consts.texture2D, d.consts.textureMinFilter, d.consts.nearest)
	d.gl.Call("texParameteri", d.consts.texture2D, d.consts.textureMagFilter, d.consts.nearest)
	d.gl.Call("texParameteri", d.consts.texture2D, d.consts.textureWrapS, d.consts.clampToEdge)
	d.gl.Call("texParameteri", d.consts.texture2D, d.consts.textureWrapT, d.consts.clampToEdge)
	d.textures = append(d.textures, texture)
	return uint32(len(d.textures))
}

func (d *WebGLDevice) BindTexture(texture uint32) {
	d.gl.Call("activeTexture", d.consts.texture0)
	if texture == 0 {
		d.gl.Call("bindTexture", d.consts.texture2D, js.Null())
		return
	}
	d.gl.Call("bindTexture", d.consts.texture2D, d.textures[texture-1])
}

func (d *WebGLDevice) EnableVertexAttrib(location int32) {
	d.gl.Call("enableVertexAttribArray", location)
}

func (d *WebGLDevice) DisableVertexAttrib(location int32) {
	d.gl.Call("disableVertexAttribArray", location)
}

func (d *WebGLDevice) VertexAttribPointer(location int32, size, stride, offset int) {
	d.gl.Call("vertexAttribPointer", location, size, d.consts.floatType, false, stride, offset)
}

func (d *WebGLDevice) SetBlend(enabled bool) {
	if enabled {
		d.gl.Call("enable", d.consts.blend)
		d.gl.Call("blendFunc", d.consts.srcAlpha, d.consts.oneMinusSrcAlpha)
	} else {
		d.gl.Call("disable", d.consts.blend)
	}
}

func (d *WebGLDevice) ClearColor(r, g, b, a float32) {
	d.gl.Call("clearColor", r, g, b, a)
}

func (d *WebGLDevice) Clear() {
	d.gl.Call("clear", d.consts.colorBufferBit)
}

func (d *WebGLDevice) DrawTriangles(first, count int) {
	d.gl.Call("drawArrays", d.consts.triangles, first, count)
}

func (d *WebGLDevice) ResetState() {
	d.gl.Call("bindBuffer", d.consts.arrayBuffer, js.Null())
	d.gl.Call("disableVertexAttribArray", 0)
	d.gl.Call("disableVertexAttribArray", 1)
	d.gl.Call("useProgram", js.Null())
	d.gl.Call("disable", d.consts.blend)
}
