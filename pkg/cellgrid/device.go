package cellgrid

// ShaderStage selects the pipeline stage a shader source targets.
type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

// Device is the slice of the GL surface the grid renderer needs. Handles
// are uint32 names; zero is never a valid handle. The WebGL backend maps
// names to JS objects internally so the renderer body stays identical
// across backends.
//
// All calls assume a current context on the calling goroutine. Byte
// offsets and strides are in bytes, vertex components are float32.
type Device interface {
	Viewport(width, height int)

	CompileShader(stage ShaderStage, source string) (uint32, error)
	LinkProgram(vertex, fragment uint32) (uint32, error)
	DeleteShader(shader uint32)
	UseProgram(program uint32)
	AttribLocation(program uint32, name string) int32
	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, value int)
	Uniform3f(location int32, x, y, z float32)

	CreateBuffer() uint32
	BindArrayBuffer(buffer uint32)
	BufferData(data []float32)
	BufferSubData(offset int, data []float32)

	// CreateAlphaTexture uploads a single-channel image (one byte per
	// pixel) with nearest filtering and edge clamping, and binds it on
	// texture unit 0. The fragment shader reads the channel as .r.
	CreateAlphaTexture(width, height int, pixels []byte) uint32
	BindTexture(texture uint32)

	EnableVertexAttrib(location int32)
	DisableVertexAttrib(location int32)
	VertexAttribPointer(location int32, size, stride, offset int)

	SetBlend(enabled bool)
	ClearColor(r, g, b, a float32)
	Clear()
	DrawTriangles(first, count int)

	// ResetState returns shared context state to a known baseline:
	// no bound array buffer, generic attributes 0 and 1 disabled, no
	// active program, blending off. Render calls this on entry so one
	// call site can never corrupt the next.
	ResetState()
}
