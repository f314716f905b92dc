package cellgrid

import "fmt"

// fakeDevice records the command stream and keeps host-uploaded buffer
// contents readable, so tests can assert on what would reach the GPU
// without a context.
type fakeDevice struct {
	nextHandle uint32
	bound      uint32
	buffers    map[uint32][]float32
	log        []string

	compileOK  int // successful compiles before compileErr kicks in, <0 = unlimited
	compileErr error

	texWidth  int
	texHeight int
	texPixels []byte
}

var _ Device = (*fakeDevice)(nil)

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		buffers:   make(map[uint32][]float32),
		compileOK: -1,
	}
}

func (d *fakeDevice) record(format string, args ...any) {
	d.log = append(d.log, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) handle() uint32 {
	d.nextHandle++
	return d.nextHandle
}

func (d *fakeDevice) Viewport(width, height int) {
	d.record("viewport %dx%d", width, height)
}

func (d *fakeDevice) CompileShader(stage ShaderStage, source string) (uint32, error) {
	if d.compileOK == 0 {
		return 0, d.compileErr
	}
	if d.compileOK > 0 {
		d.compileOK--
	}
	d.record("compile stage=%d", stage)
	return d.handle(), nil
}

func (d *fakeDevice) LinkProgram(vertex, fragment uint32) (uint32, error) {
	d.record("link %d %d", vertex, fragment)
	return d.handle(), nil
}

func (d *fakeDevice) DeleteShader(shader uint32) {}

func (d *fakeDevice) UseProgram(program uint32) {
	d.record("useProgram %d", program)
}

func (d *fakeDevice) AttribLocation(program uint32, name string) int32 {
	if name == "a_position" {
		return 0
	}
	return 1
}

func (d *fakeDevice) UniformLocation(program uint32, name string) int32 { return 1 }

func (d *fakeDevice) Uniform1i(location int32, value int) {
	d.record("uniform1i %d %d", location, value)
}

func (d *fakeDevice) Uniform3f(location int32, x, y, z float32) {
	d.record("uniform3f %d %v %v %v", location, x, y, z)
}

func (d *fakeDevice) CreateBuffer() uint32 {
	h := d.handle()
	d.record("createBuffer %d", h)
	return h
}

func (d *fakeDevice) BindArrayBuffer(buffer uint32) {
	d.bound = buffer
	d.record("bindBuffer %d", buffer)
}

func (d *fakeDevice) BufferData(data []float32) {
	d.buffers[d.bound] = append([]float32(nil), data...)
	d.record("bufferData buf=%d %v", d.bound, data)
}

func (d *fakeDevice) BufferSubData(offset int, data []float32) {
	dst := d.buffers[d.bound]
	start := offset / 4
	if start+len(data) > len(dst) {
		grown := make([]float32, start+len(data))
		copy(grown, dst)
		dst = grown
	}
	copy(dst[start:], data)
	d.buffers[d.bound] = dst
	d.record("bufferSubData buf=%d off=%d n=%d", d.bound, offset, len(data))
}

func (d *fakeDevice) CreateAlphaTexture(width, height int, pixels []byte) uint32 {
	d.texWidth = width
	d.texHeight = height
	d.texPixels = append([]byte(nil), pixels...)
	h := d.handle()
	d.record("createTexture %d %dx%d", h, width, height)
	return h
}

func (d *fakeDevice) BindTexture(texture uint32) {
	d.record("bindTexture %d", texture)
}

func (d *fakeDevice) EnableVertexAttrib(location int32) {
	d.record("enableAttrib %d", location)
}

func (d *fakeDevice) DisableVertexAttrib(location int32) {
	d.record("disableAttrib %d", location)
}

func (d *fakeDevice) VertexAttribPointer(location int32, size, stride, offset int) {
	d.record("attribPointer %d size=%d stride=%d off=%d", location, size, stride, offset)
}

func (d *fakeDevice) SetBlend(enabled bool) {
	d.record("blend %v", enabled)
}

func (d *fakeDevice) ClearColor(r, g, b, a float32) {
	d.record("clearColor %v %v %v %v", r, g, b, a)
}

func (d *fakeDevice) Clear() {
	d.record("clear")
}

func (d *fakeDevice) DrawTriangles(first, count int) {
	d.record("draw first=%d count=%d", first, count)
}

func (d *fakeDevice) ResetState() {
	d.record("reset")
}
