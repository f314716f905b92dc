//go:build js && wasm

package cellgrid

// GLSL ES 1.00 variants of the two grid programs for WebGL1.

const gridVertexSrc = `attribute vec2 a_position;
attribute vec3 a_color;
varying vec3 v_color;
void main() {
    v_color = a_color;
    gl_Position = vec4(a_position, 0.0, 1.0);
}
`

const gridFragmentSrc = `precision mediump float;
varying vec3 v_color;
void main() {
    gl_FragColor = vec4(v_color, 1.0);
}
`

const textVertexSrc = `attribute vec2 a_position;
attribute vec2 a_uv;
varying vec2 v_uv;
void main() {
    v_uv = a_uv;
    gl_Position = vec4(a_position, 0.0, 1.0);
}
`

const textFragmentSrc = `precision mediump float;
varying vec2 v_uv;
uniform sampler2D u_texture;
uniform vec3 u_color;
void main() {
    float a = texture2D(u_texture, v_uv).r;
    gl_FragColor = vec4(u_color, a);
}
`
