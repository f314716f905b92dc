//go:build !js

package cellgrid

// GLSL 330 core variants of the two grid programs. The WebGL build carries
// the ES 1.00 equivalents; attribute and uniform names match across both.

const gridVertexSrc = `#version 330 core
in vec2 a_position;
in vec3 a_color;
out vec3 v_color;
void main() {
    v_color = a_color;
    gl_Position = vec4(a_position, 0.0, 1.0);
}
`

const gridFragmentSrc = `#version 330 core
in vec3 v_color;
out vec4 fragColor;
void main() {
    fragColor = vec4(v_color, 1.0);
}
`

const textVertexSrc = `#version 330 core
in vec2 a_position;
in vec2 a_uv;
out vec2 v_uv;
void main() {
    v_uv = a_uv;
    gl_Position = vec4(a_position, 0.0, 1.0);
}
`

// The atlas is a single-channel texture; its red channel is the glyph
// coverage and becomes the fragment alpha.
const textFragmentSrc = `#version 330 core
in vec2 v_uv;
out vec4 fragColor;
uniform sampler2D u_texture;
uniform vec3 u_color;
void main() {
    float a = texture(u_texture, v_uv).r;
    fragColor = vec4(u_color, a);
}
`
