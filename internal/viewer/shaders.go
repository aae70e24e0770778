package viewer

// Vertex records carry position, an unnormalized normal and a texture
// coordinate; the fragment shader normalizes per fragment so the cone
// side can use its fixed-length slant normals directly.
const vertexShaderSrc = `
#version 410 core

in vec3 aPos;
in vec3 aNormal;
in vec2 aTexCoord;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProj;

out vec3 vNormal;
out vec2 vTexCoord;

void main() {
	vec4 world = uModel * vec4(aPos, 1.0);
	gl_Position = uProj * uView * world;
	vNormal = mat3(uModel) * aNormal;
	vTexCoord = aTexCoord;
}
`

const fragmentShaderSrc = `
#version 410 core

in vec3 vNormal;
in vec2 vTexCoord;

uniform sampler2D uTexture;
uniform bool uUseTexture;
uniform vec3 uLightDir;
uniform vec3 uBaseColor;

out vec4 FragColor;

void main() {
	vec3 n = normalize(vNormal);
	float diff = max(dot(n, normalize(uLightDir)), 0.0);

	vec3 base = uBaseColor;
	if (uUseTexture) {
		base = texture(uTexture, vTexCoord).rgb;
	}

	FragColor = vec4(base * (0.25 + 0.75 * diff), 1.0);
}
`
