package render

// The two shader programs are the renderer's wire protocol: uniform names
// and semantics here are load-bearing and must not drift from the pipeline
// code that sets them, or from internal/optics, which mirrors the fragment
// math on the CPU for the terminal preview and the tests.

const lensVertexShader = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
uniform mat4 mvp;
out vec2 fragTexCoord;
void main() {
    fragTexCoord = vertexTexCoord;
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

// Screen-space radial deflection. Rays whose deflected radius collapses to
// zero or whose source lands outside the frame go to black.
const lensFragmentShader = `#version 330
in vec2 fragTexCoord;
uniform sampler2D texture0;
uniform vec2 lensCenter;
uniform float lensStrength;
uniform vec2 screenSize;
out vec4 finalColor;
void main() {
    vec2 screenPos = fragTexCoord * screenSize;
    vec2 delta = screenPos - lensCenter;
    float r = length(delta);

    if (r > 0.0) {
        float deflection = lensStrength / r;
        float newR = r - deflection;
        if (newR > 0.0) {
            vec2 newUV = (lensCenter + normalize(delta) * newR) / screenSize;
            if (newUV.x >= 0.0 && newUV.x <= 1.0 && newUV.y >= 0.0 && newUV.y <= 1.0) {
                finalColor = texture(texture0, newUV);
            } else {
                finalColor = vec4(0.0, 0.0, 0.0, 1.0);
            }
        } else {
            finalColor = vec4(0.0, 0.0, 0.0, 1.0);
        }
    } else {
        finalColor = vec4(0.0, 0.0, 0.0, 1.0);
    }
}
`

const diskVertexShader = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
uniform mat4 mvp;
out vec2 fragTexCoord;
out vec3 worldPos;
void main() {
    fragTexCoord = vertexTexCoord;
    worldPos = vertexPosition;
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

// Procedural disk shading: radial temperature gradient, Keplerian-like
// rotation, two octaves of hash noise, and a sin(angle) Doppler tint.
const diskFragmentShader = `#version 330
in vec2 fragTexCoord;
in vec3 worldPos;
uniform float time;
uniform vec3 blackHolePos;
uniform float innerRadius;
uniform float outerRadius;
uniform vec3 hotColor;
uniform vec3 coolColor;
out vec4 finalColor;

float noise(vec2 p) {
    return fract(sin(dot(p, vec2(127.1, 311.7))) * 43758.5453);
}

void main() {
    vec2 pos = worldPos.xz - blackHolePos.xz;
    float r = length(pos);
    float angle = atan(pos.y, pos.x);

    if (r <= innerRadius || r >= outerRadius) {
        discard;
    }

    float temp = pow((outerRadius - r) / (outerRadius - innerRadius), 0.5);

    angle += time / sqrt(r);

    vec2 noiseCoord = vec2(angle * 3.0, r * 0.1) + vec2(time * 0.1, 0.0);
    float turbulence = noise(noiseCoord) * 0.5 + noise(noiseCoord * 2.0) * 0.25;

    float doppler = 1.0 + sin(angle) * 0.3;

    vec3 color = mix(coolColor, hotColor, temp + turbulence * 0.3) * doppler;
    float alpha = temp * (0.7 + turbulence * 0.3);
    finalColor = vec4(color, alpha);
}
`
