package render

import (
	_ "embed"
	"fmt"
	"path/filepath"

	"openglhelper"
)

//go:embed shaders/vert.glsl
var vertexSource string

//go:embed shaders/frag.glsl
var fragmentSource string

// loadShader compiles the scene program from dir, or from the built-in sources when dir is empty.
func loadShader(dir string) (*openglhelper.Shader, error) {
	var (
		shader *openglhelper.Shader
		err    error
	)
	if dir != "" {
		shader, err = openglhelper.LoadShaderFromFiles(filepath.Join(dir, "vert.glsl"), filepath.Join(dir, "frag.glsl"))
	} else {
		shader, err = openglhelper.NewShader(vertexSource, fragmentSource)
	}
	if err != nil {
		return nil, err
	}

	if err := shader.BindUniformBlock("Camera", cameraBinding); err != nil {
		shader.Delete()
		return nil, fmt.Errorf("shader is missing the camera block: %w", err)
	}
	shader.Use()
	shader.SetInt("diffuse", textureUnit)
	return shader, nil
}
