package assets

import (
	"embed"
	"fmt"
)

//go:embed dockerfile.tmpl
var templates embed.FS

// DockerfileTemplate loads the embedded two-stage Dockerfile template.
func DockerfileTemplate() (string, error) {
	data, err := templates.ReadFile("dockerfile.tmpl")
	if err != nil {
		// embed guarantees presence at compile time; surface anyway
		return "", fmt.Errorf("read dockerfile.tmpl: %w", err)
	}
	return string(data), nil
}
