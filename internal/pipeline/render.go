package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"stagehand/internal/assets"
)

// Render emits the two-stage Dockerfile for an assembled image. The output
// is the only thing the docker runner consumes; everything upstream of here
// is side-effect free.
func Render(img Image) (string, error) {
	raw, err := assets.DockerfileTemplate()
	if err != nil {
		return "", err
	}

	tmpl, err := template.New("dockerfile").Funcs(template.FuncMap{
		// exec-form CMD needs a JSON array
		"json": func(v any) (string, error) {
			b, err := json.Marshal(v)
			return string(b), err
		},
	}).Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse dockerfile template: %w", err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, img); err != nil {
		return "", fmt.Errorf("render dockerfile: %w", err)
	}
	return b.String(), nil
}
