// internal/docker/inspect.go
//
// Reads back the config of a built image via `docker image inspect`. This
// is the raw material for the verify checks: execution user, declared
// port, entry command, labels. Only the config subset we assert on is
// modeled; everything else in the inspect output is ignored.

package docker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"stagehand/internal/executil"
)

// ImageConfig is the subset of the image config that verify asserts on.
type ImageConfig struct {
	User         string              `json:"User"`
	ExposedPorts map[string]struct{} `json:"ExposedPorts"`
	Env          []string            `json:"Env"`
	Cmd          []string            `json:"Cmd"`
	Entrypoint   []string            `json:"Entrypoint"`
	WorkingDir   string              `json:"WorkingDir"`
	Labels       map[string]string   `json:"Labels"`
}

// InspectImage returns the config of a local image ref. A missing image is
// an error (the ref was never built, or was pruned).
func InspectImage(ctx context.Context, ref string) (*ImageConfig, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("InspectImage: ref is empty")
	}

	out, err := executil.CaptureCMD(ctx, "docker", "image", "inspect", "--format", "{{json .Config}}", ref)
	if err != nil {
		return nil, fmt.Errorf("inspect %q: %w", ref, err)
	}

	var cfg ImageConfig
	if err := json.Unmarshal(out, &cfg); err != nil {
		return nil, fmt.Errorf("inspect %q: decode config: %w", ref, err)
	}
	return &cfg, nil
}
