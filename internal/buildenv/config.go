// Package buildenv resolves the build-time configuration for the pipeline
// CLI: which manifest to stage, which context and source files to assemble,
// what to call the image. Everything is env-driven with sensible defaults
// (STAGEHAND_* variables), so the tool runs with zero flags inside CI. The
// demo service itself carries no configuration surface; this package
// configures only the build.
package buildenv

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the resolved build-time configuration.
type Config struct {
	Image          string   // image name the planner tags
	ManifestPath   string   // dependency manifest (name==version lines)
	ContextPath    string   // docker build context directory
	DockerfilePath string   // where `build` writes the rendered Dockerfile
	Profile        string   // stage recipe profile
	SourceFiles    []string // application source bundle, relative to context
	Entrypoint     []string // exec-form entry command

	DryRun  bool
	NoCache bool
	Pull    bool
}

// Load resolves configuration from STAGEHAND_* environment variables with
// defaults matching the classic Flask tutorial layout.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("stagehand")
	v.AutomaticEnv()

	v.SetDefault("image", "stagehand/demoapp")
	v.SetDefault("manifest", "requirements.txt")
	v.SetDefault("build_context", ".")
	v.SetDefault("dockerfile", "Dockerfile.stagehand")
	v.SetDefault("profile", "python")
	v.SetDefault("source_files", "app.py")
	v.SetDefault("entrypoint", "python,app.py")
	v.SetDefault("dry_run", false)
	v.SetDefault("no_cache", false)
	v.SetDefault("pull", false)

	cfg := &Config{
		Image:          strings.TrimSpace(v.GetString("image")),
		ManifestPath:   strings.TrimSpace(v.GetString("manifest")),
		ContextPath:    strings.TrimSpace(v.GetString("build_context")),
		DockerfilePath: strings.TrimSpace(v.GetString("dockerfile")),
		Profile:        strings.TrimSpace(v.GetString("profile")),
		SourceFiles:    splitList(v.GetString("source_files")),
		Entrypoint:     splitList(v.GetString("entrypoint")),
		DryRun:         v.GetBool("dry_run"),
		NoCache:        v.GetBool("no_cache"),
		Pull:           v.GetBool("pull"),
	}

	if cfg.Image == "" {
		return nil, fmt.Errorf("buildenv: STAGEHAND_IMAGE is empty")
	}
	if cfg.ManifestPath == "" {
		return nil, fmt.Errorf("buildenv: STAGEHAND_MANIFEST is empty")
	}
	if cfg.DockerfilePath == "" {
		return nil, fmt.Errorf("buildenv: STAGEHAND_DOCKERFILE is empty")
	}
	return cfg, nil
}

// splitList parses a comma-separated env value into its non-empty parts.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
