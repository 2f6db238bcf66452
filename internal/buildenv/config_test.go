package buildenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "stagehand/demoapp", cfg.Image)
	assert.Equal(t, "requirements.txt", cfg.ManifestPath)
	assert.Equal(t, ".", cfg.ContextPath)
	assert.Equal(t, "Dockerfile.stagehand", cfg.DockerfilePath)
	assert.Equal(t, "python", cfg.Profile)
	assert.Equal(t, []string{"app.py"}, cfg.SourceFiles)
	assert.Equal(t, []string{"python", "app.py"}, cfg.Entrypoint)
	assert.False(t, cfg.DryRun)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STAGEHAND_IMAGE", "registry.local/hello")
	t.Setenv("STAGEHAND_MANIFEST", "pins/requirements.txt")
	t.Setenv("STAGEHAND_BUILD_CONTEXT", "examples/flask")
	t.Setenv("STAGEHAND_SOURCE_FILES", "app.py, wsgi.py")
	t.Setenv("STAGEHAND_ENTRYPOINT", "python,wsgi.py")
	t.Setenv("STAGEHAND_DRY_RUN", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "registry.local/hello", cfg.Image)
	assert.Equal(t, "pins/requirements.txt", cfg.ManifestPath)
	assert.Equal(t, "examples/flask", cfg.ContextPath)
	assert.Equal(t, []string{"app.py", "wsgi.py"}, cfg.SourceFiles)
	assert.Equal(t, []string{"python", "wsgi.py"}, cfg.Entrypoint)
	assert.True(t, cfg.DryRun)
}

func TestLoadRejectsEmptyImage(t *testing.T) {
	t.Setenv("STAGEHAND_IMAGE", "   ")

	_, err := Load()
	assert.ErrorContains(t, err, "STAGEHAND_IMAGE")
}
