package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stagehand/internal/manifest"
)

func fixtureManifest(t *testing.T) *manifest.Manifest {
	t.Helper()
	m, err := manifest.Parse(strings.NewReader("flask==3.0.3\n"))
	require.NoError(t, err)
	return m
}

func fixtureContext(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("# source\n"), 0o644))
	}
	return dir
}

func TestStage(t *testing.T) {
	m := fixtureManifest(t)

	set, err := Stage(m, PythonProfile())
	require.NoError(t, err)

	assert.Equal(t, "staging", set.StageName)
	assert.Equal(t, "python:3.11-slim", set.BaseImage)
	assert.Equal(t, "/install", set.Prefix)
	assert.Equal(t, m.Digest(), set.Digest)
	assert.Equal(t, "pip install --no-cache-dir --prefix=/install -r requirements.txt", set.InstallCmd)
}

func TestStageRejectsMissingManifest(t *testing.T) {
	_, err := Stage(nil, PythonProfile())
	assert.Error(t, err)
}

func TestStageUsesManifestBaseName(t *testing.T) {
	m := fixtureManifest(t)
	m.Path = "deploy/pins/prod-requirements.txt"

	set, err := Stage(m, PythonProfile())
	require.NoError(t, err)
	assert.Equal(t, "prod-requirements.txt", set.ManifestFile)
	assert.Contains(t, set.InstallCmd, "-r prod-requirements.txt")
}

func TestAssemble(t *testing.T) {
	p := PythonProfile()
	set, err := Stage(fixtureManifest(t), p)
	require.NoError(t, err)

	dir := fixtureContext(t, "app.py")
	img, err := Assemble(set, SourceBundle{
		ContextDir: dir,
		Files:      []string{"app.py"},
		Entrypoint: []string{"python", "app.py"},
	}, p)
	require.NoError(t, err)

	assert.Equal(t, "python:3.11-slim", img.BaseImage)
	assert.Equal(t, "/usr/local", img.RuntimePath)
	assert.Equal(t, "appuser", img.User)
	assert.Equal(t, 8000, img.Port)
	assert.Equal(t, set, img.Staged)
}

func TestAssembleFatalOnMissingInputs(t *testing.T) {
	p := PythonProfile()
	set, err := Stage(fixtureManifest(t), p)
	require.NoError(t, err)
	dir := fixtureContext(t, "app.py")

	tests := []struct {
		name string
		set  StagedSet
		src  SourceBundle
	}{
		{
			name: "Absent staged set",
			set:  StagedSet{},
			src:  SourceBundle{ContextDir: dir, Files: []string{"app.py"}, Entrypoint: []string{"python", "app.py"}},
		},
		{
			name: "Missing context dir",
			set:  set,
			src:  SourceBundle{ContextDir: filepath.Join(dir, "nope"), Files: []string{"app.py"}, Entrypoint: []string{"python", "app.py"}},
		},
		{
			name: "Missing source file",
			set:  set,
			src:  SourceBundle{ContextDir: dir, Files: []string{"server.py"}, Entrypoint: []string{"python", "server.py"}},
		},
		{
			name: "No source files",
			set:  set,
			src:  SourceBundle{ContextDir: dir, Entrypoint: []string{"python", "app.py"}},
		},
		{
			name: "No entry command",
			set:  set,
			src:  SourceBundle{ContextDir: dir, Files: []string{"app.py"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assemble(tt.set, tt.src, p)
			assert.Error(t, err)
		})
	}
}

func TestAssembleRejectsPrivilegedUser(t *testing.T) {
	p := PythonProfile()
	set, err := Stage(fixtureManifest(t), p)
	require.NoError(t, err)

	p.User = "root"
	_, err = Assemble(set, SourceBundle{
		ContextDir: fixtureContext(t, "app.py"),
		Files:      []string{"app.py"},
		Entrypoint: []string{"python", "app.py"},
	}, p)
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	p := PythonProfile()
	set, err := Stage(fixtureManifest(t), p)
	require.NoError(t, err)

	img, err := Assemble(set, SourceBundle{
		ContextDir: fixtureContext(t, "app.py"),
		Files:      []string{"app.py"},
		Entrypoint: []string{"python", "app.py"},
	}, p)
	require.NoError(t, err)

	df, err := Render(img)
	require.NoError(t, err)

	// Exactly two stages.
	assert.Equal(t, 2, strings.Count(df, "\nFROM "), "expected exactly two stages:\n%s", df)

	// Stage boundary: the final stage imports only the staged prefix plus
	// source, and never repeats the install command.
	final := df[strings.LastIndex(df, "\nFROM "):]
	assert.Contains(t, final, "COPY --from=staging /install /usr/local")
	assert.Contains(t, final, "COPY app.py ./")
	assert.NotContains(t, final, "pip install")

	// Execution metadata.
	assert.Contains(t, final, "RUN useradd --create-home --shell /usr/sbin/nologin appuser")
	assert.Contains(t, final, "USER appuser")
	assert.Contains(t, final, "EXPOSE 8000")
	assert.Contains(t, final, `CMD ["python","app.py"]`)

	// Staging stage copies the manifest before installing, so an unchanged
	// manifest keeps the staged layer cached across source-only rebuilds.
	staging := df[:strings.LastIndex(df, "\nFROM ")]
	assert.Contains(t, staging, "COPY requirements.txt ./")
	assert.Less(t, strings.Index(staging, "COPY requirements.txt"), strings.Index(staging, "RUN pip install"))
}

func TestProfileByName(t *testing.T) {
	p, err := ProfileByName("python")
	require.NoError(t, err)
	assert.Equal(t, "python", p.Name)

	_, err = ProfileByName("cobol")
	assert.ErrorContains(t, err, "unknown profile")
}
