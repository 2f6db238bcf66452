package pipeline

import (
	"fmt"
	"path/filepath"

	"stagehand/internal/manifest"
)

// Stage is the Dependency Stager: Manifest -> StagedSet. It describes the
// builder stage that resolves the manifest into an isolated prefix with
// whatever build tooling the profile's builder image carries. Resolution
// itself happens at docker-build time; failure there aborts the build with
// no retry.
func Stage(m *manifest.Manifest, p Profile) (StagedSet, error) {
	if m == nil || len(m.Requirements) == 0 {
		return StagedSet{}, fmt.Errorf("dependency staging requires a non-empty manifest")
	}
	if err := p.validate(); err != nil {
		return StagedSet{}, err
	}

	// The manifest must sit in the build context for the stage to COPY it;
	// only its base name is meaningful inside the stage.
	manifestFile := "requirements.txt"
	if m.Path != "" {
		manifestFile = filepath.Base(m.Path)
	}

	return StagedSet{
		StageName:    "staging",
		BaseImage:    p.BuilderImage,
		BuildDir:     p.BuildDir,
		ManifestFile: manifestFile,
		Prefix:       p.Prefix,
		InstallCmd:   p.InstallCommand(manifestFile),
		Digest:       m.Digest(),
	}, nil
}
