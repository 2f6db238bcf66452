package main

import (
	"fmt"

	"stagehand/internal/buildenv"
	"stagehand/internal/manifest"
	"stagehand/internal/pipeline"
)

// composition is everything the subcommands derive from one config load:
// the parsed manifest and the fully assembled image description.
type composition struct {
	cfg     *buildenv.Config
	man     *manifest.Manifest
	profile pipeline.Profile
	image   pipeline.Image
}

// compose runs the whole pure half of the pipeline: load config, load
// manifest, stage, assemble. Any missing input fails here, before anything
// touches docker.
func compose() (*composition, error) {
	cfg, err := buildenv.Load()
	if err != nil {
		return nil, err
	}

	m, err := manifest.Load(cfg.ManifestPath)
	if err != nil {
		return nil, err
	}

	prof, err := pipeline.ProfileByName(cfg.Profile)
	if err != nil {
		return nil, err
	}

	set, err := pipeline.Stage(m, prof)
	if err != nil {
		return nil, fmt.Errorf("dependency staging: %w", err)
	}

	img, err := pipeline.Assemble(set, pipeline.SourceBundle{
		ContextDir: cfg.ContextPath,
		Files:      cfg.SourceFiles,
		Entrypoint: cfg.Entrypoint,
	}, prof)
	if err != nil {
		return nil, fmt.Errorf("runtime assembly: %w", err)
	}

	return &composition{cfg: cfg, man: m, profile: prof, image: img}, nil
}
