// Library usage sample: compose and render a two-stage build without the
// CLI. Run with `go run ./samples`.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"stagehand/internal/manifest"
	"stagehand/internal/pipeline"
)

func main() {
	m, err := manifest.Parse(strings.NewReader("flask==3.0.3\n"))
	if err != nil {
		log.Fatalf("parse manifest: %v", err)
	}

	// A throwaway build context standing in for a real application.
	dir, err := os.MkdirTemp("", "stagehand-sample-")
	if err != nil {
		log.Fatalf("temp context: %v", err)
	}
	defer os.RemoveAll(dir)
	if err := os.WriteFile(filepath.Join(dir, "app.py"), []byte("# demo\n"), 0o644); err != nil {
		log.Fatalf("write source: %v", err)
	}

	prof := pipeline.PythonProfile()

	set, err := pipeline.Stage(m, prof)
	if err != nil {
		log.Fatalf("stage: %v", err)
	}

	img, err := pipeline.Assemble(set, pipeline.SourceBundle{
		ContextDir: dir,
		Files:      []string{"app.py"},
		Entrypoint: []string{"python", "app.py"},
	}, prof)
	if err != nil {
		log.Fatalf("assemble: %v", err)
	}

	df, err := pipeline.Render(img)
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	fmt.Printf("staged set digest: %s\n\n%s", set.Digest, df)
}
