package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
)

// Assemble is the Runtime Assembler: StagedSet x SourceBundle -> Image.
// It composes the final stage description: minimal base, one stage-copy of
// the staged prefix, verbatim source copies, non-root identity, port and
// entry command metadata. Any missing input is a fatal build error; there
// is no partial-image fallback.
func Assemble(set StagedSet, src SourceBundle, p Profile) (Image, error) {
	if set.Digest == "" || set.StageName == "" || set.Prefix == "" {
		return Image{}, fmt.Errorf("assemble: staged dependency set is missing")
	}
	if err := p.validate(); err != nil {
		return Image{}, err
	}

	if src.ContextDir == "" {
		return Image{}, fmt.Errorf("assemble: build context directory not set")
	}
	if st, err := os.Stat(src.ContextDir); err != nil || !st.IsDir() {
		return Image{}, fmt.Errorf("assemble: build context %q is not a directory", src.ContextDir)
	}
	if len(src.Files) == 0 {
		return Image{}, fmt.Errorf("assemble: source bundle has no files")
	}
	for _, f := range src.Files {
		st, err := os.Stat(filepath.Join(src.ContextDir, f))
		if err != nil {
			return Image{}, fmt.Errorf("assemble: source file %q not found in context %q: %w", f, src.ContextDir, err)
		}
		if st.IsDir() {
			return Image{}, fmt.Errorf("assemble: source entry %q is a directory, expected a file", f)
		}
	}
	if len(src.Entrypoint) == 0 {
		return Image{}, fmt.Errorf("assemble: entry command is empty")
	}

	return Image{
		Staged:      set,
		Source:      src,
		BaseImage:   p.RuntimeImage,
		WorkDir:     p.WorkDir,
		RuntimePath: p.RuntimePath,
		User:        p.User,
		UserCreate:  p.UserCreateCommand(),
		Port:        p.Port,
	}, nil
}
