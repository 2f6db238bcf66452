// Package manifest reads the dependency manifest consumed by the staging
// stage of the build pipeline. The format is one exact pin per line
// ("name==version"), with blank lines and '#' comments ignored. The parsed
// manifest is an ordered list and is never mutated after parsing; its
// content digest is the cache key for the staged dependency layer.
package manifest

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Requirement is a single (package, exact version) pin.
type Requirement struct {
	Name    string
	Version string
}

func (r Requirement) String() string {
	return r.Name + "==" + r.Version
}

// Manifest is the ordered set of pins for one build. Path is the file it
// was loaded from ("" when parsed from a reader).
type Manifest struct {
	Path         string
	Requirements []Requirement
}

var nameAllowed = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// Load reads and parses the manifest at path. A missing or unreadable file
// is fatal for the build; there is no fallback manifest.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("manifest %q: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("manifest %q: %w", path, err)
	}
	m.Path = path
	return m, nil
}

// Parse reads "name==version" lines from r. Line order is preserved.
// Malformed lines, duplicate packages, and an empty manifest are all errors:
// a staging stage with nothing to stage is a misauthored build, not a no-op.
func Parse(r io.Reader) (*Manifest, error) {
	var reqs []Requirement
	seen := make(map[string]int)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, version, ok := strings.Cut(line, "==")
		name = strings.TrimSpace(name)
		version = strings.TrimSpace(version)
		if !ok || name == "" || version == "" {
			return nil, fmt.Errorf("line %d: expected name==version, got %q", lineNo, line)
		}
		if !nameAllowed.MatchString(name) {
			return nil, fmt.Errorf("line %d: invalid package name %q", lineNo, name)
		}
		if strings.ContainsAny(version, " \t") {
			return nil, fmt.Errorf("line %d: invalid version %q", lineNo, version)
		}

		key := strings.ToLower(name)
		if prev, dup := seen[key]; dup {
			return nil, fmt.Errorf("line %d: duplicate package %q (first pinned on line %d)", lineNo, name, prev)
		}
		seen[key] = lineNo

		reqs = append(reqs, Requirement{Name: name, Version: version})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	if len(reqs) == 0 {
		return nil, fmt.Errorf("manifest is empty")
	}

	return &Manifest{Requirements: reqs}, nil
}

// String renders the canonical form: one pin per line, authored order,
// no comments. Digest hashes exactly this form.
func (m *Manifest) String() string {
	var b strings.Builder
	for _, r := range m.Requirements {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Digest returns the sha256 hex of the canonical form. Same pins in the
// same order always hash the same, regardless of comments or whitespace in
// the authored file.
func (m *Manifest) Digest() string {
	sum := sha256.Sum256([]byte(m.String()))
	return hex.EncodeToString(sum[:])
}

// ShortDigest is the first 12 hex chars of Digest, sized for an image tag.
func (m *Manifest) ShortDigest() string {
	return m.Digest()[:12]
}
