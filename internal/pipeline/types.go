// Package pipeline models the two-stage image build: a dependency staging
// stage that materializes third-party packages into an isolated prefix using
// throwaway build tooling, and a runtime assembly stage that starts from a
// minimal base and imports only the staged prefix plus the application
// source. Stage and Assemble are pure: they produce descriptions, and
// Render turns the composed description into a Dockerfile. Execution is
// the docker package's job.
package pipeline

// StagedSet describes the output of the dependency staging stage: where the
// resolved packages live inside the builder stage and the manifest digest
// that identifies them. Nothing outside Prefix is ever copied forward, which
// is what keeps build tooling out of the final image.
type StagedSet struct {
	StageName    string // builder stage name referenced by the stage-copy
	BaseImage    string // image carrying the build tooling
	BuildDir     string // workdir inside the staging stage
	ManifestFile string // manifest path relative to the build context
	Prefix       string // isolated install prefix, the only exported path
	InstallCmd   string // command that materializes the set into Prefix
	Digest       string // manifest content digest (cache key)
}

// SourceBundle is the application's own files: copied verbatim into the
// final image, never transformed.
type SourceBundle struct {
	ContextDir string   // build context directory
	Files      []string // paths relative to ContextDir
	Entrypoint []string // exec-form entry command
}

// Image is the composed description of the final image: filesystem layout
// plus execution metadata. Immutable once assembled.
type Image struct {
	Staged      StagedSet
	Source      SourceBundle
	BaseImage   string // minimal runtime base
	WorkDir     string
	RuntimePath string // where Staged.Prefix lands at runtime
	User        string // non-root execution identity
	UserCreate  string // command that creates User in the final stage
	Port        int    // declared listening port (metadata only)
}
