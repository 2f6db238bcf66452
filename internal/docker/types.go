// internal/docker/types.go
package docker

// LabelManifestDigest records the staged dependency set's manifest digest
// on the final image, so verify can match image against manifest.
const LabelManifestDigest = "io.stagehand.manifest.digest"

type BuildOptions struct {
	Dockerfile  string      // default: "Dockerfile"
	ContextPath string      // default: "."
	BuildArgs   [][2]string // KEY,VALUE (deterministic)
	Labels      [][2]string // optional

	FullRefs []string // e.g. ["stagehand/demoapp:3f2a9c1d04e7","stagehand/demoapp:latest"]

	Target  string // optional multi-stage target (builds the staging stage alone)
	Pull    bool   // docker build --pull
	NoCache bool   // docker build --no-cache
	DryRun  bool   // print only
}
