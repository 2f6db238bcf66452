// Package verify checks a built image's config against the properties the
// pipeline promises: non-privileged execution identity, declared listening
// port, declared entry command, and a staged-set digest label matching the
// current manifest. Checks run on inspect output only; nothing here starts
// a container.
package verify

import (
	"fmt"
	"strings"

	"stagehand/internal/docker"
)

// Report collects every violation found in one pass, so a broken image
// surfaces all its problems at once instead of one per build.
type Report struct {
	Ref        string
	Violations []string
}

// OK reports whether the image passed every check.
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// Err returns nil for a clean report, or one error naming all violations.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("image %s failed verification:\n  - %s", r.Ref, strings.Join(r.Violations, "\n  - "))
}

// Check runs every property check against an inspected image config.
// wantDigest may be "" to skip the digest match (e.g. verifying a ref built
// from a manifest that is no longer on disk); port must be the declared
// listening port.
func Check(ref string, cfg *docker.ImageConfig, wantDigest string, port int) *Report {
	r := &Report{Ref: ref}
	if cfg == nil {
		r.Violations = append(r.Violations, "no image config")
		return r
	}

	if privileged(cfg.User) {
		r.Violations = append(r.Violations, fmt.Sprintf("runs as privileged identity %q", cfg.User))
	}

	portKey := fmt.Sprintf("%d/tcp", port)
	if _, ok := cfg.ExposedPorts[portKey]; !ok {
		r.Violations = append(r.Violations, fmt.Sprintf("port %s not declared (exposed: %s)", portKey, portList(cfg)))
	}

	if len(cfg.Cmd) == 0 && len(cfg.Entrypoint) == 0 {
		r.Violations = append(r.Violations, "no entry command declared")
	}

	if wantDigest != "" {
		got := cfg.Labels[docker.LabelManifestDigest]
		if got == "" {
			r.Violations = append(r.Violations, fmt.Sprintf("label %s missing", docker.LabelManifestDigest))
		} else if got != wantDigest {
			r.Violations = append(r.Violations, fmt.Sprintf("staged set digest mismatch: image has %s, manifest is %s", got, wantDigest))
		}
	}

	return r
}

// privileged treats an unset user as root: docker defaults to uid 0 when
// no USER instruction made it into the final stage.
func privileged(user string) bool {
	user = strings.TrimSpace(user)
	if user == "" {
		return true
	}
	// "user:group" — only the user part decides
	if u, _, ok := strings.Cut(user, ":"); ok {
		user = u
	}
	return user == "root" || user == "0"
}

func portList(cfg *docker.ImageConfig) string {
	if len(cfg.ExposedPorts) == 0 {
		return "none"
	}
	ports := make([]string, 0, len(cfg.ExposedPorts))
	for p := range cfg.ExposedPorts {
		ports = append(ports, p)
	}
	return strings.Join(ports, ", ")
}
