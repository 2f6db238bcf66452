// internal/docker/plan.go
//
// The planner converts an image name + staged set digest into the list of
// refs the build will tag. Content-addressed first: the digest tag names
// exactly one staged-set/source combination, "latest" tracks the most
// recent build. Policy stays isolated and testable here;
// BuildOptionsForImage just calls into this.

package docker

import (
	"fmt"
	"strings"
)

// Plan is the output of the planner: the refs to tag.
type Plan struct {
	Refs []string // fully-qualified repo:tag
}

// PlanBuild turns an image name and a manifest digest into a Plan.
// The digest is truncated to 12 chars, matching the staged-set cache key
// rendered into the Dockerfile header.
func PlanBuild(image, digest string) (Plan, error) {
	base := strings.TrimRight(strings.TrimSpace(image), "/")
	if base == "" {
		return Plan{}, fmt.Errorf("plan: image name is empty")
	}
	if strings.TrimSpace(digest) == "" {
		return Plan{}, fmt.Errorf("plan: staged set digest is empty")
	}
	if len(digest) > 12 {
		digest = digest[:12]
	}

	var refs []string
	add := func(tag string) {
		tag = cleanTag(tag)
		if tag == "" || !validateTag(tag) {
			return
		}
		refs = append(refs, fmt.Sprintf("%s:%s", base, tag))
	}

	add(digest)
	add("latest")

	refs = dedupRefs(refs)
	if len(refs) == 0 {
		return Plan{}, fmt.Errorf("plan: no valid refs for image %q", image)
	}
	return Plan{Refs: refs}, nil
}
