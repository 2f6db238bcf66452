package pipeline

import (
	"fmt"
	"sort"
	"strings"
)

// Profile parameterizes the stage recipe for one language runtime: which
// base images the two stages start from, where dependencies get staged and
// looked up, and how the non-root user is created on that base.
type Profile struct {
	Name         string
	BuilderImage string // staging stage base (carries build tooling)
	RuntimeImage string // final stage base (minimal)
	BuildDir     string // staging stage workdir
	Prefix       string // isolated install prefix in the staging stage
	RuntimePath  string // runtime lookup path the prefix is copied to
	WorkDir      string // final stage workdir
	User         string // non-root execution identity
	Port         int    // declared listening port

	// InstallFormat is an fmt string with two verbs: prefix, manifest file.
	InstallFormat string
	// UserCreateFormat is an fmt string with one verb: user name.
	UserCreateFormat string
}

// InstallCommand renders the staging install command for a manifest file.
func (p Profile) InstallCommand(manifestFile string) string {
	return fmt.Sprintf(p.InstallFormat, p.Prefix, manifestFile)
}

// UserCreateCommand renders the user creation command for the final stage.
func (p Profile) UserCreateCommand() string {
	return fmt.Sprintf(p.UserCreateFormat, p.User)
}

func (p Profile) validate() error {
	missing := func(field, v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("profile %q: %s is empty", p.Name, field)
		}
		return nil
	}
	for _, check := range []struct{ field, v string }{
		{"builder image", p.BuilderImage},
		{"runtime image", p.RuntimeImage},
		{"build dir", p.BuildDir},
		{"prefix", p.Prefix},
		{"runtime path", p.RuntimePath},
		{"workdir", p.WorkDir},
		{"user", p.User},
		{"install format", p.InstallFormat},
		{"user create format", p.UserCreateFormat},
	} {
		if err := missing(check.field, check.v); err != nil {
			return err
		}
	}
	if p.User == "root" || p.User == "0" {
		return fmt.Errorf("profile %q: execution identity must not be privileged", p.Name)
	}
	if p.Port <= 0 || p.Port > 65535 {
		return fmt.Errorf("profile %q: invalid port %d", p.Name, p.Port)
	}
	return nil
}

// PythonProfile reproduces the classic two-stage Python recipe: slim base
// in both stages, pip install into an isolated prefix, prefix copied onto
// /usr/local so the runtime lookup path needs no configuration.
func PythonProfile() Profile {
	return Profile{
		Name:             "python",
		BuilderImage:     "python:3.11-slim",
		RuntimeImage:     "python:3.11-slim",
		BuildDir:         "/build",
		Prefix:           "/install",
		RuntimePath:      "/usr/local",
		WorkDir:          "/app",
		User:             "appuser",
		Port:             8000,
		InstallFormat:    "pip install --no-cache-dir --prefix=%s -r %s",
		UserCreateFormat: "useradd --create-home --shell /usr/sbin/nologin %s",
	}
}

var profiles = map[string]func() Profile{
	"python": PythonProfile,
}

// ProfileByName resolves a built-in profile. Unknown names are fatal and
// list what is available.
func ProfileByName(name string) (Profile, error) {
	if f, ok := profiles[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f(), nil
	}
	known := make([]string, 0, len(profiles))
	for k := range profiles {
		known = append(known, k)
	}
	sort.Strings(known)
	return Profile{}, fmt.Errorf("unknown profile %q (known: %s)", name, strings.Join(known, ", "))
}
