package docker

import (
	"reflect"
	"testing"
)

func TestCleanTag(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Lowercased", "Latest", "latest"},
		{"Slashes become hyphens", "feature/login", "feature-login"},
		{"Spaces become hyphens", "my tag", "my-tag"},
		{"Hyphens collapsed", "a//b", "a-b"},
		{"Trimmed", "  v1.2.3  ", "v1.2.3"},
		{"Empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanTag(tt.input); got != tt.want {
				t.Errorf("cleanTag(%q) = %q; want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateTag(t *testing.T) {
	tests := []struct {
		tag  string
		want bool
	}{
		{"latest", true},
		{"3f2a9c1d04e7", true},
		{"v1.2.3-rc.1", true},
		{"UPPER", false},
		{"has space", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := validateTag(tt.tag); got != tt.want {
			t.Errorf("validateTag(%q) = %v; want %v", tt.tag, got, tt.want)
		}
	}
}

func TestDedupRefs(t *testing.T) {
	in := []string{"a:1", "a:2", "a:1", "a:3", "a:2"}
	want := []string{"a:1", "a:2", "a:3"}

	got := dedupRefs(in)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("dedupRefs(%v) = %v; want %v", in, got, want)
	}
}

func TestRedactBuildArgs(t *testing.T) {
	in := []string{
		"build",
		"--build-arg", "APP_NAME=demoapp",
		"--build-arg", "REGISTRY_PASSWORD=hunter2",
		"--build-arg", "GH_TOKEN=abc123",
	}
	got := redactBuildArgs(in)

	if got[2] != "APP_NAME=demoapp" {
		t.Errorf("benign arg modified: %q", got[2])
	}
	if got[4] != "REGISTRY_PASSWORD=REDACTED" {
		t.Errorf("password not redacted: %q", got[4])
	}
	if got[6] != "GH_TOKEN=REDACTED" {
		t.Errorf("token not redacted: %q", got[6])
	}
	if in[4] != "REGISTRY_PASSWORD=hunter2" {
		t.Error("redactBuildArgs must not mutate its input")
	}
}
