package docker

import (
	"reflect"
	"testing"
)

func TestPlanBuild(t *testing.T) {
	const digest = "3f2a9c1d04e7aa51b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f6071829"

	tests := []struct {
		name      string
		image     string
		digest    string
		want      []string
		expectErr bool
	}{
		{
			name:   "Digest tag plus latest",
			image:  "stagehand/demoapp",
			digest: digest,
			want:   []string{"stagehand/demoapp:3f2a9c1d04e7", "stagehand/demoapp:latest"},
		},
		{
			name:   "Short digest used as-is",
			image:  "stagehand/demoapp",
			digest: "3f2a9c1d",
			want:   []string{"stagehand/demoapp:3f2a9c1d", "stagehand/demoapp:latest"},
		},
		{
			name:   "Trailing slash trimmed",
			image:  "registry.local/demoapp/",
			digest: digest,
			want:   []string{"registry.local/demoapp:3f2a9c1d04e7", "registry.local/demoapp:latest"},
		},
		{
			name:      "Empty image",
			image:     "  ",
			digest:    digest,
			expectErr: true,
		},
		{
			name:      "Empty digest",
			image:     "stagehand/demoapp",
			digest:    "",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlanBuild(tt.image, tt.digest)

			if tt.expectErr {
				if err == nil {
					t.Errorf("expected error, got plan %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got.Refs, tt.want) {
				t.Errorf("expected refs %v, got %v", tt.want, got.Refs)
			}
		})
	}
}
