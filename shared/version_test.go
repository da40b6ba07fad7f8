package shared

import "testing"

func TestDeploymentTarget(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"unset", "", "14.0"},
		{"garbage", "latest", "14.0"},
		{"older", "12.4", "14.0"},
		{"major only", "15", "15.0"},
		{"newer", "16.2", "16.2"},
		{"minimum", "14.0", "14.0"},
		{"patch dropped", "17.1.3", "17.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeploymentTarget(tt.raw); got != tt.want {
				t.Errorf("DeploymentTarget(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestGetLauncherVersionSemver(t *testing.T) {
	saved := launcherVersion
	defer func() { launcherVersion = saved }()

	tests := []struct {
		version string
		want    string
	}{
		{"v1.2.0-rc1", "1.2.0-rc1"},
		{"1.0.0-SNAPSHOT", "1.0.0-SNAPSHOT"},
		{"v2", "2.0.0"},
		{"vnext", "next"},
	}
	for _, tt := range tests {
		launcherVersion = tt.version
		if got := GetLauncherVersionSemver(); got != tt.want {
			t.Errorf("GetLauncherVersionSemver() for %q = %q, want %q", tt.version, got, tt.want)
		}
	}
}
