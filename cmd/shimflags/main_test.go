package main

import (
	"strings"
	"testing"
)

func TestCflags(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{"", "-miphoneos-version-min=14.0"},
		{"13.0", "-miphoneos-version-min=14.0"},
		{"16.4", "-miphoneos-version-min=16.4"},
	}
	for _, tt := range tests {
		got := cflags(tt.target)
		if !strings.Contains(got, tt.want) {
			t.Errorf("cflags(%q) = %q, want it to contain %q", tt.target, got, tt.want)
		}
		for _, flag := range []string{"-fobjc-arc", "-std=c11"} {
			if !strings.Contains(got, flag) {
				t.Errorf("cflags(%q) = %q, missing %s", tt.target, got, flag)
			}
		}
	}
}
