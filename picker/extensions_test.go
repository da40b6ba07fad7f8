package picker

import (
	"strings"
	"testing"
)

func TestMarshalExtensions(t *testing.T) {
	tests := []struct {
		name       string
		extensions []string
	}{
		{"nil", nil},
		{"empty", []string{}},
		{"single", []string{"pdf"}},
		{"several", []string{"pdf", "txt", "png"}},
		{"with dot", []string{".zip"}},
		{"empty entry", []string{"", "md"}},
		{"unicode", []string{"日本", "tar.gz"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := MarshalExtensions(tt.extensions)
			if list.Len() != len(tt.extensions) {
				t.Fatalf("Len() = %d, want %d", list.Len(), len(tt.extensions))
			}
			for i, ext := range tt.extensions {
				entry := list.At(i)
				if string(entry) != ext+"\x00" {
					t.Errorf("At(%d) = %q, want %q", i, entry, ext+"\x00")
				}
			}
			strs := list.Strings()
			if len(strs) != len(tt.extensions) {
				t.Fatalf("Strings() has %d entries, want %d", len(strs), len(tt.extensions))
			}
			for i := range strs {
				if strs[i] != tt.extensions[i] {
					t.Errorf("Strings()[%d] = %q, want %q", i, strs[i], tt.extensions[i])
				}
			}
		})
	}
}

func TestMarshalExtensionsIsACopy(t *testing.T) {
	src := []string{"pdf"}
	list := MarshalExtensions(src)
	src[0] = "exe"
	if got := list.Strings()[0]; got != "pdf" {
		t.Fatalf("list changed with its input: %q", got)
	}
}

func TestMarshalExtensionsPanicsOnNUL(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic for an embedded NUL")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "extension 1") {
			t.Errorf("panic message %q does not name the offending extension", msg)
		}
	}()
	MarshalExtensions([]string{"pdf", "t\x00xt"})
}
