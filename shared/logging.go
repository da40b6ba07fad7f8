package shared

import (
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ExtractPackagePath reduces a full source path to a stable, readable package-relative path.
// It strips common repo/module roots while preserving subpackages (e.g. picker/future.go).
// For non-project paths (deps, stdlib), it returns the original string.
func ExtractPackagePath(p string) string {
	// Normalize for matching; we output forward slashes for our own paths.
	norm := strings.ReplaceAll(p, "\\", "/")

	// Strip repo/module roots when present (dev builds, or builds without -trimpath).
	for _, marker := range []string{"/docpicker/"} {
		if idx := strings.LastIndex(norm, marker); idx >= 0 {
			return norm[idx+len(marker):]
		}
	}

	// Also handle when the path is already relative (common in release builds).
	if strings.HasPrefix(norm, "docpicker/") {
		return norm[len("docpicker/"):]
	}

	// If it's already one of our package roots, keep it as-is.
	for _, prefix := range []string{"main.go", "config.go", "picker/", "browser/", "inbox/", "shared/", "cmd/"} {
		if strings.HasPrefix(norm, prefix) {
			return norm
		}
	}

	// Unknown origin (deps, stdlib, etc.) - leave unchanged.
	return p
}

// shortCallerEncoder writes "<package path>:<line>" using ExtractPackagePath.
func shortCallerEncoder(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
	if !caller.Defined {
		enc.AppendString("undefined")
		return
	}
	enc.AppendString(ExtractPackagePath(caller.File) + ":" + strconv.Itoa(caller.Line))
}

// ParseLevel maps a config value to a zap level, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// NewLogger builds the application logger writing console-encoded entries to w.
func NewLogger(level string, w io.Writer) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeCaller = shortCallerEncoder
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(w),
		ParseLevel(level),
	)
	return zap.New(core, zap.AddCaller())
}
