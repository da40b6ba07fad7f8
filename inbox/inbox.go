// Package inbox stores picked files in a directory owned by one process.
package inbox

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/shirou/gopsutil/process"
	"go.uber.org/zap"

	"docpicker/picker"
	"docpicker/shared"
)

const (
	lockFileName = "inbox.lock"
	pidFileName  = "inbox.pid"
)

// Inbox is an exclusively locked directory of saved files.
type Inbox struct {
	dir  string
	lock *flock.Flock
	log  *zap.Logger
}

// Open creates dir if needed and locks it for this process. If another live
// process holds the lock, Open fails. A lock left behind by a process that
// is gone is cleaned up.
func Open(dir string, log *zap.Logger) (*Inbox, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := shared.EnsureDir(dir, shared.InboxDirMode); err != nil {
		return nil, fmt.Errorf("creating inbox directory: %w", err)
	}

	lock := flock.New(filepath.Join(dir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		// we could not lock, so the lock owner should have written a PID to the file
		if err := checkStaleOwner(dir, log); err != nil {
			return nil, err
		}
		if locked, err = lock.TryLock(); err != nil {
			return nil, fmt.Errorf("failed to acquire lock: %w", err)
		}
		if !locked {
			return nil, fmt.Errorf("inbox %s is locked by another process", dir)
		}
	}

	pidPath := filepath.Join(dir, pidFileName)
	if err := os.WriteFile(pidPath, []byte(strconv.Itoa(os.Getpid())), 0o644); err != nil {
		lock.Unlock()
		return nil, fmt.Errorf("writing PID file: %w", err)
	}

	log.Info("inbox opened", zap.String("dir", dir))
	return &Inbox{dir: dir, lock: lock, log: log}, nil
}

// checkStaleOwner returns an error if the PID file names a running process,
// and removes the PID file otherwise.
func checkStaleOwner(dir string, log *zap.Logger) error {
	pidPath := filepath.Join(dir, pidFileName)
	data, err := os.ReadFile(pidPath)
	if err != nil || len(data) == 0 {
		return nil
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid == 0 {
		log.Warn("failed to parse PID from PID file", zap.String("path", pidPath), zap.Error(err))
		os.Remove(pidPath)
		return nil
	}
	// Check if process is still running
	proc, procErr := process.NewProcess(int32(pid))
	if procErr == nil {
		running, _ := proc.IsRunning()
		if running {
			return fmt.Errorf("inbox %s is in use by process %d", dir, pid)
		}
	}
	// Process is not running, clean up stale PID file
	log.Info("removing stale PID file", zap.String("path", pidPath), zap.Int("pid", pid))
	os.Remove(pidPath)
	return nil
}

// Dir returns the inbox directory.
func (in *Inbox) Dir() string { return in.dir }

// Save writes the file content under a fresh name and returns its path.
// The extension is guessed from the content.
func (in *Inbox) Save(h picker.FileHandle) (string, error) {
	name := uuid.NewString() + extensionFor(h)
	tmp, err := os.CreateTemp(in.dir, ".incoming-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := h.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("closing %s: %w", name, err)
	}
	dst := filepath.Join(in.dir, name)
	if err := os.Rename(tmpPath, dst); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("renaming %s: %w", name, err)
	}
	in.log.Info("saved picked file", zap.String("path", dst), zap.Int("bytes", h.Len()))
	return dst, nil
}

// Close releases the lock and removes the lock and PID files.
func (in *Inbox) Close() error {
	os.Remove(filepath.Join(in.dir, pidFileName))
	err := in.lock.Unlock()
	os.Remove(filepath.Join(in.dir, lockFileName))
	in.log.Info("inbox closed", zap.String("dir", in.dir))
	return err
}

func extensionFor(h picker.FileHandle) string {
	head := make([]byte, 512)
	n, _ := h.Reader().Read(head)
	ctype := http.DetectContentType(head[:n])
	if i := strings.IndexByte(ctype, ';'); i >= 0 {
		ctype = ctype[:i]
	}
	switch ctype {
	case "text/plain":
		return ".txt"
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "application/pdf":
		return ".pdf"
	case "application/octet-stream":
		return ".bin"
	}
	if exts, err := mime.ExtensionsByType(ctype); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ".bin"
}
