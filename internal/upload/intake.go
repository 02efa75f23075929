// Package upload stores profile images submitted through multipart
// forms. The outcome is deliberately tri-state: a file that fails the
// filter is rejected without an error so the surrounding form
// submission still succeeds, while a genuine I/O failure is an error.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Status int

const (
	// Rejected covers "no file in the form" as well as a disallowed
	// extension or an oversized file. The caller leaves the previous
	// picture untouched and does not report a failure.
	Rejected Status = iota
	Accepted
)

type Result struct {
	Status   Status
	Filename string // stored name, set only when Status == Accepted
}

type Intake struct {
	dir     string
	maxSize int64
	now     func() time.Time
}

func NewIntake(dir string, maxSizeBytes int64) *Intake {
	return &Intake{dir: dir, maxSize: maxSizeBytes, now: time.Now}
}

var allowedExts = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {},
}

// Store validates and persists an uploaded image. A nil header means
// the form carried no file. The stored name is the upload timestamp in
// unix milliseconds plus the original extension, lowercased.
func (in *Intake) Store(fh *multipart.FileHeader) (Result, error) {
	if fh == nil {
		return Result{Status: Rejected}, nil
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := allowedExts[ext]; !ok {
		return Result{Status: Rejected}, nil
	}
	if fh.Size > in.maxSize {
		return Result{Status: Rejected}, nil
	}

	src, err := fh.Open()
	if err != nil {
		return Result{}, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(in.dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("upload dir: %w", err)
	}
	name := fmt.Sprintf("%d%s", in.now().UnixMilli(), ext)
	dst, err := os.Create(filepath.Join(in.dir, name))
	if err != nil {
		return Result{}, fmt.Errorf("create upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, in.maxSize)); err != nil {
		return Result{}, fmt.Errorf("write upload: %w", err)
	}
	return Result{Status: Accepted, Filename: name}, nil
}
