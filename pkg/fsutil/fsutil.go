// Package fsutil provides the file system primitives mdhtml uses for its input
// and output files: categorized reads and atomic writes.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")
)

// FileInfo captures the state of a file when it was read.
type FileInfo struct {
	// Path is the path the file was read from.
	Path string

	// Mode is the file's permission and mode bits.
	Mode os.FileMode

	// Size is the file size in bytes.
	Size int64

	// Hash is the SHA-256 hash of the file content.
	Hash [32]byte
}

// ReadFile reads a whole file and returns its content along with metadata.
// Errors wrap ErrNotFound, ErrPermissionDenied or ErrIsDirectory where they
// apply, and always wrap the underlying cause.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, categorize(path, err)
	}

	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, categorize(path, err)
	}

	info := &FileInfo{
		Path: path,
		Mode: stat.Mode(),
		Size: stat.Size(),
		Hash: sha256.Sum256(content),
	}

	return content, info, nil
}

// categorize wraps err with the matching sentinel, keeping the cause in the chain.
func categorize(path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case os.IsPermission(err):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}
}
