package filestorages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	ErrFileNotFound      = errors.New("file not found")
	ErrFileAlreadyExists = errors.New("file already exists")
	ErrInvalidKey        = errors.New("invalid file key")
	ErrInvalidRootDir    = errors.New("invalid root directory")
)

type PutResult struct {
	FileKey string
}

type PutOptions struct {
	AllowOverwrite bool
}

//go:generate mockgen -source=file_storage.go -destination=./mocks/file_storage_mock.go -package=mocks
type FileStorage interface {
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (*PutResult, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	// List returns the keys of regular files under prefix, sorted. A missing prefix yields no keys.
	List(ctx context.Context, prefix string) ([]string, error)
	// DeleteAll removes prefix and everything below it. A missing prefix is not an error.
	DeleteAll(ctx context.Context, prefix string) error
}

type fileStorage struct {
	dir string
}

func NewFileStorage(rootDir string) (FileStorage, error) {
	if rootDir == "" {
		return nil, fmt.Errorf("%w: root directory cannot be empty", ErrInvalidRootDir)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve absolute path: %w", ErrInvalidRootDir, err)
	}

	return &fileStorage{dir: absRootDir}, nil
}

func (s *fileStorage) Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (*PutResult, error) {
	if err := s.validateKey(key); err != nil {
		return nil, err
	}
	if opts.AllowOverwrite {
		return s.putOverwrite(ctx, key, r)
	}
	return s.putNoOverwrite(ctx, key, r)
}

func (s *fileStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := s.validateKey(key); err != nil {
		return nil, err
	}

	fullPath := filepath.Join(s.dir, key)

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}

	return file, nil
}

func (s *fileStorage) List(ctx context.Context, prefix string) ([]string, error) {
	if err := s.validateKey(prefix); err != nil {
		return nil, err
	}

	root := filepath.Join(s.dir, filepath.Clean(prefix))
	var keys []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		// skip in-flight temp files from Put
		if d.IsDir() || strings.HasPrefix(d.Name(), ".tmp-") {
			return nil
		}
		rel, err := filepath.Rel(s.dir, path)
		if err != nil {
			return err
		}
		keys = append(keys, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}

	sort.Strings(keys)
	return keys, nil
}

func (s *fileStorage) DeleteAll(ctx context.Context, prefix string) error {
	if err := s.validateKey(prefix); err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return os.RemoveAll(filepath.Join(s.dir, filepath.Clean(prefix)))
}

func (s *fileStorage) validateKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if filepath.IsAbs(key) {
		return ErrInvalidKey
	}
	cleanPath := filepath.Clean(key)
	if cleanPath == ".." || cleanPath == "." {
		return ErrInvalidKey
	}
	if strings.HasPrefix(cleanPath, "..") {
		return ErrInvalidKey
	}
	// Additional check: ensure the resolved path is within the root directory
	fullPath := filepath.Join(s.dir, cleanPath)
	absRoot, err := filepath.Abs(s.dir)
	if err != nil {
		return ErrInvalidKey
	}
	absFull, err := filepath.Abs(fullPath)
	if err != nil {
		return ErrInvalidKey
	}
	rel, err := filepath.Rel(absRoot, absFull)
	if err != nil {
		return ErrInvalidKey
	}
	if strings.HasPrefix(rel, "..") {
		return ErrInvalidKey
	}
	return nil
}

// writeTemp streams r into a synced temp file next to the final path and returns its name.
// The caller owns removing the temp file.
func (s *fileStorage) writeTemp(ctx context.Context, finalPath string, r io.Reader) (string, error) {
	dir := filepath.Dir(finalPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return "", err
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		if ctx.Err() != nil {
			return tmpPath, ctx.Err()
		}
		return tmpPath, err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return tmpPath, err
	}
	return tmpPath, tmp.Close()
}

func (s *fileStorage) putOverwrite(ctx context.Context, key string, r io.Reader) (*PutResult, error) {
	finalPath := filepath.Join(s.dir, filepath.Clean(key))

	tmpPath, err := s.writeTemp(ctx, finalPath, r)
	if tmpPath != "" {
		defer func() { _ = os.Remove(tmpPath) }()
	}
	if err != nil {
		return nil, err
	}

	// Atomic replace (POSIX)
	if err := os.Rename(tmpPath, finalPath); err != nil {
		return nil, err
	}
	return &PutResult{FileKey: key}, nil
}

func (s *fileStorage) putNoOverwrite(ctx context.Context, key string, r io.Reader) (*PutResult, error) {
	finalPath := filepath.Join(s.dir, filepath.Clean(key))

	tmpPath, err := s.writeTemp(ctx, finalPath, r)
	if tmpPath != "" {
		defer func() { _ = os.Remove(tmpPath) }()
	}
	if err != nil {
		return nil, err
	}

	// Atomic publish-if-not-exists; the final name keeps the inode after the temp is removed.
	if err := os.Link(tmpPath, finalPath); err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, ErrFileAlreadyExists
		}
		return nil, err
	}
	return &PutResult{FileKey: key}, nil
}
