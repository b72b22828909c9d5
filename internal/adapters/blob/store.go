// Package blob stores uploaded images on local disk and serves them under
// a base URL. It implements domain.BlobStore.
package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Store struct {
	dir     string
	baseURL string
}

// New roots the store at dir; stored objects resolve to baseURL/<name>.
func New(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("blob: create dir: %w", err)
	}
	return &Store{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *Store) Put(ctx context.Context, name string, data []byte) (string, error) {
	clean := filepath.Clean("/" + name)[1:] // no traversal out of the root
	full := filepath.Join(s.dir, clean)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("blob: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("blob: %w", err)
	}
	return s.baseURL + "/" + filepath.ToSlash(clean), nil
}

// Delete removes an object by its public URL. URLs outside this store are
// ignored — fallback rows point at external images we do not own.
func (s *Store) Delete(ctx context.Context, url string) error {
	rel, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok {
		return nil
	}
	clean := filepath.Clean("/" + rel)[1:]
	err := os.Remove(filepath.Join(s.dir, clean))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Dir exposes the root for mounting a file server.
func (s *Store) Dir() string { return s.dir }
