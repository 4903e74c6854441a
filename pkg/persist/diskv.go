package persist

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// Diskv stores the diary document as a file under a base directory.
type Diskv struct {
	d *diskv.Diskv
}

// OpenDiskv creates a diskv-backed store rooted at basePath.
func OpenDiskv(basePath string) (*Diskv, error) {
	if basePath == "" {
		return nil, errors.New("persist: diskv base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("persist: ensure base path: %w", err)
	}
	return &Diskv{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

func (s *Diskv) Load(_ context.Context) (Snapshot, bool, error) {
	if !s.d.Has(StorageKey) {
		return Snapshot{}, false, nil
	}
	data, err := s.d.Read(StorageKey)
	if err != nil {
		return Snapshot{}, false, err
	}
	snap, err := Decode(data)
	if err != nil {
		return Snapshot{}, false, err
	}
	return snap, true, nil
}

func (s *Diskv) Save(_ context.Context, snap Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}
	return s.d.Write(StorageKey, data)
}

func (s *Diskv) Close() error {
	return nil
}
