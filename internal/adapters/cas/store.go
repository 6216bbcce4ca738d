// Package cas stores raw layer index snapshots with content digests.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/oematch/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.SnapshotStore with one file per snapshot kind and an
// index.json of xxhash digests next to them.
type Store struct {
	// mu serializes index updates from concurrent Puts.
	mu sync.Mutex
}

// NewStore creates a new snapshot store.
func NewStore() *Store {
	return &Store{}
}

// Get returns the snapshot of kind under root, or nil, nil when there is none.
// A file with a recorded digest must match it. Files without a digest, such
// as ones copied in by hand, are returned as they are.
func (s *Store) Get(root, kind string) ([]byte, error) {
	filename := Filename(root, kind)
	//nolint:gosec // Path is built from the cache directory and a fixed kind
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSnapshotReadFailed.Error()), "path", filename)
	}

	index, err := readIndex(root)
	if err != nil {
		return nil, err
	}

	if want, ok := index[kind]; ok && want != digest(data) {
		return nil, zerr.With(zerr.With(domain.ErrSnapshotCorrupt, "kind", kind), "path", filename)
	}

	return data, nil
}

// Put writes the snapshot of kind under root and records its digest.
func (s *Store) Put(root, kind string, data []byte) error {
	filename := Filename(root, kind)
	if err := atomicWriteFile(filename, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error()), "path", filename)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := readIndex(root)
	if err != nil {
		index = map[string]string{}
	}
	index[kind] = digest(data)

	raw, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error())
	}
	indexPath := filepath.Join(root, domain.SnapshotIndexFile)
	if err := atomicWriteFile(indexPath, raw); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error()), "path", indexPath)
	}
	return nil
}

// Clear removes root and everything below it.
func (s *Store) Clear(root string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.RemoveAll(root); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotClearFailed.Error()), "path", root)
	}
	return nil
}

// Filename returns the path of the snapshot of kind under root.
func Filename(root, kind string) string {
	return filepath.Join(root, "oe_"+kind+".json")
}

func digest(data []byte) string {
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}

func readIndex(root string) (map[string]string, error) {
	path := filepath.Join(root, domain.SnapshotIndexFile)
	//nolint:gosec // Path is built from the cache directory
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSnapshotReadFailed.Error()), "path", path)
	}

	index := map[string]string{}
	if err := json.Unmarshal(raw, &index); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSnapshotCorrupt.Error()), "path", path)
	}
	return index, nil
}

// atomicWriteFile writes data to a temp file in the target directory and
// renames it into place.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".snapshot-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
