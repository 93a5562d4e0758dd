package keyvalue

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"pharmacy-client/internal/app/contracts"
	"pharmacy-client/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
)

// fileStore persists every key in one JSON object on disk, the CLI's stand in
// for browser local storage. Writes go to a temp file and are renamed into
// place.
type fileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) (contracts.KeyValueStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	return &fileStore{path: path}, nil
}

func (s *fileStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", exceptions.ErrKeyValueGet(err, key)
	}
	return values[key], nil
}

func (s *fileStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return exceptions.ErrKeyValueSet(err, key)
	}
	values[key] = value
	if err := s.save(values); err != nil {
		return exceptions.ErrKeyValueSet(err, key)
	}
	return nil
}

func (s *fileStore) Delete(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return exceptions.ErrKeyValueDelete(err)
	}
	changed := false
	for _, key := range keys {
		if _, ok := values[key]; ok {
			delete(values, key)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	if err := s.save(values); err != nil {
		return exceptions.ErrKeyValueDelete(err)
	}
	return nil
}

func (s *fileStore) load() (map[string]string, error) {
	values := make(map[string]string)
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func (s *fileStore) save(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
