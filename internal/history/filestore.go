package history

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// FileStore keeps records in a single msgpack file. Every write replaces the file atomically.
type FileStore struct {
	mu       sync.Mutex
	path     string
	capacity int
}

// NewFileStore returns a FileStore over path. The file is created on first write.
func NewFileStore(path string, capacity int) *FileStore {
	return &FileStore{path: path, capacity: normalizeCapacity(capacity)}
}

func (s *FileStore) Insert(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}
	return s.save(prepend(records, rec, s.capacity))
}

func (s *FileStore) List(_ context.Context) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}
	if len(records) > s.capacity {
		records = records[:s.capacity]
	}
	return records, nil
}

func (s *FileStore) Get(_ context.Context, id string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return Record{}, err
	}
	i, ok := find(records, id)
	if !ok {
		return Record{}, notFound(id)
	}
	return records[i], nil
}

func (s *FileStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}
	i, ok := find(records, id)
	if !ok {
		return notFound(id)
	}
	return s.save(append(records[:i], records[i+1:]...))
}

func (s *FileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(nil)
}

func (s *FileStore) load() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history file: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var records []Record
	if err := msgpack.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode history file: %w", err)
	}
	return records, nil
}

func (s *FileStore) save(records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := msgpack.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode history file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create history temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write history temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close history temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace history file: %w", err)
	}
	return nil
}
