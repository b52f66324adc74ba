package usecase_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"sync"

	"github.com/fadilmartias/job-tracker/internal/service"
)

type fakeCompleter struct {
	text  string
	err   error
	calls []service.CompletionRequest
}

func (f *fakeCompleter) Complete(_ context.Context, req service.CompletionRequest) (string, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type memoryStorage struct {
	mu      sync.Mutex
	files   map[string][]byte
	deleted []string
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{files: map[string][]byte{}}
}

func (s *memoryStorage) Save(_ context.Context, key string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[key] = data
	return nil
}

func (s *memoryStorage) Open(_ context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[key]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, key)
	s.deleted = append(s.deleted, key)
	return nil
}

var _ service.FileStorage = (*memoryStorage)(nil)
var _ service.Completer = (*fakeCompleter)(nil)
