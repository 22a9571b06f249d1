package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/viant/afs"
	"sync"
)

const fileMode = 0o600

// FileStore persists all values as a single JSON document at an afs URL.
// The document is read once on construction and rewritten on every mutation.
type FileStore struct {
	mu     sync.RWMutex
	URL    string
	fs     afs.Service
	values map[string]string
}

// FileOption customises a FileStore
type FileOption func(*FileStore)

// WithFileSystem sets the afs service used for persistence
func WithFileSystem(fs afs.Service) FileOption {
	return func(f *FileStore) {
		f.fs = fs
	}
}

// NewFileStore creates a Store persisted at URL (file path, file://, mem:// or any afs scheme).
func NewFileStore(ctx context.Context, URL string, options ...FileOption) (*FileStore, error) {
	ret := &FileStore{URL: URL, fs: afs.New(), values: map[string]string{}}
	for _, opt := range options {
		opt(ret)
	}
	if err := ret.load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load store %v: %w", URL, err)
	}
	return ret, nil
}

func (f *FileStore) Lookup(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	value, ok := f.values[key]
	return value, ok
}

// Put leaves the store unchanged when the document cannot be saved.
func (f *FileStore) Put(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	values := f.copyValues()
	values[key] = value
	return f.commit(context.Background(), values)
}

func (f *FileStore) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.values[key]; !ok {
		return nil
	}
	values := f.copyValues()
	delete(values, key)
	return f.commit(context.Background(), values)
}

func (f *FileStore) copyValues() map[string]string {
	ret := make(map[string]string, len(f.values)+1)
	for k, v := range f.values {
		ret[k] = v
	}
	return ret
}

// commit saves values and swaps them in only once the document is written.
func (f *FileStore) commit(ctx context.Context, values map[string]string) error {
	if err := f.save(ctx, values); err != nil {
		return err
	}
	f.values = values
	return nil
}

// ---- persistence ----

type fileSnapshot struct {
	Values map[string]string `json:"values"`
}

func (f *FileStore) save(ctx context.Context, values map[string]string) error {
	data, err := json.MarshalIndent(fileSnapshot{Values: values}, "", "  ")
	if err != nil {
		return err
	}
	if err = f.fs.Upload(ctx, f.URL, fileMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save store %v: %w", f.URL, err)
	}
	return nil
}

func (f *FileStore) load(ctx context.Context) error {
	exists, err := f.fs.Exists(ctx, f.URL)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	data, err := f.fs.DownloadWithURL(ctx, f.URL)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var snap fileSnapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return err
	}
	for k, v := range snap.Values {
		f.values[k] = v
	}
	return nil
}
