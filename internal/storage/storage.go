package storage

import (
	"errors"
	"fmt"
)

// Keys are versioned by name so a future schema never reads old data
const (
	KeySlides      = "slides.v1"
	KeyAudioSource = "audio-source.v1"
)

var ErrNotFound = errors.New("storage: key not found")

// Backend is a small local key/value store
type Backend interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}

type BackendType string

const (
	BackendTypeFile   BackendType = "file"
	BackendTypeSQLite BackendType = "sqlite"
	BackendTypeMemory BackendType = "memory"
)

func (b BackendType) String() string {
	return string(b)
}

// Config selects and locates a backend
type Config struct {
	Type string
	Path string
}

// NewBackend opens the backend named by config.Type
func NewBackend(config Config) (Backend, error) {
	switch config.Type {
	case BackendTypeFile.String():
		return NewFileBackend(config.Path)
	case BackendTypeSQLite.String():
		return NewSQLiteBackend(config.Path)
	case BackendTypeMemory.String():
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", config.Type)
	}
}
