package deck

import (
	"encoding/json"
	"errors"

	"galadeck/internal/storage"

	"github.com/sirupsen/logrus"
)

// AudioRegistry owns the reference to the show's single background track
type AudioRegistry struct {
	backend  storage.Backend
	fallback string
	source   string
}

func NewAudioRegistry(backend storage.Backend, fallback string) *AudioRegistry {
	return &AudioRegistry{
		backend:  backend,
		fallback: fallback,
		source:   fallback,
	}
}

// Load restores the persisted source, or the built-in default
func (a *AudioRegistry) Load() string {
	a.source = a.fallback

	data, err := a.backend.Get(storage.KeyAudioSource)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logrus.WithError(err).Warn("Failed to read audio source, using default")
		}
		return a.source
	}

	var ref string
	if err := json.Unmarshal(data, &ref); err != nil || ref == "" {
		logrus.WithError(err).Warn("Persisted audio source unusable, using default")
		return a.source
	}

	a.source = ref
	return a.source
}

// SetSource replaces the track reference and persists it best-effort
func (a *AudioRegistry) SetSource(ref string) {
	if ref == "" {
		return
	}
	a.source = ref

	data, err := json.Marshal(ref)
	if err != nil {
		return
	}
	if err := a.backend.Put(storage.KeyAudioSource, data); err != nil {
		logrus.WithError(err).Warn("Failed to persist audio source")
	}
}

func (a *AudioRegistry) Source() string {
	return a.source
}

// Reset forgets the persisted source
func (a *AudioRegistry) Reset() string {
	if err := a.backend.Delete(storage.KeyAudioSource); err != nil {
		logrus.WithError(err).Warn("Failed to clear persisted audio source")
	}
	a.source = a.fallback
	return a.source
}
