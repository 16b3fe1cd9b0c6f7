package audio

import (
	"fmt"
	"runtime"
)

type EngineType string

const (
	EngineTypeMock EngineType = "mock"
	EngineTypeBeep EngineType = "beep"
	EngineTypeAuto EngineType = "auto" // Automatically choose best for platform
)

func (e EngineType) String() string {
	return string(e)
}

// NewPlayer creates a player based on the provided config
func NewPlayer(config Config) (Player, error) {
	if config.Type == EngineTypeAuto.String() || config.Type == "" {
		config.Type = bestEngineForPlatform().String()
	}

	switch config.Type {
	case EngineTypeMock.String():
		return NewMockPlayer(config), nil
	case EngineTypeBeep.String():
		return NewBeepPlayer(config), nil
	default:
		return nil, fmt.Errorf("unsupported audio engine type: %s", config.Type)
	}
}

// bestEngineForPlatform returns beep where oto has an audio backend
func bestEngineForPlatform() EngineType {
	switch runtime.GOOS {
	case "linux", "darwin", "windows":
		return EngineTypeBeep
	default:
		return EngineTypeMock
	}
}
