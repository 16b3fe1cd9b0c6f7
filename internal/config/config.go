package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"galadeck/internal/domain/quiz"

	"github.com/spf13/viper"
)

type Config struct {
	Storage StorageConfig
	Audio   AudioConfig
	Input   InputConfig
	Canvas  CanvasConfig
	View    ViewportConfig
	Quiz    quiz.Topology
	LogLvl  string
}

type StorageConfig struct {
	Type string
	Path string
}

type AudioConfig struct {
	Engine        string
	DefaultSource string
	CreditsCue    time.Duration
}

type InputConfig struct {
	DoubleClick time.Duration
}

type CanvasConfig struct {
	Width, Height, Margin float64
}

type ViewportConfig struct {
	Width, Height float64
}

// SetDefaults registers every key with viper and wires config file and
// environment lookup
func SetDefaults() {
	viper.SetConfigName("galadeck")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.galadeck")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("galadeck")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("storage.type", "file")
	viper.SetDefault("storage.path", defaultDataDir())

	viper.SetDefault("audio.engine", "auto") // Auto-select best engine
	viper.SetDefault("audio.default_source", "./bgm.mp3")
	viper.SetDefault("audio.credits_cue", 30*time.Second)

	viper.SetDefault("input.double_click", 250*time.Millisecond)

	viper.SetDefault("canvas.width", 1920)
	viper.SetDefault("canvas.height", 1080)
	viper.SetDefault("canvas.margin", 20)
	viper.SetDefault("viewport.width", 1920)
	viper.SetDefault("viewport.height", 1080)

	topo := quiz.DefaultTopology()
	viper.SetDefault("quiz.board", topo.Board)
	viper.SetDefault("quiz.first_question", topo.FirstQuestion)
	viper.SetDefault("quiz.last_question", topo.LastQuestion)
	viper.SetDefault("quiz.post_quiz", topo.PostQuiz)
	viper.SetDefault("quiz.credits", topo.Credits)
	viper.SetDefault("quiz.categories", topo.Categories)
	viper.SetDefault("quiz.tiers", topo.Tiers)

	viper.SetDefault("log.level", "warn")
}

// ReadInConfig loads the optional config file. A missing file is fine.
func ReadInConfig() error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}
	return nil
}

// Load builds a typed Config from viper. The quiz layout is decoded
// through its mapstructure tags.
func Load() (Config, error) {
	var decoded struct {
		Quiz quiz.Topology `mapstructure:"quiz"`
	}
	// Unmarshal works on the merged settings, so a partial quiz section in
	// the config file keeps the defaults for the keys it leaves out
	if err := viper.Unmarshal(&decoded); err != nil {
		return Config{}, fmt.Errorf("failed to decode quiz layout: %w", err)
	}

	return Config{
		Storage: StorageConfig{
			Type: viper.GetString("storage.type"),
			Path: viper.GetString("storage.path"),
		},
		Audio: AudioConfig{
			Engine:        viper.GetString("audio.engine"),
			DefaultSource: viper.GetString("audio.default_source"),
			CreditsCue:    viper.GetDuration("audio.credits_cue"),
		},
		Input: InputConfig{
			DoubleClick: viper.GetDuration("input.double_click"),
		},
		Canvas: CanvasConfig{
			Width:  viper.GetFloat64("canvas.width"),
			Height: viper.GetFloat64("canvas.height"),
			Margin: viper.GetFloat64("canvas.margin"),
		},
		View: ViewportConfig{
			Width:  viper.GetFloat64("viewport.width"),
			Height: viper.GetFloat64("viewport.height"),
		},
		Quiz:   decoded.Quiz,
		LogLvl: viper.GetString("log.level"),
	}, nil
}

// defaultDataDir returns the appropriate data directory
func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "galadeck")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".galadeck", "data")
	}
	return "galadeck-data"
}
