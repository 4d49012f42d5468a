package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"soundbox/internal/domain"
)

const defaultVolume = 50

// Settings persists domain.Settings as a JSON file through viper.
type Settings struct {
	path string
	v    *viper.Viper
}

func NewSettings(path string) *Settings {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault("directory", "")
	v.SetDefault("defaultOutput", "")
	v.SetDefault("defaultInput", "")
	v.SetDefault("volumeOutput", defaultVolume)
	v.SetDefault("volumeInput", defaultVolume)
	return &Settings{path: path, v: v}
}

// Load reads the settings file. A missing file yields the defaults and
// no error; a corrupt file yields the defaults and the parse error so
// callers can warn and continue.
func (s *Settings) Load() (domain.Settings, error) {
	if err := s.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, os.ErrNotExist) || errors.As(err, &notFound) {
			return defaultSettings(), nil
		}
		return defaultSettings(), fmt.Errorf("read settings: %w", err)
	}

	return domain.Settings{
		Directory:     s.v.GetString("directory"),
		DefaultOutput: s.v.GetString("defaultOutput"),
		DefaultInput:  s.v.GetString("defaultInput"),
		VolumeOutput:  clampVolume(s.v.GetInt("volumeOutput")),
		VolumeInput:   clampVolume(s.v.GetInt("volumeInput")),
	}, nil
}

// Save writes the full settings snapshot.
func (s *Settings) Save(settings domain.Settings) error {
	s.v.Set("directory", settings.Directory)
	s.v.Set("defaultOutput", settings.DefaultOutput)
	s.v.Set("defaultInput", settings.DefaultInput)
	s.v.Set("volumeOutput", clampVolume(settings.VolumeOutput))
	s.v.Set("volumeInput", clampVolume(settings.VolumeInput))
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

func defaultSettings() domain.Settings {
	return domain.Settings{VolumeOutput: defaultVolume, VolumeInput: defaultVolume}
}

func clampVolume(level int) int {
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return level
}
