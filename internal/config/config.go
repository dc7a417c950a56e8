package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/ThatOtherAndrew/strokebench/internal/stroke"
)

type Settings struct {
	ResampleCount  int     `json:"resample_count"`
	SquareSize     float64 `json:"square_size"`
	MatchThreshold float64 `json:"match_threshold"`
	Workers        int     `json:"workers"`
}

func Defaults() *Settings {
	return &Settings{
		ResampleCount:  stroke.DefaultResampleCount,
		SquareSize:     stroke.DefaultSquareSize,
		MatchThreshold: 0.6,
		Workers:        4,
	}
}

// Preprocessing returns the pipeline options these settings describe.
func (s *Settings) Preprocessing(rotateToZero bool) stroke.Options {
	return stroke.Options{
		ResampleCount: s.ResampleCount,
		SquareSize:    s.SquareSize,
		RotateToZero:  rotateToZero,
	}
}

func configDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(homeDir, ".config", "strokebench")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// GetPath returns the default corpus location.
func GetPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "corpus.json"), nil
}

func GetSettingsPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}

func LoadSettings() (*Settings, error) {
	settingsPath, err := GetSettingsPath()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFrom(settingsPath)
}

func LoadSettingsFrom(settingsPath string) (*Settings, error) {
	defaultSettings := Defaults()

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Creating default settings file at %s", settingsPath)
			if err := writeSettings(settingsPath, defaultSettings); err != nil {
				log.Printf("Failed to create default settings file: %v", err)
			}
			return defaultSettings, nil
		}
		return nil, err
	}

	var rawSettings map[string]json.RawMessage
	if err := json.Unmarshal(data, &rawSettings); err != nil {
		log.Printf("Invalid settings file %s, using defaults: %v", settingsPath, err)
		return defaultSettings, nil
	}
	for _, key := range unknownKeys(rawSettings) {
		log.Printf("Warning: unrecognised setting key '%s' in %s", key, settingsPath)
	}

	settings := Defaults()
	if err := json.Unmarshal(data, settings); err != nil {
		log.Printf("Invalid settings file %s, using defaults: %v", settingsPath, err)
		return defaultSettings, nil
	}

	if settings.ResampleCount < 2 {
		log.Printf("Invalid resample_count %d, must be at least 2, using default %d",
			settings.ResampleCount, defaultSettings.ResampleCount)
		settings.ResampleCount = defaultSettings.ResampleCount
	}
	if settings.SquareSize <= 0 {
		log.Printf("Invalid square_size %.2f, must be positive, using default %.2f",
			settings.SquareSize, defaultSettings.SquareSize)
		settings.SquareSize = defaultSettings.SquareSize
	}
	if settings.MatchThreshold < 0.0 || settings.MatchThreshold > 1.0 {
		log.Printf("Invalid match_threshold value %.2f, must be between 0.0 and 1.0, using default %.2f",
			settings.MatchThreshold, defaultSettings.MatchThreshold)
		settings.MatchThreshold = defaultSettings.MatchThreshold
	}
	if settings.Workers < 1 {
		log.Printf("Invalid workers %d, must be at least 1, using default %d",
			settings.Workers, defaultSettings.Workers)
		settings.Workers = defaultSettings.Workers
	}

	return settings, nil
}

// writeSettings stores settings as indented JSON, creating the directory if
// the settings live outside the default config dir.
func writeSettings(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// settingKeys lists the JSON keys Settings understands.
func settingKeys() map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(Settings{})
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name != "" && name != "-" {
			keys[name] = true
		}
	}
	return keys
}

// unknownKeys returns the keys of raw that Settings does not define, sorted.
func unknownKeys(raw map[string]json.RawMessage) []string {
	known := settingKeys()
	var unknown []string
	for key := range raw {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	slices.Sort(unknown)
	return unknown
}
