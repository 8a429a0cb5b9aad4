package config

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// Settings are per-user choices kept between runs.
type Settings struct {
	Fullscreen         bool    `json:"fullscreen"`
	SensitivityPercent float32 `json:"sensitivityPercent"`
}

// Apply overlays saved settings on cfg. A zero sensitivity leaves the configured value.
func (s Settings) Apply(cfg *Config) {
	cfg.Window.Fullscreen = s.Fullscreen
	if s.SensitivityPercent > 0 {
		cfg.Input.SensitivityPercent = s.SensitivityPercent
	}
}

// SettingsStore persists Settings in the user's application data directory.
type SettingsStore struct {
	m *gdata.Manager
}

// OpenSettings opens the store for appName.
func OpenSettings(appName string) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open settings store: %w", err)
	}
	return &SettingsStore{m: m}, nil
}

// Load returns the saved settings, or nil when nothing has been saved yet.
func (s *SettingsStore) Load() (*Settings, error) {
	data, err := s.m.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &settings, nil
}

// Save writes settings to disk.
func (s *SettingsStore) Save(settings Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	if err := s.m.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
