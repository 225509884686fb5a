package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultConfigFile is the file name searched for when no config path is given.
const DefaultConfigFile = ".commit-summary.json"

// Config is the root configuration structure.
type Config struct {
	History    HistoryConfig    `json:"history"`
	Classifier ClassifierConfig `json:"classifier"`
	Report     ReportConfig     `json:"report"`
	Filters    FilterConfig     `json:"filters"`
}

// HistoryConfig controls which commits are read.
type HistoryConfig struct {
	WindowDays int    `json:"windowDays"` // Default: 365
	Backend    string `json:"backend"`    // "git" or "go-git"
	Branch     string `json:"branch"`     // Default: HEAD
	NoMerges   bool   `json:"noMerges"`
}

// ClassifierConfig controls commit message classification.
type ClassifierConfig struct {
	LooseFallback bool `json:"looseFallback"` // Default: true
}

// ReportConfig controls report rendering.
type ReportConfig struct {
	Format      string `json:"format"` // text, markdown, json, csv
	Width       int    `json:"width"`  // Default: 80
	ShowAuthors bool   `json:"showAuthors"`
	ShowDates   bool   `json:"showDates"`
}

// FilterConfig holds file path filtering options.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			WindowDays: 365,
			Backend:    "git",
			Branch:     "HEAD",
		},
		Classifier: ClassifierConfig{
			LooseFallback: true,
		},
		Report: ReportConfig{
			Format: "text",
			Width:  80,
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{DefaultConfigFile}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, DefaultConfigFile))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
