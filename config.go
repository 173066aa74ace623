package main

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed config/settings.yaml
var defaultSettings string

// Settings is the YAML configuration for a migration run.
type Settings struct {
	ContentRoot           string `yaml:"content_root"`
	ReportPath            string `yaml:"report_path"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
	RequestDelayMs        int    `yaml:"request_delay_ms"`
	MinMarkdownChars      int    `yaml:"min_markdown_chars"`
	MaxRedirects          int    `yaml:"max_redirects"`
	UserAgent             string `yaml:"user_agent"`
}

// RequestTimeout returns the per-fetch timeout.
func (s *Settings) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

// RequestDelay returns the politeness delay between items.
func (s *Settings) RequestDelay() time.Duration {
	return time.Duration(s.RequestDelayMs) * time.Millisecond
}

// LoadSettings reads settings from path, falling back to the embedded
// defaults when path is empty or the file does not exist. A file that exists
// but does not parse is an error.
func LoadSettings(path string) (*Settings, error) {
	data := []byte(defaultSettings)
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading settings %s: %w", path, err)
			}
		} else {
			data = fileData
		}
	}

	settings := defaults()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	fillDefaults(settings)
	return settings, nil
}

func defaults() *Settings {
	return &Settings{
		ContentRoot:           "content",
		ReportPath:            "migration-report.json",
		RequestTimeoutSeconds: 30,
		RequestDelayMs:        500,
		MinMarkdownChars:      120,
		MaxRedirects:          10,
	}
}

// fillDefaults backfills zero values so a sparse settings file never leaves
// an unusable configuration.
func fillDefaults(s *Settings) {
	d := defaults()
	if s.ContentRoot == "" {
		s.ContentRoot = d.ContentRoot
	}
	if s.ReportPath == "" {
		s.ReportPath = d.ReportPath
	}
	if s.RequestTimeoutSeconds <= 0 {
		s.RequestTimeoutSeconds = d.RequestTimeoutSeconds
	}
	if s.RequestDelayMs < 0 {
		s.RequestDelayMs = d.RequestDelayMs
	}
	if s.MinMarkdownChars <= 0 {
		s.MinMarkdownChars = d.MinMarkdownChars
	}
	if s.MaxRedirects <= 0 {
		s.MaxRedirects = d.MaxRedirects
	}
}
