package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gestao_compras/internal/domain/performance"

	"gopkg.in/yaml.v3"
)

// Preferences are the installation-local UI settings kept outside the
// record store. They are loaded once at start-up and saved on every change.
type Preferences struct {
	SLA          performance.Thresholds `yaml:"sla" json:"sla"`
	ColumnWidths map[string]int         `yaml:"column_widths" json:"columnWidths"`
}

// DefaultPreferences is used when no preferences file exists yet.
func DefaultPreferences() Preferences {
	return Preferences{
		SLA:          performance.DefaultThresholds(),
		ColumnWidths: map[string]int{},
	}
}

// PreferencesStore guards a Preferences value backed by a YAML file.
type PreferencesStore struct {
	mu    sync.RWMutex
	path  string
	prefs Preferences
}

// LoadPreferences reads path. A missing file yields the defaults.
func LoadPreferences(path string) (*PreferencesStore, error) {
	s := &PreferencesStore{path: path, prefs: DefaultPreferences()}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}
	if err := yaml.Unmarshal(b, &s.prefs); err != nil {
		return nil, fmt.Errorf("failed to parse preferences: %w", err)
	}
	if s.prefs.ColumnWidths == nil {
		s.prefs.ColumnWidths = map[string]int{}
	}
	return s, nil
}

// Get returns a copy of the current preferences.
func (s *PreferencesStore) Get() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePreferences(s.prefs)
}

// Update replaces the preferences and writes them to disk.
func (s *PreferencesStore) Update(p Preferences) error {
	if p.ColumnWidths == nil {
		p.ColumnWidths = map[string]int{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.prefs
	s.prefs = clonePreferences(p)
	if err := s.save(); err != nil {
		s.prefs = prev
		return err
	}
	return nil
}

// Save writes the current preferences to disk.
func (s *PreferencesStore) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.save()
}

func (s *PreferencesStore) save() error {
	b, err := yaml.Marshal(s.prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create preferences dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}

func clonePreferences(p Preferences) Preferences {
	widths := make(map[string]int, len(p.ColumnWidths))
	for k, v := range p.ColumnWidths {
		widths[k] = v
	}
	p.ColumnWidths = widths
	return p
}
