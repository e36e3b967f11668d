// Package project persists site descriptions and application preferences.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nadzri/plotplan/internal/model"
)

// SaveSite persists a site configuration to the given path. The format
// follows the file extension: .toml writes TOML, anything else writes
// indented JSON. Missing parent directories are created.
func SaveSite(path string, site model.SiteConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	if isTOML(path) {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return toml.NewEncoder(f).Encode(site)
	}

	data, err := json.MarshalIndent(site, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadSite reads a site configuration from a JSON or TOML file, chosen by
// extension, and validates it before returning.
func LoadSite(path string) (model.SiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.SiteConfig{}, err
	}

	var site model.SiteConfig
	if isTOML(path) {
		if err := toml.Unmarshal(data, &site); err != nil {
			return model.SiteConfig{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := json.Unmarshal(data, &site); err != nil {
			return model.SiteConfig{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if err := site.Validate(); err != nil {
		return model.SiteConfig{}, fmt.Errorf("invalid site file %s: %w", filepath.Base(path), err)
	}
	return site, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
