package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/markcmd/command"
)

const (
	SettingsFormatTOML SettingsFormat = "toml"
	SettingsFormatJSON SettingsFormat = "json"
)

type Settings struct {
	Locale       string               `json:"locale"       toml:"locale"`
	Placeholders command.Placeholders `json:"placeholders" toml:"placeholders"`
	Popover      PopoverSettings      `json:"popover"      toml:"popover"`
	Keys         map[string][]string  `json:"keys"         toml:"keys"`
}

// PopoverSettings sizes the terminal popover in cells. Zero fields let the
// editor derive the size from the rendered prompt.
type PopoverSettings struct {
	Width        float64 `json:"width"         toml:"width"`
	Height       float64 `json:"height"        toml:"height"`
	BottomOffset float64 `json:"bottom_offset" toml:"bottom_offset"`
}

type SettingsFormat string
type SettingsHandle struct {
	Path   string
	Format SettingsFormat
}

// Dir is $MARKCMD_CONFIG_DIR when set, otherwise markcmd under the user
// config directory.
func Dir() string {
	if dir := os.Getenv("MARKCMD_CONFIG_DIR"); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ".markcmd"
	}
	return filepath.Join(base, "markcmd")
}

func DefaultSettings() Settings {
	return Settings{Locale: command.DefaultLocale, Keys: DefaultKeys()}
}

// LoadSettings tries settings.toml first, then settings.json, and returns the
// defaults when neither exists. Parse errors fail immediately; a file that
// cannot be read is skipped but reported if nothing else loads.
func LoadSettings(dir string) (Settings, SettingsHandle, error) {
	candidates := []SettingsHandle{
		{Path: filepath.Join(dir, "settings.toml"), Format: SettingsFormatTOML},
		{Path: filepath.Join(dir, "settings.json"), Format: SettingsFormatJSON},
	}

	var accumulated error
	for _, candidate := range candidates {
		data, err := os.ReadFile(candidate.Path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			accumulated = errors.Join(
				accumulated,
				fmt.Errorf("read settings %q: %w", candidate.Path, err),
			)
			continue
		}

		settings, err := decodeSettings(data, candidate.Format)
		if err != nil {
			return Settings{}, SettingsHandle{}, fmt.Errorf("parse settings %q: %w", candidate.Path, err)
		}
		keys, err := mergeKeys(settings.Keys)
		if err != nil {
			return Settings{}, SettingsHandle{}, fmt.Errorf("apply settings %q: %w", candidate.Path, err)
		}
		settings.Keys = keys
		return settings, candidate, nil
	}

	if accumulated != nil {
		return Settings{}, SettingsHandle{}, accumulated
	}
	return DefaultSettings(), SettingsHandle{Path: candidates[0].Path, Format: SettingsFormatTOML}, nil
}

func decodeSettings(data []byte, format SettingsFormat) (Settings, error) {
	var settings Settings
	switch format {
	case SettingsFormatTOML:
		if err := toml.Unmarshal(data, &settings); err != nil {
			return Settings{}, err
		}
	case SettingsFormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&settings); err != nil {
			return Settings{}, err
		}
	default:
		return Settings{}, fmt.Errorf("unsupported settings format %q", format)
	}
	return settings, nil
}

// ResolvedPlaceholders returns the locale's built-in words with any explicit
// overrides applied. Unknown locales fall back to the default locale.
func (s Settings) ResolvedPlaceholders() command.Placeholders {
	base, ok := command.PlaceholdersFor(s.Locale)
	if !ok {
		base, _ = command.PlaceholdersFor(command.DefaultLocale)
	}
	return s.Placeholders.Merge(base)
}

func (p PopoverSettings) Footprint() command.Footprint {
	return command.Footprint{Width: p.Width, Height: p.Height, BottomOffset: p.BottomOffset}
}

// EngineOptions builds command.Options from s.
func (s Settings) EngineOptions() command.Options {
	return command.Options{Placeholders: s.ResolvedPlaceholders()}
}
