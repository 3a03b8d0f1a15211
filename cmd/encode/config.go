package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is an optional named calibration for the encoder's tunable
// knobs (frequency offset, call sign, operating mode), loaded with
// -config so a station doesn't have to repeat its own settings on
// every invocation. Grounded on the teacher's Config/LoadConfig
// shape (cmd/project3/config/config.go): a flat YAML document
// unmarshaled straight into a typed struct.
type Preset struct {
	FrequencyOffsetHz int    `yaml:"frequency_offset_hz"`
	CallSign          string `yaml:"call_sign"`
	Mode              int    `yaml:"mode"`
}

// LoadPreset reads and parses a calibration preset from filename.
func LoadPreset(filename string) (*Preset, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", filename, err)
	}
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", filename, err)
	}
	return &p, nil
}
