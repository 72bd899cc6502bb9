package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lifebridge/lifebridge/internal/domain"
	"gopkg.in/yaml.v3"
)

// ProfileFile is the on-disk shape of a household profile. A name is
// optional and only used for display.
type ProfileFile struct {
	Name    string             `yaml:"name,omitempty"`
	Profile domain.UserProfile `yaml:"profile"`
}

// InputParser handles parsing of profile files
type InputParser struct {
	// Strict rejects unknown keys, catching typos like "childern_ages".
	Strict bool
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{Strict: true}
}

// LoadFromFile loads and validates a profile from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*ProfileFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	pf, err := ip.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return pf, nil
}

// Parse decodes and validates profile data
func (ip *InputParser) Parse(data []byte) (*ProfileFile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(ip.Strict)

	var pf ProfileFile
	if err := dec.Decode(&pf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("profile file is empty")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateProfile(&pf.Profile); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return &pf, nil
}

// ValidateProfile validates the loaded profile
func (ip *InputParser) ValidateProfile(p *domain.UserProfile) error {
	return domain.Validate(p)
}

// Marshal renders a profile file back to YAML
func Marshal(pf *ProfileFile) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(pf); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
