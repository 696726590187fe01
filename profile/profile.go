package profile

import (
	"fmt"
	"os"

	"github.com/ChainSafe/stackkit/messages"
	"gopkg.in/yaml.v3"
)

// Profile represents the settings of a console session.
type Profile struct {
	Name     string `yaml:"name"`
	Language string `yaml:"language"`
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
	Seed     []int  `yaml:"seed"` // pushed onto the session stack in order, last one on top
}

// Default returns the profile used when no file is given.
func Default() *Profile {
	return &Profile{
		Name:     "default",
		Language: "en",
		Format:   "text",
		LogLevel: "warn",
	}
}

// LoadProfile loads a session profile from a YAML file.
// Fields missing from the file keep their default values.
func LoadProfile(filename string) (*Profile, error) {
	prof := Default()
	if filename == "" {
		return prof, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	if err := yaml.Unmarshal(data, prof); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if err := prof.Validate(); err != nil {
		return nil, err
	}
	return prof, nil
}

// Validate checks the format and language names.
func (p *Profile) Validate() error {
	switch p.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format %q (expected text or json)", p.Format)
	}
	if _, err := messages.Language(p.Language); err != nil {
		return err
	}
	return nil
}
