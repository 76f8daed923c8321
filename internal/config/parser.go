package config

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"hash"
	"os"

	"gopkg.in/yaml.v3"
)

// Parser handles configuration file parsing and validation
type Parser struct {
	configPath string
	config     *Config
}

// NewParser creates a new configuration parser
func NewParser(configPath string) *Parser {
	return &Parser{
		configPath: configPath,
	}
}

// Load reads and parses the configuration file
func (p *Parser) Load() (*Config, error) {
	data, err := os.ReadFile(p.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", p.configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	// Set defaults
	p.setDefaults(&config)

	// Validate configuration
	if err := p.validate(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	p.config = &config
	return &config, nil
}

// setDefaults applies default values to configuration
func (p *Parser) setDefaults(config *Config) {
	if config.Service.LogLevel == "" {
		config.Service.LogLevel = DefaultLogLevel
	}

	for i := range config.Profiles {
		profile := &config.Profiles[i]
		if profile.Hash == "" {
			profile.Hash = DefaultHash
		}
		if profile.Rounds == 0 {
			profile.Rounds = DefaultRounds
		}
		if profile.KeyLength == 0 {
			profile.KeyLength = DefaultKeyLength
		}
		if profile.SaltEncoding == "" {
			profile.SaltEncoding = DefaultSaltEncoding
		}
	}
}

// validate checks the configuration for errors
func (p *Parser) validate(config *Config) error {
	if len(config.Profiles) == 0 {
		return fmt.Errorf("no derivation profiles defined")
	}

	seen := make(map[string]bool)
	for i := range config.Profiles {
		profile := &config.Profiles[i]
		if profile.Name == "" {
			return fmt.Errorf("profile %d: name is required", i)
		}
		if seen[profile.Name] {
			return fmt.Errorf("profile %q: duplicate name", profile.Name)
		}
		seen[profile.Name] = true

		if _, err := profile.HashFunc(); err != nil {
			return fmt.Errorf("profile %q: %w", profile.Name, err)
		}
		if profile.Rounds < 1 {
			return fmt.Errorf("profile %q: rounds must be at least 1, got %d", profile.Name, profile.Rounds)
		}
		if profile.KeyLength < 1 {
			return fmt.Errorf("profile %q: key_length must be at least 1, got %d", profile.Name, profile.KeyLength)
		}
		switch profile.SaltEncoding {
		case "hex", "base64":
		default:
			return fmt.Errorf("profile %q: unsupported salt_encoding %q", profile.Name, profile.SaltEncoding)
		}
	}

	return nil
}

// GetProfile returns the named derivation profile
func (c *Config) GetProfile(name string) (*Profile, error) {
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			return &c.Profiles[i], nil
		}
	}
	return nil, fmt.Errorf("profile not found: %s", name)
}

// HashFunc returns the hash primitive constructor for the profile
func (p *Profile) HashFunc() (func() hash.Hash, error) {
	switch p.Hash {
	case "sha1":
		return sha1.New, nil
	case "sha256":
		return sha256.New, nil
	default:
		return nil, fmt.Errorf("unsupported hash %q", p.Hash)
	}
}

// DecodeSalt decodes a salt string according to the profile's encoding
func (p *Profile) DecodeSalt(s string) ([]byte, error) {
	switch p.SaltEncoding {
	case "hex":
		salt, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid hex salt: %w", err)
		}
		return salt, nil
	case "base64":
		salt, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid base64 salt: %w", err)
		}
		return salt, nil
	default:
		return nil, fmt.Errorf("unsupported salt_encoding %q", p.SaltEncoding)
	}
}
