package config

// Config represents the main configuration structure
type Config struct {
	Service  ServiceConfig `yaml:"service"`
	Profiles []Profile     `yaml:"profiles"`
}

// ServiceConfig holds settings that apply to the tool as a whole
type ServiceConfig struct {
	LogLevel string `yaml:"log_level,omitempty"`
}

// Profile defines one named key-derivation parameter set
type Profile struct {
	Name         string `yaml:"name"`
	Hash         string `yaml:"hash,omitempty"`          // sha1 (default) or sha256
	Rounds       int    `yaml:"rounds,omitempty"`        // iteration count per output block
	KeyLength    int    `yaml:"key_length,omitempty"`    // derived key size in bytes
	SaltEncoding string `yaml:"salt_encoding,omitempty"` // hex (default) or base64
	Description  string `yaml:"description,omitempty"`
}

// Defaults applied by the parser when a field is left unset
const (
	DefaultHash         = "sha1"
	DefaultRounds       = 4096
	DefaultKeyLength    = 32
	DefaultSaltEncoding = "hex"
	DefaultLogLevel     = "info"
)
