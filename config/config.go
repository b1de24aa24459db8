package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Storage Storage `json:"storage" yaml:"storage" mapstructure:"storage"`
	OMDb    OMDb    `json:"omdb" yaml:"omdb" mapstructure:"omdb"`
	Server  Server  `json:"server" yaml:"server" mapstructure:"server"`
	Shell   Shell   `json:"shell" yaml:"shell" mapstructure:"shell"`
}

// Storage selects the encoding and location of the collection file.
// An empty format is inferred from the file extension.
type Storage struct {
	Format   string `json:"format" yaml:"format" mapstructure:"format"`
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

// OMDb configures the metadata lookup used when adding movies. Lookups are
// disabled when APIKey is empty.
type OMDb struct {
	Scheme      string        `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host        string        `json:"host" yaml:"host" mapstructure:"host"`
	APIKey      string        `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries"`
	CacheTTL    time.Duration `json:"cacheTTL" yaml:"cacheTTL" mapstructure:"cacheTTL"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port"`
}

type Shell struct {
	Title string `json:"title" yaml:"title" mapstructure:"title"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}
