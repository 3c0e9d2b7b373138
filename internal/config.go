package internal

import (
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultStoreFile is the store file name inside the store directory.
const DefaultStoreFile = "quotes.db"

// Config represents the application configuration.
type Config struct {
	App   ApplicationConfig `yaml:"app"`
	Store StoreConfig       `yaml:"store"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	return c.Store.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	Color    bool       `yaml:"color"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.In(slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError)),
	)
}

// StoreConfig locates the quote store.
//
// An empty Dir means ~/.quote-it.
type StoreConfig struct {
	Dir  string `yaml:"dir"`
	File string `yaml:"file"`
}

// Validate validates the store configuration.
func (c *StoreConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.File, validation.Required, validation.By(plainFileName)),
	)
}

func plainFileName(value any) error {
	s, _ := value.(string)
	for _, r := range s {
		if r == '/' || r == '\\' {
			return validation.NewError("validation_plain_file_name", "must be a file name, not a path")
		}
	}
	return nil
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelWarn,
			Color:    true,
		},
		Store: StoreConfig{
			File: DefaultStoreFile,
		},
	}
}
