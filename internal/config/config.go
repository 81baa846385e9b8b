// Package config resolves run settings from flags, DSARECON_* environment
// variables and an optional config file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/tirasundara/dsa-reconciliation/internal/domain"
)

// EnvPrefix prefixes every environment variable the CLI reads
const EnvPrefix = "DSARECON"

// Setting keys, shared with the CLI flag names
const (
	KeyConfig         = "config"
	KeyDSAFilter      = "dsa-filter"
	KeyFormat         = "format"
	KeyOutput         = "output"
	KeySheet          = "sheet"
	KeyPretty         = "pretty"
	KeyAllCustomers   = "all-customers"
	KeyLogLevel       = "log-level"
	KeyLogDevelopment = "log-development"
)

// Formats lists the supported output formats
var Formats = []string{"json", "csv", "xlsx"}

// Config holds the settings of one CLI run
type Config struct {
	Files          map[domain.Role]string
	DSAFilter      string
	Format         string
	Output         string
	Sheet          string
	Pretty         bool
	AllCustomers   bool
	LogLevel       string
	LogDevelopment bool
}

// New returns a viper instance with the defaults and environment binding in place
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyFormat, "json")
	v.SetDefault(KeyPretty, true)
	v.SetDefault(KeyLogLevel, "info")

	return v
}

// Load reads the optional config file named by the "config" key and returns the
// validated settings
func Load(v *viper.Viper) (Config, error) {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	cfg := Config{
		Files:          make(map[domain.Role]string),
		DSAFilter:      v.GetString(KeyDSAFilter),
		Format:         strings.ToLower(strings.TrimSpace(v.GetString(KeyFormat))),
		Output:         v.GetString(KeyOutput),
		Sheet:          v.GetString(KeySheet),
		Pretty:         v.GetBool(KeyPretty),
		AllCustomers:   v.GetBool(KeyAllCustomers),
		LogLevel:       v.GetString(KeyLogLevel),
		LogDevelopment: v.GetBool(KeyLogDevelopment),
	}

	for _, role := range Roles() {
		if path := strings.TrimSpace(v.GetString(string(role))); path != "" {
			cfg.Files[role] = path
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the output format and that every mandatory file was given
func (c Config) Validate() error {
	valid := false
	for _, f := range Formats {
		if c.Format == f {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("invalid output format '%s'. Valid formats: %s", c.Format, strings.Join(Formats, ", "))
	}

	var missing []domain.Role
	for _, role := range domain.MandatoryRoles {
		if c.Files[role] == "" {
			missing = append(missing, role)
		}
	}
	if len(missing) > 0 {
		return &domain.MissingInputError{Roles: missing}
	}

	return nil
}

// Roles lists every role a file path can be configured for
func Roles() []domain.Role {
	return append(append([]domain.Role(nil), domain.MandatoryRoles...), domain.RoleConversion)
}
