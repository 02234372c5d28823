// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"roicheck/core/roi"
	"roicheck/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains HTTP server settings
	Server ServerConfig `json:"server"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Render contains presentation settings
	Render RenderConfig `json:"render"`

	// Calculator contains assumption overrides
	Calculator CalculatorConfig `json:"calculator"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default CLI output format (text, json)
	DefaultFormat string `json:"default_format"`
}

// RenderConfig contains presentation-surface settings
type RenderConfig struct {
	// ProductName is the product name shown on the results page
	ProductName string `json:"product_name"`

	// ContactEmail is the lead-capture mailto recipient
	ContactEmail string `json:"contact_email"`
}

// CalculatorConfig overrides selected calculator assumptions.
// Nil fields keep the prototype defaults.
type CalculatorConfig struct {
	// MinIncidents and MaxIncidents override the incident clamp bounds
	MinIncidents *float64 `json:"min_incidents,omitempty"`
	MaxIncidents *float64 `json:"max_incidents,omitempty"`

	// DevicesPerStaff overrides the device estimate ratio
	DevicesPerStaff *float64 `json:"devices_per_staff,omitempty"`

	// DefaultHourlyLaborCost overrides the input-surface hourly default
	DefaultHourlyLaborCost *float64 `json:"default_hourly_labor_cost,omitempty"`

	// DefaultLossPerIncident overrides the input-surface loss default
	DefaultLossPerIncident *float64 `json:"default_loss_per_incident,omitempty"`
}

// Assumptions applies the overrides to the prototype defaults.
func (c CalculatorConfig) Assumptions() roi.Assumptions {
	a := roi.DefaultAssumptions()
	if c.MinIncidents != nil {
		a.MinIncidents = decimal.NewFromFloat(*c.MinIncidents)
	}
	if c.MaxIncidents != nil {
		a.MaxIncidents = decimal.NewFromFloat(*c.MaxIncidents)
	}
	if c.DevicesPerStaff != nil {
		a.DevicesPerStaff = decimal.NewFromFloat(*c.DevicesPerStaff)
	}
	if c.DefaultHourlyLaborCost != nil {
		a.DefaultHourlyLaborCost = decimal.NewFromFloat(*c.DefaultHourlyLaborCost)
	}
	if c.DefaultLossPerIncident != nil {
		a.DefaultLossPerIncident = decimal.NewFromFloat(*c.DefaultLossPerIncident)
	}
	return a
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr: ":8080",
		},
		Output: OutputConfig{
			DefaultFormat: "text",
		},
		Render: RenderConfig{
			ProductName:  "Digital Bunker 365",
			ContactEmail: "hello@digitalbunker365.example",
		},
		Calculator: CalculatorConfig{},
		Logging:    logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
