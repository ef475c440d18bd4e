/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

package throttle

import (
	"fmt"
	"time"

	"github.com/acronis/go-appkit/config"
)

const cfgDefaultKeyPrefix = "throttle"

const (
	cfgKeyReadClass  = "read"
	cfgKeyWriteClass = "write"
)

// WindowLimit caps requests of a class at Limit per Interval.
type WindowLimit struct {
	// Limit is the maximum number of requests allowed per window.
	Limit int `mapstructure:"limit" yaml:"limit" json:"limit"`

	// Interval is the window length.
	Interval time.Duration `mapstructure:"interval" yaml:"interval" json:"interval"`
}

// Default per-class window budgets. The API does not publish its limits;
// these values stay inside the budgets observed for private tokens: a short
// burst window and a longer sustained one, enforced simultaneously.
var (
	DefaultReadWindows = []WindowLimit{
		{Limit: 20, Interval: 5 * time.Second},
		{Limit: 120, Interval: time.Minute},
	}

	DefaultWriteWindows = []WindowLimit{
		{Limit: 5, Interval: 5 * time.Second},
		{Limit: 20, Interval: time.Minute},
	}
)

// ClassConfig holds the window budgets of a single request class.
type ClassConfig struct {
	Windows []WindowLimit `mapstructure:"windows" yaml:"windows" json:"windows"`
}

var _ config.Config = (*Config)(nil)
var _ config.KeyPrefixProvider = (*Config)(nil)

// Config represents a set of configuration parameters for the Throttle.
// Configuration can be loaded in different formats (YAML, JSON) using config.Loader.
type Config struct {
	Read  ClassConfig `mapstructure:"read" yaml:"read" json:"read"`
	Write ClassConfig `mapstructure:"write" yaml:"write" json:"write"`

	keyPrefix string
}

// NewConfig creates a new instance of the Config.
func NewConfig() *Config {
	return NewConfigWithKeyPrefix(cfgDefaultKeyPrefix)
}

// NewConfigWithKeyPrefix creates a new instance of the Config with a key prefix.
// This prefix will be used by config.Loader.
func NewConfigWithKeyPrefix(keyPrefix string) *Config {
	return &Config{keyPrefix: keyPrefix}
}

// KeyPrefix returns a key prefix with which all configuration parameters should be presented.
func (c *Config) KeyPrefix() string {
	if c.keyPrefix == "" {
		return cfgDefaultKeyPrefix
	}
	return c.keyPrefix
}

// SetProviderDefaults is part of config interface implementation.
func (c *Config) SetProviderDefaults(_ config.DataProvider) {}

// Set is part of config interface implementation.
func (c *Config) Set(dp config.DataProvider) error {
	if err := dp.UnmarshalKey(cfgKeyReadClass, &c.Read); err != nil {
		return err
	}
	if err := dp.UnmarshalKey(cfgKeyWriteClass, &c.Write); err != nil {
		return err
	}
	if err := validateWindows(c.Read.Windows); err != nil {
		return dp.WrapKeyErr(cfgKeyReadClass, err)
	}
	if err := validateWindows(c.Write.Windows); err != nil {
		return dp.WrapKeyErr(cfgKeyWriteClass, err)
	}
	return nil
}

// Opts builds throttle options from the configuration.
func (c *Config) Opts() Opts {
	return Opts{Read: c.Read.Windows, Write: c.Write.Windows}
}

func validateWindows(windows []WindowLimit) error {
	for _, w := range windows {
		if w.Limit <= 0 {
			return fmt.Errorf("window limit must be positive, got %d", w.Limit)
		}
		if w.Interval <= 0 {
			return fmt.Errorf("window interval must be positive, got %s", w.Interval)
		}
	}
	return nil
}
