// Package config holds the service settings: the campus anchor stops, how to reach the
// trip planner and the search policy. Settings come from the defaults here, then an
// optional YAML file, then NAVIGATOR_ environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	iso8601 "github.com/senseyeio/duration"
	"gopkg.in/yaml.v3"

	"github.com/campusvvs/navigator/pkg/ctdf"
	"github.com/campusvvs/navigator/pkg/efa"
)

type Config struct {
	Timezone string      `yaml:"timezone"`
	Anchors  []ctdf.Stop `yaml:"anchors"`

	EFA    EFAConfig    `yaml:"efa"`
	Search SearchConfig `yaml:"search"`
	Cache  CacheConfig  `yaml:"cache"`
}

type EFAConfig struct {
	BaseURL          string            `yaml:"base_url"`
	Timeout          string            `yaml:"timeout"`
	NumberOfTrips    int               `yaml:"number_of_trips"`
	StaticParameters map[string]string `yaml:"static_parameters"`
}

type SearchConfig struct {
	Limit                   int    `yaml:"limit"`
	SafetyMargin            string `yaml:"safety_margin"`
	UpstreamClockCorrection string `yaml:"upstream_clock_correction"`
}

type CacheConfig struct {
	Expiration string `yaml:"expiration"`
}

func Default() *Config {
	return &Config{
		Timezone: "Europe/Berlin",
		Anchors: []ctdf.Stop{
			{Name: "Rosenberg-/Seidenstraße", ID: "de:08111:6072"},
			{Name: "Linden-Museum", ID: "de:08111:2196"},
		},
		EFA: EFAConfig{
			BaseURL:          efa.DefaultBaseURL,
			Timeout:          "PT10S",
			NumberOfTrips:    efa.DefaultNumberOfTrips,
			StaticParameters: efa.DefaultStaticParameters(),
		},
		Search: SearchConfig{
			Limit:                   5,
			SafetyMargin:            "PT10M",
			UpstreamClockCorrection: "PT0S",
		},
		Cache: CacheConfig{
			Expiration: "PT2M",
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path just gives the defaults.
func Load(path string) (*Config, error) {
	config := Default()

	if path == "" {
		return config, nil
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(body, config); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return config, config.Validate()
}

// ApplyEnvironment overrides settings from NAVIGATOR_ environment variables
func (c *Config) ApplyEnvironment(env map[string]string) error {
	if value := env["NAVIGATOR_TIMEZONE"]; value != "" {
		c.Timezone = value
	}
	if value := env["NAVIGATOR_EFA_BASE_URL"]; value != "" {
		c.EFA.BaseURL = value
	}
	if value := env["NAVIGATOR_EFA_TIMEOUT"]; value != "" {
		c.EFA.Timeout = value
	}
	if value := env["NAVIGATOR_SAFETY_MARGIN"]; value != "" {
		c.Search.SafetyMargin = value
	}
	if value := env["NAVIGATOR_UPSTREAM_CLOCK_CORRECTION"]; value != "" {
		c.Search.UpstreamClockCorrection = value
	}
	if value := env["NAVIGATOR_CACHE_EXPIRATION"]; value != "" {
		c.Cache.Expiration = value
	}
	if value := env["NAVIGATOR_RESULT_LIMIT"]; value != "" {
		limit, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("NAVIGATOR_RESULT_LIMIT should be an integer: %w", err)
		}
		c.Search.Limit = limit
	}

	return c.Validate()
}

func (c *Config) Validate() error {
	if len(c.Anchors) == 0 {
		return fmt.Errorf("at least one anchor stop must be configured")
	}

	for _, anchor := range c.Anchors {
		if anchor.ID == "" {
			return fmt.Errorf("anchor stop %q has no id", anchor.Name)
		}
	}

	if c.Search.Limit <= 0 {
		return fmt.Errorf("search limit must be positive")
	}

	if _, err := c.SearchPolicy(); err != nil {
		return err
	}
	if _, err := c.EFATimeout(); err != nil {
		return err
	}
	if _, err := c.CacheExpiration(); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}

func (c *Config) SearchPolicy() (ctdf.SearchPolicy, error) {
	safetyMargin, err := parseDuration("safety margin", c.Search.SafetyMargin)
	if err != nil {
		return ctdf.SearchPolicy{}, err
	}

	clockCorrection, err := parseDuration("upstream clock correction", c.Search.UpstreamClockCorrection)
	if err != nil {
		return ctdf.SearchPolicy{}, err
	}

	return ctdf.SearchPolicy{
		SafetyMargin:            safetyMargin,
		UpstreamClockCorrection: clockCorrection,
	}, nil
}

func (c *Config) EFATimeout() (time.Duration, error) {
	return parseFixedDuration("trip planner timeout", c.EFA.Timeout)
}

func (c *Config) CacheExpiration() (time.Duration, error) {
	return parseFixedDuration("cache expiration", c.Cache.Expiration)
}

func (c *Config) Location() (*time.Location, error) {
	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}

	return location, nil
}

func parseDuration(name string, value string) (iso8601.Duration, error) {
	if value == "" {
		return iso8601.Duration{}, nil
	}

	duration, err := iso8601.ParseISO8601(value)
	if err != nil {
		return iso8601.Duration{}, fmt.Errorf("%s should be an ISO8601 duration: %w", name, err)
	}

	return duration, nil
}

// parseFixedDuration converts a duration without calendar parts into a time.Duration
func parseFixedDuration(name string, value string) (time.Duration, error) {
	duration, err := parseDuration(name, value)
	if err != nil {
		return 0, err
	}

	if duration.Y != 0 || duration.M != 0 || duration.W != 0 || duration.D != 0 {
		return 0, fmt.Errorf("%s can only use hours, minutes and seconds", name)
	}

	return time.Duration(duration.TH)*time.Hour +
		time.Duration(duration.TM)*time.Minute +
		time.Duration(duration.TS)*time.Second, nil
}
