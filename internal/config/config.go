package config

import (
	"github.com/osuushi/segments/internal/logger"
	"github.com/pkg/errors"
	"gopkg.in/gcfg.v1"
)

// The configuration file is INI style:
//
//	[session]
//	capacity = 4
//	color = true
//
//	[log]
//	level = info
//	datetime = false
//
//	[draw]
//	path = /tmp/segments.png
//	scale = 40
//	imgcat = false
//
// Every key is optional. Command line flags override the file.

// When the capacity is ReadCapacity, the session reads it from the first
// token of its input instead.
const ReadCapacity = -1

type SessionConfig struct {
	Capacity int
	Color    bool
}

type LogConfig struct {
	Level    string
	DateTime bool
}

type DrawConfig struct {
	// Empty disables rendering
	Path   string
	Scale  float64
	Imgcat bool
}

type Config struct {
	Session SessionConfig
	Log     LogConfig
	Draw    DrawConfig
}

func Default() *Config {
	return &Config{
		Session: SessionConfig{Capacity: ReadCapacity, Color: true},
		Log:     LogConfig{Level: "info"},
		Draw:    DrawConfig{Scale: 40},
	}
}

// Read a config file on top of the defaults and validate it
func Read(fname string) (*Config, error) {
	c := Default()
	if err := gcfg.ReadFileInto(c, fname); err != nil {
		return nil, errors.Wrapf(err, "reading config %q", fname)
	}
	if err := c.CheckInit(); err != nil {
		return nil, errors.Wrapf(err, "config %q", fname)
	}
	return c, nil
}

func ReadString(str string) (*Config, error) {
	c := Default()
	if err := gcfg.ReadStringInto(c, str); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	if err := c.CheckInit(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) CheckInit() error {
	if c.Session.Capacity < ReadCapacity {
		return errors.Errorf(
			"Session capacity must be %d (read from input) or non-negative, but is %d",
			ReadCapacity, c.Session.Capacity,
		)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "Log level")
	}
	if c.Draw.Scale <= 0 {
		return errors.Errorf("Draw scale must be positive, but is %g", c.Draw.Scale)
	}
	return nil
}

// Parsed log level. Only valid after CheckInit succeeded.
func (c *Config) LogLevel() logger.LogLevel {
	level, _ := logger.ParseLevel(c.Log.Level)
	return level
}
