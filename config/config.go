// File: config/config.go
// Author: momentics <momentics@gmail.com>
//
// YAML pool configuration for demo programs and embedding applications.
// The library itself takes functional options; this package converts a
// declarative file into them.

package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/momentics/threadpool/api"
	"github.com/momentics/threadpool/sched"
	"github.com/momentics/threadpool/threadpool"
)

// FileConfig mirrors the on-disk configuration.
type FileConfig struct {
	Pool PoolConfig `yaml:"pool"`
}

// PoolConfig describes one pool.
type PoolConfig struct {
	// Workers is the fixed worker count. Must be positive.
	Workers int `yaml:"workers"`

	// Affinity is the ordered CPU core list; empty means unpinned.
	Affinity []int `yaml:"affinity"`

	// Priority is either a tier name (low, normal, high, realtime) or
	// a raw platform-specific integer. Empty means normal.
	Priority string `yaml:"priority"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Pool.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks structural constraints that do not need a platform.
func (c *PoolConfig) Validate() error {
	if c.Workers <= 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "config: workers must be positive").
			WithContext("workers", c.Workers)
	}
	for _, core := range c.Affinity {
		if core < 0 {
			return api.NewError(api.ErrCodeInvalidArgument, "config: negative core index").
				WithContext("core", core)
		}
	}
	return nil
}

// Options converts the configuration into pool construction options.
func (c *PoolConfig) Options() ([]threadpool.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var opts []threadpool.Option
	if len(c.Affinity) > 0 {
		opts = append(opts, threadpool.WithAffinity(c.Affinity...))
	}
	if c.Priority != "" {
		if raw, err := strconv.Atoi(c.Priority); err == nil {
			opts = append(opts, threadpool.WithRawPriority(raw))
		} else {
			tier, err := sched.ParseTier(c.Priority)
			if err != nil {
				return nil, err
			}
			opts = append(opts, threadpool.WithPriority(tier))
		}
	}
	return opts, nil
}
