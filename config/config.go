// Package config loads extraction settings from a YAML file, with SCALOID_*
// environment variables taking precedence over the file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Extraction struct {
		// Jars lists the class archives to load.
		Jars []string `yaml:"jars"`
		// RootPackage bounds the extraction walk, e.g. "android".
		RootPackage string `yaml:"root_package"`
		// Namespace is the API namespace used to decide whether a
		// superclass gets a wrapper parent. Defaults to RootPackage.
		Namespace string `yaml:"namespace"`
		// Base, when set, keeps only classes assignable to it.
		Base string `yaml:"base"`
	} `yaml:"extraction"`
	Output struct {
		Path string `yaml:"path"` // "" or "-" writes to stdout
	} `yaml:"output"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.Extraction.RootPackage = "android"
	return cfg
}

// Load reads the YAML file at path on top of the defaults, then applies
// environment overrides. An empty path skips the file and loads defaults
// plus environment only.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if jars := os.Getenv("SCALOID_JARS"); jars != "" {
		cfg.Extraction.Jars = splitList(jars)
	}
	if root := os.Getenv("SCALOID_ROOT_PACKAGE"); root != "" {
		cfg.Extraction.RootPackage = root
	}
	if ns := os.Getenv("SCALOID_NAMESPACE"); ns != "" {
		cfg.Extraction.Namespace = ns
	}
	if base := os.Getenv("SCALOID_BASE"); base != "" {
		cfg.Extraction.Base = base
	}
	if out := os.Getenv("SCALOID_OUTPUT"); out != "" {
		cfg.Output.Path = out
	}

	if cfg.Extraction.Namespace == "" {
		cfg.Extraction.Namespace = cfg.Extraction.RootPackage
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Extraction.Jars) == 0 {
		return fmt.Errorf("no jars configured")
	}
	if c.Extraction.RootPackage == "" {
		return fmt.Errorf("no root package configured")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
