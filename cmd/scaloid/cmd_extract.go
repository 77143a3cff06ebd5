package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brandhill/scaloid/config"
	"github.com/brandhill/scaloid/descriptor"
	"github.com/brandhill/scaloid/extract"
	"github.com/brandhill/scaloid/format"
)

func newExtractCmd() *cobra.Command {
	var (
		configPath string
		jars       []string
		root       string
		base       string
		out        string
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract class models from jars and write them as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if len(jars) > 0 {
				cfg.Extraction.Jars = jars
			}
			if root != "" {
				cfg.Extraction.RootPackage = root
				cfg.Extraction.Namespace = root
			}
			if base != "" {
				cfg.Extraction.Base = base
			}
			if out != "" {
				cfg.Output.Path = out
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runExtract(cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file")
	cmd.Flags().StringSliceVarP(&jars, "jar", "j", nil, "jar to load (repeatable)")
	cmd.Flags().StringVarP(&root, "root", "r", "", "root package to extract")
	cmd.Flags().StringVarP(&base, "base", "b", "", "keep only classes assignable to this type")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default stdout)")

	return cmd
}

func runExtract(cfg *config.Config) error {
	provider, err := descriptor.LoadJars(cfg.Extraction.Jars)
	if err != nil {
		return err
	}

	driver := extract.NewDriver(provider, cfg.Extraction.Namespace)
	driver.Base = cfg.Extraction.Base
	result := driver.Run(cfg.Extraction.RootPackage)

	w := os.Stdout
	if path := cfg.Output.Path; path != "" && path != "-" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer file.Close()
		w = file
	}
	return format.NewJSONEncoder(w).Encode(result)
}
