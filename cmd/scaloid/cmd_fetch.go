package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brandhill/scaloid/maven"
)

func newFetchCmd() *cobra.Command {
	var destDir string

	cmd := &cobra.Command{
		Use:   "fetch <groupId:artifactId:version>",
		Short: "Download an artifact jar from a Maven repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := maven.ParseCoordinate(args[0])
			if err != nil {
				return err
			}
			path, err := maven.NewFetcher().DownloadJar(coord, destDir)
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&destDir, "dest", "d", "jars", "directory to download into")

	return cmd
}
