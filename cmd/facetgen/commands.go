// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

var (
	configPath string

	// generate flags
	catalogPath string
	outDir      string
	watchMode   bool

	// preview flags
	distDir     string
	previewAddr string
)

var rootCmd = &cobra.Command{
	Use:   "facetgen",
	Short: "Faceted navigation generator for static storefront catalogs",
	Long: `facetgen precomputes every reachable attribute filter combination for a
catalog, expands each with sort-order variants, and emits page and
redirect descriptors for the static site generator to consume.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the facetgen version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("facetgen", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to facetgen.yaml (default ~/.facetgen/facetgen.yaml)")

	generateCmd.Flags().StringVar(&catalogPath, "catalog", "catalog.yaml", "path to the catalog items file")
	generateCmd.Flags().StringVar(&outDir, "out", "", "output directory (default from config)")
	generateCmd.Flags().BoolVar(&watchMode, "watch", false, "regenerate when the catalog file changes")

	previewCmd.Flags().StringVar(&distDir, "dist", "", "generated output directory to serve (default from config)")
	previewCmd.Flags().StringVar(&previewAddr, "addr", "", "listen address (default from config)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
