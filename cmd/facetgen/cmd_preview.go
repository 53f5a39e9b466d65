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
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/facetgen/cmd/facetgen/config"
	"github.com/AleutianAI/facetgen/pkg/logging"
	"github.com/AleutianAI/facetgen/services/facets/redirect"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Serve generated descriptors locally, honoring redirect rules",
	RunE:  runPreviewCommand,
}

func runPreviewCommand(cmd *cobra.Command, args []string) error {
	if err := config.Load(configPath); err != nil {
		return err
	}
	if distDir == "" {
		distDir = config.Global.Output.Dir
	}
	if previewAddr == "" {
		previewAddr = config.Global.Preview.Addr
	}

	logger := logging.New(logging.Config{
		Level:   logging.ParseLevel(config.Global.Logging.Level),
		Service: "facetgen-preview",
	})
	defer logger.Close()

	redirects, err := loadRedirects(distDir)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Everything else resolves against the generated tree: redirect
	// rules first, then page descriptors at their canonical paths.
	router.NoRoute(func(c *gin.Context) {
		reqPath := c.Request.URL.Path
		if to, ok := redirects[reqPath]; ok {
			c.Redirect(http.StatusMovedPermanently, to)
			return
		}
		// Redirect sources are generated with a trailing slash.
		if to, ok := redirects[reqPath+"/"]; ok {
			c.Redirect(http.StatusMovedPermanently, to)
			return
		}
		servePage(c, distDir, reqPath)
	})

	logger.Info("preview server listening",
		"addr", previewAddr,
		"dist", distDir,
		"redirects", len(redirects),
	)
	return router.Run(previewAddr)
}

// loadRedirects reads every per-category redirects.json under dist into
// one from→to table.
func loadRedirects(dist string) (map[string]string, error) {
	table := make(map[string]string)
	err := filepath.WalkDir(dist, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || d.Name() != "redirects.json" {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var rules []redirect.Redirect
		if err := json.Unmarshal(data, &rules); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		for _, r := range rules {
			// Anchors are a browser concern; strip them for the local
			// redirect target.
			table[r.From] = strings.TrimSuffix(r.To, "#content")
		}
		return nil
	})
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("dist directory %s not found; run `facetgen generate` first", dist)
	}
	return table, err
}

// servePage maps a request path to its page.json under dist.
func servePage(c *gin.Context, dist, reqPath string) {
	clean := strings.Trim(reqPath, "/")
	file := filepath.Join(dist, filepath.FromSlash(clean), "page.json")
	if !strings.HasPrefix(file, filepath.Clean(dist)+string(os.PathSeparator)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid path"})
		return
	}
	if _, err := os.Stat(file); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no page at " + reqPath})
		return
	}
	c.File(file)
}
