// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the film
// clubs web project. Commands are organized using the cobra library.
// The root command starts the web server itself while the "db"
// sub-command prepares the database for a fresh installation, with
// the init-dev and init-prod actions filling it with the development
// or production suitable data records.
//
//	./fcweb [-c /path/of/main/config.yaml]           # start web server
//	./fcweb db init-dev [-c /path/of/main/config.yaml]
//	./fcweb db init-prod [-c /path/of/main/config.yaml]
package command

import (
	"context"
	"fmt"
	"os"

	"github.com/filmclubs/fcweb/pkg/adapter/config"
	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin"
	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/routes"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "fcweb",
	Short: "The film clubs web service",
	Long: `The film clubs web service manages university film clubs:
their screenings schedule, film catalog, equipment inventory, member
rosters, and administration. Authorization is enforced by the
database itself: every canonical role is backed by a distinct
database principal with its own SQL grants, and each request is
served over the connection pool of its effective role. The in-process
role checks only decide earlier, with friendlier errors, what the
grants would have denied anyway.`,
	RunE: startWebServer,
}

func startWebServer(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	// All pools or none; a missing principal must fail the start
	// instead of silently serving its requests as another role.
	ps, err := c.PoolSet(ctx)
	if err != nil {
		return fmt.Errorf("creating credential pool set: %w", err)
	}
	defer ps.Close()
	var e *gin.Engine = c.Gin.NewEngine()
	if err = routes.Register(ctx, e, ps, c); err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	if err = e.Run(); err != nil {
		return fmt.Errorf("running Gin engine: %w", err)
	}
	return nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default
// value.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		// the default path should usually be in the /etc directory
		cfgPath = "configs/sample-config.yaml"
	}
}
