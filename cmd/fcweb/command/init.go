// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/filmclubs/fcweb/pkg/adapter/config"
	"github.com/filmclubs/fcweb/pkg/adapter/db/postgres/schemainit"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/filmclubs/fcweb/pkg/core/repo"
	"github.com/filmclubs/fcweb/pkg/core/usecase/setupuc"
	"github.com/spf13/cobra"
)

var initDevCmd = &cobra.Command{
	Use:   "init-dev",
	Short: "Initialize database contents with development data",
	Long: `Initialize database contents with development suitable
sample data: a few departments, clubs, members with organizational
role labels, films with their credits, and upcoming screenings.
The database connection information are read from the config file and
the per-principal passwords from the .pgpass file next to it. All
principals obtain the passwords which that file already records, so a
repeated initialization converges instead of locking anyone out.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return initDB(false)
	},
	Args: cobra.NoArgs,
}

var initProdCmd = &cobra.Command{
	Use:   "init-prod",
	Short: "Initialize database contents with production data",
	Long: `Initialize database contents with production suitable
initial data, that is, the single bootstrap superuser account. The
database connection information are read from the config file and the
per-principal passwords from the .pgpass file next to it.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return initDB(true)
	},
	Args: cobra.NoArgs,
}

func initDB(prod bool) error {
	ctx := context.Background()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	adminPool, err := c.Database.ConnectionPool(ctx, repo.AdminRole)
	if err != nil {
		return fmt.Errorf("creating admin DB pool: %w", err)
	}
	defer adminPool.Close()
	roles, passwords, err := rolePasswords(c)
	if err != nil {
		return err
	}
	uc := setupuc.New(
		adminPool,
		c.Database.NewSchemaRepo(),
		func(tx repo.Tx) repo.SchemaInitializer {
			return schemainit.New(tx)
		},
	)
	if prod {
		err = uc.InitProd(ctx, roles, passwords)
	} else {
		err = uc.InitDev(ctx, roles, passwords)
	}
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	return nil
}

// rolePasswords collects the database principals of all canonical
// roles, paired with their passwords from the configured pass file.
func rolePasswords(c *config.Config) ([]repo.Role, []string, error) {
	path := filepath.Join(c.Database.PassDir, ".pgpass")
	roles := make([]repo.Role, 0, len(model.AllRoles))
	passwords := make([]string, 0, len(model.AllRoles))
	for _, cr := range model.AllRoles {
		r := repo.RoleFor(cr)
		pass, err := c.Database.Password(r, path)
		if err != nil {
			return nil, nil, fmt.Errorf(
				"reading password of %q: %w", r, err,
			)
		}
		roles = append(roles, r)
		passwords = append(passwords, pass)
	}
	return roles, passwords, nil
}

func init() {
	dbCmd.AddCommand(initDevCmd)
	dbCmd.AddCommand(initProdCmd)
}
