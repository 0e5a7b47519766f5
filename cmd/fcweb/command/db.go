// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import "github.com/spf13/cobra"

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management actions",
	Long: `Database management actions can be chosen by sub-commands.
For a fresh installation in a development or production environment,
the init-dev or init-prod actions prepare the database: they create
the per-role database principals, the tables with their initial data,
the per-principal grants, and set the principal passwords from the
configured pass file. Only the administrator principal needs to exist
beforehand.`,
}

func init() {
	rootCmd.AddCommand(dbCmd)
}
