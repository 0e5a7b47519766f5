// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package schemainit provides the Initializer type which creates the
// film-clubs tables in an existing database and fills them with the
// development or production suitable initial data. Each instance
// wraps a single transaction, so the caller decides whether the
// initialization results should be committed or rolled back.
package schemainit

import (
	"context"
	"fmt"

	"github.com/filmclubs/fcweb/pkg/core/repo"
)

// Initializer provides the database schema creation logic. Each
// instance wraps and uses a single transaction of the destination
// database, but the caller is responsible to commit that transaction
// in order to finalize the initialization results.
type Initializer struct {
	tx repo.Tx
}

// New creates a new Initializer instance, wrapping the given `tx`
// database transaction. The initializer expects the database itself
// to exist and only creates tables in it.
func New(tx repo.Tx) *Initializer {
	return &Initializer{tx: tx}
}

// InitDevSchema creates the film-clubs tables and fills them with
// the development suitable sample data: a handful of departments,
// clubs, members with organizational role labels, films with their
// credits, and a few upcoming screenings.
func (si *Initializer) InitDevSchema(ctx context.Context) error {
	if err := si.createTables(ctx); err != nil {
		return err
	}
	for _, stmt := range devSeedStatements {
		if _, err := si.tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("seeding development data: %w", err)
		}
	}
	return nil
}

// InitProdSchema creates the film-clubs tables and fills them with
// the production suitable initial data, that is, a single superuser
// account which can bootstrap the rest of the records.
func (si *Initializer) InitProdSchema(ctx context.Context) error {
	if err := si.createTables(ctx); err != nil {
		return err
	}
	for _, stmt := range prodSeedStatements {
		if _, err := si.tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("seeding production data: %w", err)
		}
	}
	return nil
}

func (si *Initializer) createTables(ctx context.Context) error {
	for _, stmt := range ddlStatements {
		if _, err := si.tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("creating tables: %w", err)
		}
	}
	return nil
}
