// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package setupuc contains the database setup UseCase. It prepares a
// fresh installation: the per-role database principals, the tables
// with their development or production suitable initial data, the
// per-principal grants, and the principal passwords. All operations
// run over the administrative credential pool, which is the only
// principal allowed to create roles and alter passwords.
package setupuc

import (
	"context"
	"fmt"

	"github.com/filmclubs/fcweb/pkg/core/repo"
)

// InitializerFactory creates a schema initializer bound to the given
// transaction. It decouples this use case from the concrete schema
// creation implementation.
type InitializerFactory func(tx repo.Tx) repo.SchemaInitializer

// UseCase represents the database setup use case.
type UseCase struct {
	pool       repo.Pool // administrative credential pool
	schemaRepo repo.Schema
	newInit    InitializerFactory
}

// New instantiates a database setup use case over the administrative
// `p` pool.
func New(p repo.Pool, s repo.Schema, f InitializerFactory) *UseCase {
	return &UseCase{pool: p, schemaRepo: s, newInit: f}
}

// InitDev prepares a development installation: principals, tables
// filled with sample data, grants, and passwords.
// The roles and passwords slices are used in pair.
func (setup *UseCase) InitDev(ctx context.Context, roles []repo.Role, passwords []string) error {
	return setup.initDB(
		ctx, roles, passwords,
		func(ctx context.Context, si repo.SchemaInitializer) error {
			return si.InitDevSchema(ctx)
		},
	)
}

// InitProd prepares a production installation: principals, tables
// with the minimal bootstrap data, grants, and passwords.
// The roles and passwords slices are used in pair.
func (setup *UseCase) InitProd(ctx context.Context, roles []repo.Role, passwords []string) error {
	return setup.initDB(
		ctx, roles, passwords,
		func(ctx context.Context, si repo.SchemaInitializer) error {
			return si.InitProdSchema(ctx)
		},
	)
}

// initDB runs the setup in three steps. The principals are created
// first because the grants refer to them, and the grants run last
// because they refer to the tables. The table creation and the
// password renewal share one transaction; the role creation and the
// grants are idempotent, so a partially failed setup can simply be
// repeated.
func (setup *UseCase) initDB(
	ctx context.Context,
	roles []repo.Role,
	passwords []string,
	dbi func(ctx context.Context, si repo.SchemaInitializer) error,
) error {
	if len(roles) != len(passwords) {
		return fmt.Errorf(
			"got %d roles and %d passwords",
			len(roles), len(passwords),
		)
	}
	return setup.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		cq := setup.schemaRepo.Conn(c)
		for _, r := range roles {
			if err := cq.CreateRoleIfNotExists(ctx, r); err != nil {
				return fmt.Errorf("creating role %q: %w", r, err)
			}
		}
		err := c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			if err := dbi(ctx, setup.newInit(tx)); err != nil {
				return fmt.Errorf("initializing schema: %w", err)
			}
			tq := setup.schemaRepo.Tx(tx)
			if err := tq.ChangePasswords(ctx, roles, passwords); err != nil {
				return fmt.Errorf("renewing passwords: %w", err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		for _, r := range roles {
			if err := cq.GrantPrivileges(ctx, r); err != nil {
				return fmt.Errorf("granting to %q: %w", r, err)
			}
		}
		return nil
	})
}
