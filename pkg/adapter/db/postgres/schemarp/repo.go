// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package schemarp provides a reification of the repo.Schema
// interface making it possible to manage the per-role database
// principals and their privilege grants. The grants issued here are
// the authoritative authorization boundary of the whole system; the
// in-process role gate only mirrors them.
package schemarp

import (
	"context"

	"github.com/filmclubs/fcweb/pkg/adapter/db/postgres"
	"github.com/filmclubs/fcweb/pkg/core/repo"
	"github.com/filmclubs/fcweb/pkg/core/scram"
)

// Repo represents a roles management repository. It carries the
// configured role name suffix (so parallel tests can provision
// non-colliding role sets in one cluster) and the SCRAM hasher
// matching the DBMS authentication method.
type Repo struct {
	roleSuffix repo.Role
	hasher     scram.Hasher
}

// New instantiates a schema management Repo with the given role name
// suffix and password hasher.
func New(roleSuffix repo.Role, hasher scram.Hasher) *Repo {
	return &Repo{roleSuffix: roleSuffix, hasher: hasher}
}

type connQueryer struct {
	*postgres.Conn

	roleSuffix repo.Role
}

// Conn unwraps the given repo.Conn instance, expecting to find an
// instance of *postgres.Conn as created by this adapter layer.
// Otherwise, it will panic. Unwrapped connection will be wrapped and
// returned as an instance of repo.SchemaConnQueryer interface, so it
// can be used in the use cases layer without requiring to type assert
// again and again.
func (schema *Repo) Conn(c repo.Conn) repo.SchemaConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc, roleSuffix: schema.roleSuffix}
}

// CreateRoleIfNotExists creates the `role` role if it does not exist
// right now. Although the login option is enabled for the created
// role, no specific password will be set for it; the ChangePasswords
// method may be used for setting a password if desired.
func (cq connQueryer) CreateRoleIfNotExists(
	ctx context.Context, role repo.Role,
) error {
	return CreateRoleIfNotExists(ctx, cq.Conn, cq.roleSuffix, role)
}

// GrantPrivileges grants the `role` role its fixed per-table
// privilege set. Granting is idempotent; re-running it converges to
// the same grants.
func (cq connQueryer) GrantPrivileges(
	ctx context.Context, role repo.Role,
) error {
	return GrantPrivileges(ctx, cq.Conn, cq.roleSuffix, role)
}

type txQueryer struct {
	*postgres.Tx

	roleSuffix repo.Role
	hasher     scram.Hasher
}

// Tx unwraps the given repo.Tx instance, expecting to find an
// instance of *postgres.Tx as created by this adapter layer.
// Otherwise, it will panic. Unwrapped transaction will be wrapped and
// returned as an instance of repo.SchemaTxQueryer interface.
//
// ChangePasswords requires a transaction: when creating roles for the
// first time, their passwords should be set before the roles become
// visible by committing, and the caller must choose the proper point
// of commitment.
func (schema *Repo) Tx(tx repo.Tx) repo.SchemaTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{
		Tx: tt, roleSuffix: schema.roleSuffix, hasher: schema.hasher,
	}
}

// ChangePasswords updates the passwords of the given roles in the
// current transaction. The roles and passwords slices must have the
// same number of entries, so they can be used in pair. Passwords are
// hashed by the configured SCRAM hasher before being sent to the
// DBMS, so they may not leak in plaintext through statement logs.
func (tq txQueryer) ChangePasswords(
	ctx context.Context, roles []repo.Role, passwords []string,
) error {
	return ChangePasswords(
		ctx, tq.Tx, tq.roleSuffix, tq.hasher, roles, passwords,
	)
}
