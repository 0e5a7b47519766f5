// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// SchemaInitializer is exposed by the schema setup implementation.
// It creates the film-clubs tables in an existing database and can
// fill them with development or production suitable initial data.
// The implementation holds the destination transaction, so the
// methods take no target argument; nothing persists unless the caller
// commits that transaction.
type SchemaInitializer interface {
	// InitDevSchema creates the tables and fills them with the
	// development suitable initial data.
	InitDevSchema(ctx context.Context) error

	// InitProdSchema creates the tables and fills them with the
	// production suitable initial data.
	InitProdSchema(ctx context.Context) error
}

// Schema presents expectations from a repository which manages the
// database roles and their privileges. One database principal exists
// per canonical system role; the privilege sets granted here are the
// authoritative authorization boundary which the in-process role gate
// only mirrors.
type Schema interface {
	// Conn takes a Conn interface instance, unwraps it as required,
	// and returns a SchemaConnQueryer interface which (with access to
	// the implementation-dependent connection object) can manage
	// database roles and their grants.
	Conn(Conn) SchemaConnQueryer

	// Tx takes a Tx interface instance, unwraps it as required, and
	// returns a SchemaTxQueryer interface for the operations which
	// must share a transaction with other setup statements.
	Tx(Tx) SchemaTxQueryer
}

type SchemaConnQueryer interface {
	// CreateRoleIfNotExists creates the role database principal with
	// the login option if it does not exist right now. No password is
	// set; see ChangePasswords.
	CreateRoleIfNotExists(ctx context.Context, role Role) error

	// GrantPrivileges grants the role its per-table privilege set.
	// The grant sets are fixed per database principal; granting is
	// idempotent.
	GrantPrivileges(ctx context.Context, role Role) error
}

type SchemaTxQueryer interface {
	// ChangePasswords updates the passwords of the given roles in the
	// current transaction. The roles and passwords slices are used in
	// pair and must have the same number of entries. Passwords are
	// hashed in-process (see the core scram package), so no plaintext
	// password appears in the issued DDL.
	ChangePasswords(ctx context.Context, roles []Role, passwords []string) error
}
