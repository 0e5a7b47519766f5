// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schemarp

import (
	"context"
	"fmt"
	"strings"

	"github.com/filmclubs/fcweb/pkg/adapter/db/postgres"
	"github.com/filmclubs/fcweb/pkg/core/repo"
	"github.com/filmclubs/fcweb/pkg/core/scram"
)

// publicTables are the entities which anonymous visitors may browse:
// the published schedule and its supporting reference data.
var publicTables = []string{
	"film", "director", "actor", "language",
	"directed", "played_in", "spoken_in",
	"screening", "shows", "schedules", "post",
	"venue", "department", "filmclub",
}

// rosterTables additionally become readable from the clubMember tier
// upwards.
var rosterTables = []string{
	"member", "belongs_to", "equipment", "owns", "uses",
}

// contentTables are writable by the contentManager principal.
var contentTables = []string{
	"film", "director", "actor",
	"directed", "played_in", "spoken_in",
	"screening", "shows", "schedules", "post",
}

// equipmentTables are owned by the equipmentManager principal.
var equipmentTables = []string{"equipment", "owns", "uses"}

// clubAdminTables are updatable by the clubAdmin principal; the
// per-club row scoping is enforced by the query layer.
var clubAdminTables = []string{"belongs_to", "filmclub", "member"}

// CreateRoleIfNotExists creates the `role` role with the login option
// if it does not exist right now. No password is set here.
//
// The `role` role name may be suffixed by `roleSuffix` if it is not
// empty. Role names come from the fixed repo.Role constants plus a
// configured suffix, hence are trusted for direct interpolation.
func CreateRoleIfNotExists[Q postgres.Queryer](
	ctx context.Context, q Q, roleSuffix repo.Role, role repo.Role,
) error {
	r := string(role + roleSuffix)
	stmt := fmt.Sprintf(`DO $$
BEGIN
	IF NOT EXISTS (
		SELECT FROM pg_catalog.pg_roles WHERE rolname = '%[1]s'
	) THEN
		CREATE ROLE "%[1]s" LOGIN;
	END IF;
END
$$`, r)
	if _, err := q.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("creating role %q: %w", r, err)
	}
	return nil
}

// GrantPrivileges grants the `role` role its per-table privilege set:
//
//   - fc_guest: SELECT on the public schedule entities,
//   - fc_member: guest plus SELECT on rosters and inventory,
//   - fc_content: member plus INSERT/UPDATE on the film and
//     screening families,
//   - fc_equipment: member plus INSERT/UPDATE/DELETE on the
//     inventory tables,
//   - fc_clubadmin: member plus UPDATE on rosters and club profiles
//     and DELETE on membership rows,
//   - fc_admin: ALL on all tables.
//
// The `role` role name may be suffixed by `roleSuffix` if it is not
// empty.
func GrantPrivileges[Q postgres.Queryer](
	ctx context.Context,
	q Q,
	roleSuffix repo.Role,
	role repo.Role,
) error {
	r := string(role + roleSuffix)
	var stmts []string
	grant := func(privs string, tables []string) {
		stmts = append(stmts, fmt.Sprintf(
			`GRANT %s ON %s TO "%s"`,
			privs, strings.Join(tables, ", "), r,
		))
	}
	switch role {
	case repo.GuestRole:
		grant("SELECT", publicTables)
	case repo.MemberRole:
		grant("SELECT", publicTables)
		grant("SELECT", rosterTables)
	case repo.ContentRole:
		grant("SELECT", publicTables)
		grant("SELECT", rosterTables)
		grant("INSERT, UPDATE", contentTables)
	case repo.EquipmentRole:
		grant("SELECT", publicTables)
		grant("SELECT", rosterTables)
		grant("INSERT, UPDATE, DELETE", equipmentTables)
	case repo.ClubAdminRole:
		grant("SELECT", publicTables)
		grant("SELECT", rosterTables)
		grant("UPDATE", clubAdminTables)
		grant("DELETE", []string{"belongs_to"})
	case repo.AdminRole:
		stmts = append(stmts, fmt.Sprintf(
			`GRANT ALL ON ALL TABLES IN SCHEMA public TO "%s"`, r,
		))
	default:
		return fmt.Errorf("unknown database role: %q", role)
	}
	for _, stmt := range stmts {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("granting to %q: %w", r, err)
		}
	}
	return nil
}

// ChangePasswords updates the passwords of the given roles in the
// current transaction. The roles and passwords slices must have the
// same number of entries, so they can be used in pair.
// The `hasher` will be used for hashing of the `passwords` before
// sending them to the DBMS (so they may not leak in plaintext).
// This SCRAM hasher format must conform with the DBMS expected
// format.
func ChangePasswords(
	ctx context.Context,
	tx *postgres.Tx,
	roleSuffix repo.Role,
	hasher scram.Hasher,
	roles []repo.Role,
	passwords []string,
) error {
	if len(roles) != len(passwords) {
		return fmt.Errorf(
			"mismatching roles (%d) and passwords (%d) counts",
			len(roles), len(passwords),
		)
	}
	for i, role := range roles {
		r := string(role + roleSuffix)
		h, err := hasher.Hash(passwords[i], "", 15000)
		if err != nil {
			return fmt.Errorf("hashing password of %q: %w", r, err)
		}
		stmt := fmt.Sprintf(`ALTER ROLE "%s" PASSWORD '%s'`, r, h)
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("altering role %q: %w", r, err)
		}
	}
	return nil
}
