// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "github.com/filmclubs/fcweb/pkg/core/model"

// Role is a string specifying a database connection role. Each role
// is a distinct database principal with its own set of granted
// privileges, which indicates which operations may be performed after
// using it for connecting to the database.
//
// One connection pool is opened per Role at process start. The
// identification information of each role are captured from the
// config file and its authentication information are read from a
// passwords file.
type Role string

// These constants specify the expected database roles, one per
// canonical system role. At least the AdminRole must exist beforehand
// (i.e., must be created manually) with enough privileges to create
// the other roles and grant them their privilege sets; the `fcweb db
// init-dev` and `fcweb db init-prod` commands perform that
// provisioning. The authentication
// information of these roles are kept in pass files as indicated in
// the configuration file.
const (
	// GuestRole may only read the public entities. It is the fallback
	// principal for unauthenticated or unclassifiable requests.
	GuestRole Role = "fc_guest"

	// MemberRole additionally reads rosters and membership rows.
	MemberRole Role = "fc_member"

	// ContentRole may insert and update the film and screening
	// families of tables.
	ContentRole Role = "fc_content"

	// EquipmentRole owns the equipment, ownership, and reservation
	// tables.
	EquipmentRole Role = "fc_equipment"

	// ClubAdminRole additionally updates club profiles and rosters.
	ClubAdminRole Role = "fc_clubadmin"

	// AdminRole is the administrator (super user) role which may be
	// used for creation of other roles, granting them their
	// privileges, creation of the schema, and the privileged principal
	// lookup during login.
	AdminRole Role = "fc_admin"
)

// roleByCanonical binds each canonical system role to its database
// principal. The two enumerations are kept distinct on purpose: the
// canonical role is a wire-level claim while the Role is an internal
// connection credential name.
var roleByCanonical = map[model.Role]Role{
	model.RoleGuest:            GuestRole,
	model.RoleClubMember:       MemberRole,
	model.RoleContentManager:   ContentRole,
	model.RoleEquipmentManager: EquipmentRole,
	model.RoleClubAdmin:        ClubAdminRole,
	model.RoleDBAdministrator:  AdminRole,
}

// RoleFor returns the database principal backing the given canonical
// role. It is total over the canonical role enum.
func RoleFor(r model.Role) Role {
	return roleByCanonical[r]
}
