// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "github.com/google/uuid"

// Member is an authenticated principal. A member may belong to zero
// or more clubs, each membership carrying its own organizational role
// label. Superuser designates the system administrator override: it
// resolves to dbAdministrator regardless of any membership label.
type Member struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Instagram string
	Facebook  string
	Superuser bool
}

// Membership ties a member to one club with an organizational role
// label, such as "President" or "Program Curator". Inactive
// memberships are ignored during role resolution.
type Membership struct {
	ClubID   uuid.UUID
	ClubName string
	Label    string
	Active   bool
}

// Session is the login payload: the resolved canonical role together
// with the memberships the client needs to maintain its per-club
// context without re-querying.
type Session struct {
	MemberID    uuid.UUID
	DisplayName string
	Role        Role
	Memberships []Membership
}

// DirectoryEntry is one row of the global member directory, with the
// member's club affiliations flattened into "Club (Label)" strings.
type DirectoryEntry struct {
	Member
	Department string
	Clubs      []string
}
