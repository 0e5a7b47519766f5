// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"time"

	"github.com/google/uuid"
)

// Club is one film club. Clubs belong to at most one department and
// own equipment, schedule screenings, and carry member rosters.
type Club struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Instagram    string
	Facebook     string
	Active       bool
	FoundingDate time.Time
	DepartmentID *uuid.UUID
	Department   string
}

// Department is an organizational unit that clubs, venues, and
// members may be affiliated with.
type Department struct {
	ID   uuid.UUID
	Name string
}

// Venue is a screening location, optionally affiliated with a
// department.
type Venue struct {
	ID           uuid.UUID
	Name         string
	Details      string
	DepartmentID *uuid.UUID
	Department   string
}

// TeamMember is one row of a club's public roster.
type TeamMember struct {
	Name      string
	Phone     string
	Instagram string
	Label     string
}

// RosterEntry is one row of a club's management roster, including the
// identifiers and status flags the public roster omits.
type RosterEntry struct {
	MemberID uuid.UUID
	Name     string
	Label    string
	Active   bool
}
