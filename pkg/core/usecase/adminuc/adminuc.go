// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package adminuc contains the administration UseCase: club and venue
// lifecycle, the departments listing, and the global member
// directory. Every operation demands the dbAdministrator role before
// any connection is acquired, so a denied request never touches the
// database at all.
package adminuc

import (
	"context"

	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/filmclubs/fcweb/pkg/core/repo"
	"github.com/google/uuid"
)

// UseCase represents the administration use case. It holds the
// credential pool set, the clubs repository, and the members
// repository.
type UseCase struct {
	pools     repo.PoolSet
	clubsrp   repo.Clubs
	membersrp repo.Members
}

// New instantiates an administration use case.
func New(ps repo.PoolSet, c repo.Clubs, m repo.Members) *UseCase {
	return &UseCase{pools: ps, clubsrp: c, membersrp: m}
}

// CreateClub registers a club, optionally affiliated with a
// department.
func (admin *UseCase) CreateClub(ctx context.Context, role model.Role, name, email string, departmentID *uuid.UUID) (cid uuid.UUID, err error) {
	if err := model.Require(ctx, role, model.RoleDBAdministrator); err != nil {
		return uuid.Nil, err
	}
	pool := admin.pools.Get(string(role))
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		cid, err = admin.clubsrp.Conn(c).Create(
			ctx, name, email, departmentID,
		)
		return err
	})
	if err != nil {
		cid = uuid.Nil
	}
	return
}

// DeleteClub removes a club. Memberships, schedule links, and
// ownership links of the club are removed by the cascading
// constraints.
func (admin *UseCase) DeleteClub(ctx context.Context, role model.Role, clubID uuid.UUID) error {
	if err := model.Require(ctx, role, model.RoleDBAdministrator); err != nil {
		return err
	}
	pool := admin.pools.Get(string(role))
	return pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return admin.clubsrp.Conn(c).Delete(ctx, clubID)
	})
}

// Departments lists all departments.
func (admin *UseCase) Departments(ctx context.Context, role model.Role) (ds []model.Department, err error) {
	if err := model.Require(ctx, role, model.RoleDBAdministrator); err != nil {
		return nil, err
	}
	pool := admin.pools.Get(string(role))
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		ds, err = admin.clubsrp.Conn(c).Departments(ctx)
		return err
	})
	if err != nil {
		ds = nil
	}
	return
}

// Venues lists all venues.
func (admin *UseCase) Venues(ctx context.Context, role model.Role) (vs []model.Venue, err error) {
	if err := model.Require(ctx, role, model.RoleDBAdministrator); err != nil {
		return nil, err
	}
	pool := admin.pools.Get(string(role))
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		vs, err = admin.clubsrp.Conn(c).Venues(ctx)
		return err
	})
	if err != nil {
		vs = nil
	}
	return
}

// CreateVenue registers a screening venue.
func (admin *UseCase) CreateVenue(ctx context.Context, role model.Role, name, details string, departmentID *uuid.UUID) (vid uuid.UUID, err error) {
	if err := model.Require(ctx, role, model.RoleDBAdministrator); err != nil {
		return uuid.Nil, err
	}
	pool := admin.pools.Get(string(role))
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		vid, err = admin.clubsrp.Conn(c).CreateVenue(
			ctx, name, details, departmentID,
		)
		return err
	})
	if err != nil {
		vid = uuid.Nil
	}
	return
}

// DeleteVenue removes a venue. It surfaces a conflict while
// screenings still reference the venue.
func (admin *UseCase) DeleteVenue(ctx context.Context, role model.Role, venueID uuid.UUID) error {
	if err := model.Require(ctx, role, model.RoleDBAdministrator); err != nil {
		return err
	}
	pool := admin.pools.Get(string(role))
	return pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return admin.clubsrp.Conn(c).DeleteVenue(ctx, venueID)
	})
}

// Directory lists every member with its club affiliations for the
// administrative directory page.
func (admin *UseCase) Directory(ctx context.Context, role model.Role) (dir []model.DirectoryEntry, err error) {
	if err := model.Require(ctx, role, model.RoleDBAdministrator); err != nil {
		return nil, err
	}
	pool := admin.pools.Get(string(role))
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		dir, err = admin.membersrp.Conn(c).Directory(ctx)
		return err
	})
	if err != nil {
		dir = nil
	}
	return
}

// DeleteMember removes a member account with its memberships.
func (admin *UseCase) DeleteMember(ctx context.Context, role model.Role, memberID uuid.UUID) error {
	if err := model.Require(ctx, role, model.RoleDBAdministrator); err != nil {
		return err
	}
	pool := admin.pools.Get(string(role))
	return pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return admin.membersrp.Conn(c).Delete(ctx, memberID)
	})
}
