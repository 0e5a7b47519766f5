// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package clubsuc contains the clubs UseCase: the public club pages
// and the club administration operations. Roster management and
// profile updates demand the clubAdmin role; the per-club scoping of
// the touched rows is the caller's responsibility since the canonical
// roles carry no club identity.
package clubsuc

import (
	"context"
	"fmt"

	"github.com/filmclubs/fcweb/pkg/core/cerr"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/filmclubs/fcweb/pkg/core/repo"
	"github.com/google/uuid"
)

// UseCase represents the clubs use case. It holds the credential pool
// set, the clubs repository, and the members repository for rosters.
type UseCase struct {
	pools     repo.PoolSet
	clubsrp   repo.Clubs
	membersrp repo.Members
}

// New instantiates a clubs use case.
func New(ps repo.PoolSet, c repo.Clubs, m repo.Members) *UseCase {
	return &UseCase{pools: ps, clubsrp: c, membersrp: m}
}

// List returns every club for the public listing page. Open to every
// role.
func (clubs *UseCase) List(ctx context.Context, role model.Role) (cs []model.Club, err error) {
	pool := clubs.pools.Get(string(role))
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		cs, err = clubs.clubsrp.Conn(c).List(ctx)
		return err
	})
	if err != nil {
		cs = nil
	}
	return
}

// Details returns one club's profile. A missing club is a not-found
// error. Open to every role.
func (clubs *UseCase) Details(ctx context.Context, role model.Role, clubID uuid.UUID) (club *model.Club, err error) {
	pool := clubs.pools.Get(string(role))
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		club, err = clubs.clubsrp.Conn(c).Details(ctx, clubID)
		if err != nil {
			return err
		}
		if club == nil {
			return cerr.NotFound(fmt.Errorf("no such club"))
		}
		return nil
	})
	if err != nil {
		club = nil
	}
	return
}

// Team returns the public roster of a club. Open to every role.
func (clubs *UseCase) Team(ctx context.Context, role model.Role, clubID uuid.UUID) (team []model.TeamMember, err error) {
	pool := clubs.pools.Get(string(role))
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		team, err = clubs.membersrp.Conn(c).Team(ctx, clubID)
		return err
	})
	if err != nil {
		team = nil
	}
	return
}

// Search returns clubs by name substring for selection pickers.
func (clubs *UseCase) Search(ctx context.Context, role model.Role, query string, limit int) (refs []model.ClubRef, err error) {
	pool := clubs.pools.Get(string(role))
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		refs, err = clubs.clubsrp.Conn(c).Search(ctx, query, limit)
		return err
	})
	if err != nil {
		refs = nil
	}
	return
}

// Roster returns the management roster of a club, including inactive
// memberships and the member identifiers.
func (clubs *UseCase) Roster(ctx context.Context, role model.Role, clubID uuid.UUID) (roster []model.RosterEntry, err error) {
	if err := model.Require(ctx, role, model.RoleClubAdmin); err != nil {
		return nil, err
	}
	pool := clubs.pools.Get(string(role))
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		roster, err = clubs.membersrp.Conn(c).Roster(ctx, clubID)
		return err
	})
	if err != nil {
		roster = nil
	}
	return
}

// UpdateMembership rewrites the label and active flag of one
// membership row.
func (clubs *UseCase) UpdateMembership(ctx context.Context, role model.Role, memberID, clubID uuid.UUID, label string, active bool) error {
	if err := model.Require(ctx, role, model.RoleClubAdmin); err != nil {
		return err
	}
	pool := clubs.pools.Get(string(role))
	return pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return clubs.membersrp.Conn(c).UpdateMembership(
			ctx, memberID, clubID, label, active,
		)
	})
}

// Update rewrites a club's profile fields.
func (clubs *UseCase) Update(ctx context.Context, role model.Role, club model.Club) error {
	if err := model.Require(ctx, role, model.RoleClubAdmin); err != nil {
		return err
	}
	pool := clubs.pools.Get(string(role))
	return pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return clubs.clubsrp.Conn(c).Update(ctx, club)
	})
}
