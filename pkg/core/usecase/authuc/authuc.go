// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package authuc contains the authentication UseCase which resolves a
// principal name into a canonical role and the memberships which the
// client needs for its per-club context. Looking up arbitrary
// principals is itself privileged, so this use case always runs its
// queries on the fixed lookup pool instead of the per-request pool.
package authuc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/filmclubs/fcweb/pkg/core/cerr"
	"github.com/filmclubs/fcweb/pkg/core/log"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/filmclubs/fcweb/pkg/core/repo"
	"github.com/google/uuid"
)

// UseCase represents the authentication use case. It holds the pool
// set (for its fixed lookup pool) and the members repository.
type UseCase struct {
	pools     repo.PoolSet
	membersrp repo.Members
}

// New instantiates an authentication use case.
func New(ps repo.PoolSet, m repo.Members) *UseCase {
	return &UseCase{pools: ps, membersrp: m}
}

// Login resolves the named principal into a session. An unknown name
// is an authentication error; no guest session is minted for it, so
// the client can distinguish a typo from an empty profile. For a
// known principal, the session role is the highest tier among the
// roles of its active membership labels, with the superuser flag
// overriding everything to dbAdministrator. A member whose labels all
// fail to resolve ends up as a guest.
func (auth *UseCase) Login(ctx context.Context, name string) (s *model.Session, err error) {
	err = auth.pools.Lookup().Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := auth.membersrp.Conn(c)
		m, ms, err := q.FindByName(ctx, name)
		if err != nil {
			return err
		}
		if m == nil {
			return cerr.Authentication(
				fmt.Errorf("unknown principal: %q", name),
			)
		}
		s = &model.Session{
			MemberID:    m.ID,
			DisplayName: m.Name,
			Role:        resolveBest(ctx, m, ms),
			Memberships: ms,
		}
		return nil
	})
	if err != nil {
		s = nil
	}
	return
}

// AssumeClubContext narrows a principal to its role within one club,
// while the highest-tier resolution of Login spans all memberships.
// The assumption is logged since it re-scopes what the client will
// claim afterwards. Asking for a club the member does not actively
// belong to yields the guest role rather than an error.
func (auth *UseCase) AssumeClubContext(ctx context.Context, name string, clubID uuid.UUID) (role model.Role, err error) {
	role = model.RoleGuest
	err = auth.pools.Lookup().Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := auth.membersrp.Conn(c)
		m, ms, err := q.FindByName(ctx, name)
		if err != nil {
			return err
		}
		if m == nil {
			return cerr.Authentication(
				fmt.Errorf("unknown principal: %q", name),
			)
		}
		if m.Superuser {
			role = model.RoleDBAdministrator
			return nil
		}
		for _, membership := range ms {
			if membership.ClubID == clubID && membership.Active {
				role = model.ResolveRole(
					ctx, membership.Label, false,
				)
				break
			}
		}
		return nil
	})
	if err != nil {
		return model.RoleGuest, err
	}
	log.Info(
		ctx, "club context assumed",
		slog.String("principal", name),
		slog.String("club", clubID.String()),
		slog.String("role", string(role)),
	)
	return role, nil
}

// resolveBest maps every active membership label through the role
// registry and keeps the highest tier.
func resolveBest(ctx context.Context, m *model.Member, ms []model.Membership) model.Role {
	if m.Superuser {
		return model.RoleDBAdministrator
	}
	best := model.RoleGuest
	for _, membership := range ms {
		if !membership.Active {
			continue
		}
		r := model.ResolveRole(ctx, membership.Label, false)
		if r.Outranks(best) {
			best = r
		}
	}
	return best
}
