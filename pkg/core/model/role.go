// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/filmclubs/fcweb/pkg/core/cerr"
	"github.com/filmclubs/fcweb/pkg/core/log"
)

// Role is a canonical system role. Every request resolves to exactly
// one Role and that Role alone decides which database credential pool
// serves the request. The set of roles is closed; arbitrary strings
// received over the wire must be parsed with ParseRole (which fails
// closed) before being used as a Role.
type Role string

// The canonical roles, from the least to the most privileged tier.
// Each role is backed by a distinct database principal whose SQL
// grants are the authoritative enforcement boundary; the in-process
// checks over these constants are defense-in-depth on top of them.
const (
	RoleGuest            Role = "guest"
	RoleClubMember       Role = "clubMember"
	RoleContentManager   Role = "contentManager"
	RoleEquipmentManager Role = "equipmentManager"
	RoleClubAdmin        Role = "clubAdmin"
	RoleDBAdministrator  Role = "dbAdministrator"
)

// AllRoles lists every canonical role. The credential pool set opens
// one pool per entry at startup.
var AllRoles = []Role{
	RoleGuest,
	RoleClubMember,
	RoleContentManager,
	RoleEquipmentManager,
	RoleClubAdmin,
	RoleDBAdministrator,
}

// roleRanks orders roles for the Satisfies relation. Content and
// equipment managers share a rank: they are parallel capabilities,
// not steps of one ladder, and neither satisfies a check for the
// other.
var roleRanks = map[Role]int{
	RoleGuest:            0,
	RoleClubMember:       1,
	RoleContentManager:   2,
	RoleEquipmentManager: 2,
	RoleClubAdmin:        3,
	RoleDBAdministrator:  4,
}

// ParseRole converts an arbitrary string into a canonical Role.
// Unknown values, including the empty string, are reported as an
// error so that callers must decide the fallback explicitly.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := roleRanks[r]; !ok {
		return "", fmt.Errorf("unknown canonical role: %q", s)
	}
	return r, nil
}

// Satisfies reports whether the r role passes a check which demands
// at least the min role. The dbAdministrator role satisfies every
// check and clubAdmin satisfies checks for clubAdmin or any lower
// rank (club scoping of the touched rows is enforced by the query
// layer, not here). All other roles only satisfy their exact check,
// so a contentManager cannot act as an equipmentManager even though
// the two share a rank.
func (r Role) Satisfies(min Role) bool {
	switch r {
	case RoleDBAdministrator:
		return true
	case RoleClubAdmin:
		return roleRanks[min] <= roleRanks[RoleClubAdmin]
	default:
		return r == min
	}
}

// Outranks reports whether the r role sits on a strictly higher tier
// than the o role. It compares tiers only; unlike Satisfies, it makes
// no statement about capability inclusion between same-rank roles.
func (r Role) Outranks(o Role) bool {
	return roleRanks[r] > roleRanks[o]
}

// Reaches reports whether the r role sits on at least the tier of the
// min role. It is the check for reads that any sufficiently elevated
// role may perform, where Satisfies would wrongly split the same-rank
// capability roles: an equipmentManager reaches the clubMember tier
// even though it does not satisfy an exact clubMember check.
func (r Role) Reaches(min Role) bool {
	return roleRanks[r] >= roleRanks[min]
}

// Require is the authorization gate for the administrative and
// mutating operations. It returns nil if the effective role satisfies
// the min role and a cerr.Authorization error otherwise. Callers must
// not run the gated operation after a failure, not even against a
// downgraded pool. The returned error intentionally states no more
// than the role insufficiency; the server-side log carries the
// detailed pair.
func Require(ctx context.Context, effective, min Role) error {
	if effective.Satisfies(min) {
		return nil
	}
	log.Warn(
		ctx, "role check failed",
		slog.String("effective", string(effective)),
		slog.String("required", string(min)),
	)
	return cerr.Authorization(fmt.Errorf("insufficient role"))
}

// RequireTier gates an operation on the rank lattice alone: any role
// on at least the min tier passes. It suits the elevated reads which
// every staff role shares, such as the inventory listing; mutations
// keep using Require so the parallel capability roles stay separated.
func RequireTier(ctx context.Context, effective, min Role) error {
	if effective.Reaches(min) {
		return nil
	}
	log.Warn(
		ctx, "role tier check failed",
		slog.String("effective", string(effective)),
		slog.String("required", string(min)),
	)
	return cerr.Authorization(fmt.Errorf("insufficient role"))
}

// roleRegistry maps organizational role labels, as recorded on club
// membership rows, to canonical roles. Lookups are case-sensitive;
// labels are normalized at data-entry time, not here.
var roleRegistry = map[string]Role{
	"President":         RoleClubAdmin,
	"Vice President":    RoleClubAdmin,
	"Program Curator":   RoleContentManager,
	"Content Manager":   RoleContentManager,
	"Equipment Head":    RoleEquipmentManager,
	"Equipment Manager": RoleEquipmentManager,
	"Projectionist":     RoleEquipmentManager,
	"Member":            RoleClubMember,
	"Treasurer":         RoleClubMember,
	"Secretary":         RoleClubMember,
}

// ResolveRole translates an organizational role label into a canonical
// role. A designated superuser always resolves to dbAdministrator, no
// matter what the label says. Labels missing from the registry resolve
// to guest: an unmapped title must fail closed rather than fail the
// login, so the miss is only logged as a warning. The function has no
// other side effects.
func ResolveRole(
	ctx context.Context, label string, superuser bool,
) Role {
	if superuser {
		return RoleDBAdministrator
	}
	r, ok := roleRegistry[label]
	if !ok {
		log.Warn(
			ctx, "organizational label has no registry mapping",
			slog.String("label", label),
		)
		return RoleGuest
	}
	return r
}
