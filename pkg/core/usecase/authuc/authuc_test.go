// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package authuc_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/filmclubs/fcweb/internal/test/fakerp"
	"github.com/filmclubs/fcweb/pkg/core/cerr"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/filmclubs/fcweb/pkg/core/repo"
	"github.com/filmclubs/fcweb/pkg/core/usecase/authuc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMembers resolves FindByName from a fixed principal table and
// refuses every other query.
type fakeMembers struct {
	members map[string]principal
}

type principal struct {
	member      model.Member
	memberships []model.Membership
}

func (f *fakeMembers) Conn(repo.Conn) repo.MembersConnQueryer {
	return fakeMembersQueryer{f}
}

func (f *fakeMembers) Tx(repo.Tx) repo.MembersTxQueryer {
	return fakeMembersQueryer{f}
}

type fakeMembersQueryer struct {
	f *fakeMembers
}

func (q fakeMembersQueryer) FindByName(
	ctx context.Context, name string,
) (*model.Member, []model.Membership, error) {
	p, ok := q.f.members[name]
	if !ok {
		return nil, nil, nil
	}
	m := p.member
	return &m, p.memberships, nil
}

func (q fakeMembersQueryer) Team(
	ctx context.Context, clubID uuid.UUID,
) ([]model.TeamMember, error) {
	panic("unexpected Team query")
}

func (q fakeMembersQueryer) Roster(
	ctx context.Context, clubID uuid.UUID,
) ([]model.RosterEntry, error) {
	panic("unexpected Roster query")
}

func (q fakeMembersQueryer) UpdateMembership(
	ctx context.Context, memberID, clubID uuid.UUID,
	label string, active bool,
) error {
	panic("unexpected UpdateMembership statement")
}

func (q fakeMembersQueryer) Directory(
	ctx context.Context,
) ([]model.DirectoryEntry, error) {
	panic("unexpected Directory query")
}

func (q fakeMembersQueryer) Delete(
	ctx context.Context, memberID uuid.UUID,
) error {
	panic("unexpected Delete statement")
}

var (
	paradisoID = uuid.MustParse(
		"40000000-0000-0000-0000-000000000001",
	)
	nouvelleID = uuid.MustParse(
		"40000000-0000-0000-0000-000000000002",
	)
)

func newAuthUseCase() (*authuc.UseCase, *fakerp.PoolSet) {
	ps := fakerp.NewPoolSet()
	m := &fakeMembers{members: map[string]principal{
		"alex": {
			member: model.Member{
				ID:        uuid.MustParse("20000000-0000-0000-0000-000000000001"),
				Name:      "alex",
				Superuser: true,
			},
		},
		"omid": {
			member: model.Member{ID: uuid.New(), Name: "omid"},
			memberships: []model.Membership{
				{
					ClubID:   paradisoID,
					ClubName: "Cinema Paradiso Club",
					Label:    "Member",
					Active:   true,
				},
				{
					ClubID:   nouvelleID,
					ClubName: "Nouvelle Vague Society",
					Label:    "Equipment Head",
					Active:   true,
				},
			},
		},
		"sara": {
			member: model.Member{ID: uuid.New(), Name: "sara"},
			memberships: []model.Membership{
				{
					ClubID:   paradisoID,
					ClubName: "Cinema Paradiso Club",
					Label:    "President",
					Active:   false,
				},
				{
					ClubID:   paradisoID,
					ClubName: "Cinema Paradiso Club",
					Label:    "Film Buff",
					Active:   true,
				},
			},
		},
	}}
	return authuc.New(ps, m), ps
}

func TestLoginSuperuser(t *testing.T) {
	auth, ps := newAuthUseCase()
	s, err := auth.Login(context.Background(), "alex")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "alex", s.DisplayName)
	assert.Equal(t, model.RoleDBAdministrator, s.Role)
	assert.Empty(t, s.Memberships)
	// the login query runs on the fixed lookup pool
	assert.Equal(t, 1, ps.LookupPool.ConnCount)
	assert.Empty(t, ps.ByRole)
}

func TestLoginUnknownPrincipal(t *testing.T) {
	auth, _ := newAuthUseCase()
	s, err := auth.Login(context.Background(), "nobody")
	assert.Nil(t, s)
	var cerrErr *cerr.Error
	require.True(t, errors.As(err, &cerrErr))
	assert.Equal(t, http.StatusUnauthorized, cerrErr.HTTPStatusCode)
}

func TestLoginKeepsHighestTier(t *testing.T) {
	auth, _ := newAuthUseCase()
	s, err := auth.Login(context.Background(), "omid")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, model.RoleEquipmentManager, s.Role)
	assert.Len(t, s.Memberships, 2)
}

func TestLoginSkipsInactiveAndUnmappedLabels(t *testing.T) {
	// the inactive President label must not grant clubAdmin and the
	// unmapped label resolves to guest
	auth, _ := newAuthUseCase()
	s, err := auth.Login(context.Background(), "sara")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, model.RoleGuest, s.Role)
}

func TestAssumeClubContext(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthUseCase()

	role, err := auth.AssumeClubContext(ctx, "omid", nouvelleID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleEquipmentManager, role)

	role, err = auth.AssumeClubContext(ctx, "omid", paradisoID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleClubMember, role)

	// not a member of the asked club; fail closed, not loudly
	role, err = auth.AssumeClubContext(ctx, "omid", uuid.New())
	require.NoError(t, err)
	assert.Equal(t, model.RoleGuest, role)

	// the superuser override holds in any club context
	role, err = auth.AssumeClubContext(ctx, "alex", uuid.New())
	require.NoError(t, err)
	assert.Equal(t, model.RoleDBAdministrator, role)

	_, err = auth.AssumeClubContext(ctx, "nobody", paradisoID)
	var cerrErr *cerr.Error
	require.True(t, errors.As(err, &cerrErr))
	assert.Equal(t, http.StatusUnauthorized, cerrErr.HTTPStatusCode)
}
