// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package clubsuc_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/filmclubs/fcweb/internal/test/fakerp"
	"github.com/filmclubs/fcweb/pkg/core/cerr"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/filmclubs/fcweb/pkg/core/repo"
	"github.com/filmclubs/fcweb/pkg/core/usecase/clubsuc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClubs keeps one club and records profile updates.
type fakeClubs struct {
	club    model.Club
	updates []model.Club
}

func (f *fakeClubs) Conn(repo.Conn) repo.ClubsConnQueryer {
	return fakeClubsQueryer{f}
}

func (f *fakeClubs) Tx(repo.Tx) repo.ClubsTxQueryer {
	return fakeClubsQueryer{f}
}

type fakeClubsQueryer struct {
	f *fakeClubs
}

func (q fakeClubsQueryer) Details(
	ctx context.Context, clubID uuid.UUID,
) (*model.Club, error) {
	if clubID != q.f.club.ID {
		return nil, nil
	}
	c := q.f.club
	return &c, nil
}

func (q fakeClubsQueryer) Update(
	ctx context.Context, c model.Club,
) error {
	q.f.updates = append(q.f.updates, c)
	return nil
}

func (q fakeClubsQueryer) List(
	ctx context.Context,
) ([]model.Club, error) {
	return []model.Club{q.f.club}, nil
}

func (q fakeClubsQueryer) Search(
	ctx context.Context, query string, limit int,
) ([]model.ClubRef, error) {
	return []model.ClubRef{
		{ID: q.f.club.ID, Name: q.f.club.Name},
	}, nil
}

func (q fakeClubsQueryer) NonOwners(
	ctx context.Context, equipmentID uuid.UUID, query string,
) ([]model.ClubRef, error) {
	panic("unexpected NonOwners query")
}

func (q fakeClubsQueryer) Create(
	ctx context.Context, name, email string, departmentID *uuid.UUID,
) (uuid.UUID, error) {
	panic("unexpected Create statement")
}

func (q fakeClubsQueryer) Delete(
	ctx context.Context, clubID uuid.UUID,
) error {
	panic("unexpected Delete statement")
}

func (q fakeClubsQueryer) Departments(
	ctx context.Context,
) ([]model.Department, error) {
	panic("unexpected Departments query")
}

func (q fakeClubsQueryer) Venues(
	ctx context.Context,
) ([]model.Venue, error) {
	panic("unexpected Venues query")
}

func (q fakeClubsQueryer) CreateVenue(
	ctx context.Context, name, details string, departmentID *uuid.UUID,
) (uuid.UUID, error) {
	panic("unexpected CreateVenue statement")
}

func (q fakeClubsQueryer) DeleteVenue(
	ctx context.Context, venueID uuid.UUID,
) error {
	panic("unexpected DeleteVenue statement")
}

// fakeMembers serves the roster operations.
type fakeMembers struct {
	roster            []model.RosterEntry
	membershipUpdates int
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
	panic("unexpected FindByName query")
}

func (q fakeMembersQueryer) Team(
	ctx context.Context, clubID uuid.UUID,
) ([]model.TeamMember, error) {
	return []model.TeamMember{{Name: "omid", Label: "Member"}}, nil
}

func (q fakeMembersQueryer) Roster(
	ctx context.Context, clubID uuid.UUID,
) ([]model.RosterEntry, error) {
	return q.f.roster, nil
}

func (q fakeMembersQueryer) UpdateMembership(
	ctx context.Context, memberID, clubID uuid.UUID,
	label string, active bool,
) error {
	q.f.membershipUpdates++
	return nil
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

func newClubsUseCase() (
	*clubsuc.UseCase, *fakerp.PoolSet, *fakeClubs, *fakeMembers,
) {
	ps := fakerp.NewPoolSet()
	c := &fakeClubs{club: model.Club{
		ID:     uuid.New(),
		Name:   "Nouvelle Vague Society",
		Active: true,
	}}
	m := &fakeMembers{roster: []model.RosterEntry{
		{MemberID: uuid.New(), Name: "omid", Label: "Member", Active: true},
	}}
	return clubsuc.New(ps, c, m), ps, c, m
}

func TestPublicPagesOpenToGuests(t *testing.T) {
	ctx := context.Background()
	clubs, ps, c, _ := newClubsUseCase()

	cs, err := clubs.List(ctx, model.RoleGuest)
	require.NoError(t, err)
	assert.Len(t, cs, 1)

	club, err := clubs.Details(ctx, model.RoleGuest, c.club.ID)
	require.NoError(t, err)
	require.NotNil(t, club)
	assert.Equal(t, c.club.Name, club.Name)

	team, err := clubs.Team(ctx, model.RoleGuest, c.club.ID)
	require.NoError(t, err)
	assert.Len(t, team, 1)

	refs, err := clubs.Search(ctx, model.RoleGuest, "vague", 10)
	require.NoError(t, err)
	assert.Len(t, refs, 1)

	// all four ran on the guest pool
	require.Len(t, ps.ByRole, 1)
	assert.Equal(t, 4, ps.ByRole["guest"].ConnCount)
}

func TestDetailsOfMissingClub(t *testing.T) {
	ctx := context.Background()
	clubs, _, _, _ := newClubsUseCase()
	club, err := clubs.Details(ctx, model.RoleGuest, uuid.New())
	assert.Nil(t, club)
	var cerrErr *cerr.Error
	require.True(t, errors.As(err, &cerrErr))
	assert.Equal(t, http.StatusNotFound, cerrErr.HTTPStatusCode)
}

func TestManagementRequiresClubAdmin(t *testing.T) {
	ctx := context.Background()
	clubs, ps, c, m := newClubsUseCase()

	for _, role := range []model.Role{
		model.RoleGuest,
		model.RoleClubMember,
		model.RoleContentManager,
		model.RoleEquipmentManager,
	} {
		_, err := clubs.Roster(ctx, role, c.club.ID)
		assertForbidden(t, err)
		err = clubs.UpdateMembership(
			ctx, role, uuid.New(), c.club.ID, "Member", true,
		)
		assertForbidden(t, err)
		err = clubs.Update(ctx, role, c.club)
		assertForbidden(t, err)
	}
	assert.Empty(t, ps.ByRole)
	assert.Zero(t, m.membershipUpdates)
	assert.Empty(t, c.updates)

	// both the clubAdmin and the administrator override pass the gate
	for _, role := range []model.Role{
		model.RoleClubAdmin, model.RoleDBAdministrator,
	} {
		roster, err := clubs.Roster(ctx, role, c.club.ID)
		require.NoError(t, err)
		assert.Len(t, roster, 1)
		err = clubs.UpdateMembership(
			ctx, role, uuid.New(), c.club.ID, "Treasurer", false,
		)
		require.NoError(t, err)
		err = clubs.Update(ctx, role, c.club)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, m.membershipUpdates)
	assert.Len(t, c.updates, 2)
	assert.Equal(t, 3, ps.ByRole["clubAdmin"].ConnCount)
	assert.Equal(t, 3, ps.ByRole["dbAdministrator"].ConnCount)
}

func assertForbidden(t *testing.T, err error) {
	t.Helper()
	var cerrErr *cerr.Error
	require.True(t, errors.As(err, &cerrErr), "got: %v", err)
	assert.Equal(t, http.StatusForbidden, cerrErr.HTTPStatusCode)
}
