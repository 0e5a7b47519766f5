// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package equipmentuc_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/filmclubs/fcweb/internal/test/fakerp"
	"github.com/filmclubs/fcweb/pkg/core/cerr"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/filmclubs/fcweb/pkg/core/repo"
	"github.com/filmclubs/fcweb/pkg/core/usecase/equipmentuc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEquipment struct {
	err error

	inventoryCalls [][]uuid.UUID
	shared         int
	reserved       int
	added          int
	addedInTx      int
	deleted        int
	deletedInTx    int
}

func (f *fakeEquipment) Conn(repo.Conn) repo.EquipmentConnQueryer {
	return fakeEquipmentQueryer{f: f}
}

func (f *fakeEquipment) Tx(repo.Tx) repo.EquipmentTxQueryer {
	return fakeEquipmentQueryer{f: f, inTx: true}
}

type fakeEquipmentQueryer struct {
	f    *fakeEquipment
	inTx bool
}

func (q fakeEquipmentQueryer) Inventory(
	ctx context.Context, clubIDs []uuid.UUID,
) ([]model.InventoryItem, error) {
	q.f.inventoryCalls = append(q.f.inventoryCalls, clubIDs)
	if q.f.err != nil {
		return nil, q.f.err
	}
	return []model.InventoryItem{
		{Equipment: model.Equipment{Name: "16mm projector"}},
	}, nil
}

func (q fakeEquipmentQueryer) Share(
	ctx context.Context, equipmentID, clubID uuid.UUID,
) error {
	q.f.shared++
	return q.f.err
}

func (q fakeEquipmentQueryer) Reserve(
	ctx context.Context, equipmentID, screeningID uuid.UUID,
) error {
	q.f.reserved++
	return q.f.err
}

func (q fakeEquipmentQueryer) Add(
	ctx context.Context, name string, private bool,
	ownerClubID uuid.UUID,
) (uuid.UUID, error) {
	q.f.added++
	if q.inTx {
		q.f.addedInTx++
	}
	if q.f.err != nil {
		return uuid.Nil, q.f.err
	}
	return uuid.New(), nil
}

func (q fakeEquipmentQueryer) Delete(
	ctx context.Context, equipmentID uuid.UUID,
) error {
	q.f.deleted++
	if q.inTx {
		q.f.deletedInTx++
	}
	return q.f.err
}

// fakeClubs serves the NonOwners picker only.
type fakeClubs struct{}

func (fakeClubs) Conn(repo.Conn) repo.ClubsConnQueryer {
	return fakeClubsQueryer{}
}

func (fakeClubs) Tx(repo.Tx) repo.ClubsTxQueryer {
	return fakeClubsQueryer{}
}

type fakeClubsQueryer struct{}

func (fakeClubsQueryer) Details(
	ctx context.Context, clubID uuid.UUID,
) (*model.Club, error) {
	panic("unexpected Details query")
}

func (fakeClubsQueryer) Update(ctx context.Context, c model.Club) error {
	panic("unexpected Update statement")
}

func (fakeClubsQueryer) List(ctx context.Context) ([]model.Club, error) {
	panic("unexpected List query")
}

func (fakeClubsQueryer) Search(
	ctx context.Context, query string, limit int,
) ([]model.ClubRef, error) {
	panic("unexpected Search query")
}

func (fakeClubsQueryer) NonOwners(
	ctx context.Context, equipmentID uuid.UUID, query string,
) ([]model.ClubRef, error) {
	return []model.ClubRef{
		{ID: uuid.New(), Name: "Cinema Paradiso Club"},
	}, nil
}

func (fakeClubsQueryer) Create(
	ctx context.Context, name, email string, departmentID *uuid.UUID,
) (uuid.UUID, error) {
	panic("unexpected Create statement")
}

func (fakeClubsQueryer) Delete(
	ctx context.Context, clubID uuid.UUID,
) error {
	panic("unexpected Delete statement")
}

func (fakeClubsQueryer) Departments(
	ctx context.Context,
) ([]model.Department, error) {
	panic("unexpected Departments query")
}

func (fakeClubsQueryer) Venues(
	ctx context.Context,
) ([]model.Venue, error) {
	panic("unexpected Venues query")
}

func (fakeClubsQueryer) CreateVenue(
	ctx context.Context, name, details string, departmentID *uuid.UUID,
) (uuid.UUID, error) {
	panic("unexpected CreateVenue statement")
}

func (fakeClubsQueryer) DeleteVenue(
	ctx context.Context, venueID uuid.UUID,
) error {
	panic("unexpected DeleteVenue statement")
}

func newEquipmentUseCase() (
	*equipmentuc.UseCase, *fakerp.PoolSet, *fakeEquipment,
) {
	ps := fakerp.NewPoolSet()
	e := &fakeEquipment{}
	return equipmentuc.New(ps, e, fakeClubs{}), ps, e
}

func TestInventoryRequiresMembership(t *testing.T) {
	ctx := context.Background()
	equipment, ps, e := newEquipmentUseCase()

	_, err := equipment.Inventory(
		ctx, model.RoleGuest, []uuid.UUID{uuid.New()},
	)
	assertForbidden(t, err)
	assert.Empty(t, e.inventoryCalls)
	assert.Empty(t, ps.ByRole)

	clubIDs := []uuid.UUID{uuid.New(), uuid.New()}
	items, err := equipment.Inventory(ctx, model.RoleClubMember, clubIDs)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	require.Len(t, e.inventoryCalls, 1)
	assert.Equal(t, clubIDs, e.inventoryCalls[0])
	assert.Equal(t, 1, ps.ByRole["clubMember"].ConnCount)
}

func TestInventoryOpenToElevatedTiers(t *testing.T) {
	// the manager roles share the membership tier and must be able to
	// list the inventory they maintain, each over its own pool
	ctx := context.Background()
	equipment, ps, e := newEquipmentUseCase()

	clubIDs := []uuid.UUID{uuid.New()}
	for _, role := range []model.Role{
		model.RoleEquipmentManager,
		model.RoleContentManager,
		model.RoleClubAdmin,
		model.RoleDBAdministrator,
	} {
		items, err := equipment.Inventory(ctx, role, clubIDs)
		require.NoError(t, err, "role %q", role)
		assert.Len(t, items, 1, "role %q", role)
		assert.Equal(t, 1, ps.ByRole[string(role)].ConnCount, "role %q", role)
	}
	assert.Len(t, e.inventoryCalls, 4)
}

func TestWritesRequireEquipmentManager(t *testing.T) {
	ctx := context.Background()
	equipment, ps, e := newEquipmentUseCase()

	// contentManager shares the rank but not the capability
	for _, role := range []model.Role{
		model.RoleGuest,
		model.RoleClubMember,
		model.RoleContentManager,
	} {
		_, err := equipment.Add(ctx, role, "screen", false, uuid.New())
		assertForbidden(t, err)
		err = equipment.Share(ctx, role, uuid.New(), uuid.New())
		assertForbidden(t, err)
		err = equipment.Reserve(ctx, role, uuid.New(), uuid.New())
		assertForbidden(t, err)
		err = equipment.Delete(ctx, role, uuid.New())
		assertForbidden(t, err)
		_, err = equipment.NonOwners(ctx, role, uuid.New(), "")
		assertForbidden(t, err)
	}
	assert.Zero(t, e.added)
	assert.Zero(t, e.shared)
	assert.Zero(t, e.reserved)
	assert.Zero(t, e.deleted)
	assert.Empty(t, ps.ByRole)
}

func TestAddAndDeleteRunInTransactions(t *testing.T) {
	ctx := context.Background()
	equipment, _, e := newEquipmentUseCase()
	role := model.RoleEquipmentManager

	eid, err := equipment.Add(ctx, role, "projector", true, uuid.New())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, eid)
	assert.Equal(t, 1, e.addedInTx, "item insertion must use a Tx")

	require.NoError(t, equipment.Delete(ctx, role, eid))
	assert.Equal(t, 1, e.deletedInTx, "item removal must use a Tx")

	require.NoError(t, equipment.Share(ctx, role, eid, uuid.New()))
	require.NoError(t, equipment.Reserve(ctx, role, eid, uuid.New()))

	refs, err := equipment.NonOwners(ctx, role, eid, "paradiso")
	require.NoError(t, err)
	assert.Len(t, refs, 1)
}

func TestShareConflictPropagates(t *testing.T) {
	ctx := context.Background()
	ps := fakerp.NewPoolSet()
	e := &fakeEquipment{
		err: cerr.Conflict(errors.New("ownership link exists")),
	}
	equipment := equipmentuc.New(ps, e, fakeClubs{})

	err := equipment.Share(
		ctx, model.RoleEquipmentManager, uuid.New(), uuid.New(),
	)
	var cerrErr *cerr.Error
	require.True(t, errors.As(err, &cerrErr))
	assert.Equal(t, http.StatusConflict, cerrErr.HTTPStatusCode)
}

func assertForbidden(t *testing.T, err error) {
	t.Helper()
	var cerrErr *cerr.Error
	require.True(t, errors.As(err, &cerrErr), "got: %v", err)
	assert.Equal(t, http.StatusForbidden, cerrErr.HTTPStatusCode)
}
