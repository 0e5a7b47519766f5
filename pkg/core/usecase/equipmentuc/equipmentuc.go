// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package equipmentuc contains the equipment UseCase: the per-club
// inventory and the ownership and reservation management. Inventory
// reads demand at least the club membership tier; all writes demand
// the equipmentManager role.
package equipmentuc

import (
	"context"

	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/filmclubs/fcweb/pkg/core/repo"
	"github.com/google/uuid"
)

// UseCase represents the equipment use case. It holds the credential
// pool set, the equipment repository, and the clubs repository for
// the share-equipment club picker.
type UseCase struct {
	pools       repo.PoolSet
	equipmentrp repo.Equipment
	clubsrp     repo.Clubs
}

// New instantiates an equipment use case.
func New(ps repo.PoolSet, e repo.Equipment, c repo.Clubs) *UseCase {
	return &UseCase{pools: ps, equipmentrp: e, clubsrp: c}
}

// Inventory lists the items owned by any of the given clubs, with all
// co-owning clubs aggregated per item. The read is open to every role
// on at least the clubMember tier: the managers who maintain the
// inventory must be able to list it, so the gate is a tier check, not
// an exact-match one.
func (equipment *UseCase) Inventory(ctx context.Context, role model.Role, clubIDs []uuid.UUID) (items []model.InventoryItem, err error) {
	if err := model.RequireTier(ctx, role, model.RoleClubMember); err != nil {
		return nil, err
	}
	pool := equipment.pools.Get(string(role))
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		items, err = equipment.equipmentrp.Conn(c).Inventory(ctx, clubIDs)
		return err
	})
	if err != nil {
		items = nil
	}
	return
}

// NonOwners lists the clubs which may still be offered co-ownership
// of an item, optionally filtered by a name substring.
func (equipment *UseCase) NonOwners(ctx context.Context, role model.Role, equipmentID uuid.UUID, query string) (refs []model.ClubRef, err error) {
	if err := model.Require(ctx, role, model.RoleEquipmentManager); err != nil {
		return nil, err
	}
	pool := equipment.pools.Get(string(role))
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		refs, err = equipment.clubsrp.Conn(c).NonOwners(
			ctx, equipmentID, query,
		)
		return err
	})
	if err != nil {
		refs = nil
	}
	return
}

// Add registers an item together with its first owning club, in one
// transaction, so an unowned item can never be committed.
func (equipment *UseCase) Add(ctx context.Context, role model.Role, name string, private bool, ownerClubID uuid.UUID) (eid uuid.UUID, err error) {
	if err := model.Require(ctx, role, model.RoleEquipmentManager); err != nil {
		return uuid.Nil, err
	}
	pool := equipment.pools.Get(string(role))
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			eid, err = equipment.equipmentrp.Tx(tx).Add(
				ctx, name, private, ownerClubID,
			)
			return err
		})
	})
	if err != nil {
		eid = uuid.Nil
	}
	return
}

// Share adds a co-owning club to an item. Sharing with a club which
// already owns the item surfaces as a conflict.
func (equipment *UseCase) Share(ctx context.Context, role model.Role, equipmentID, clubID uuid.UUID) error {
	if err := model.Require(ctx, role, model.RoleEquipmentManager); err != nil {
		return err
	}
	pool := equipment.pools.Get(string(role))
	return pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return equipment.equipmentrp.Conn(c).Share(ctx, equipmentID, clubID)
	})
}

// Reserve books an item for a screening.
func (equipment *UseCase) Reserve(ctx context.Context, role model.Role, equipmentID, screeningID uuid.UUID) error {
	if err := model.Require(ctx, role, model.RoleEquipmentManager); err != nil {
		return err
	}
	pool := equipment.pools.Get(string(role))
	return pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return equipment.equipmentrp.Conn(c).Reserve(
			ctx, equipmentID, screeningID,
		)
	})
}

// Delete removes an item with its ownership links and reservations in
// one transaction.
func (equipment *UseCase) Delete(ctx context.Context, role model.Role, equipmentID uuid.UUID) error {
	if err := model.Require(ctx, role, model.RoleEquipmentManager); err != nil {
		return err
	}
	pool := equipment.pools.Get(string(role))
	return pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			return equipment.equipmentrp.Tx(tx).Delete(ctx, equipmentID)
		})
	})
}
