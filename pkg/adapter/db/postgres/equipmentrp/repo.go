// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package equipmentrp realizes the equipment repository over
// PostgreSQL: the per-club inventory, ownership sharing, screening
// reservations, and the transactional add and delete operations.
package equipmentrp

import (
	"context"

	"github.com/filmclubs/fcweb/pkg/adapter/db/postgres"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/filmclubs/fcweb/pkg/core/repo"
	"github.com/google/uuid"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

func (equipment *Repo) Conn(c repo.Conn) repo.EquipmentConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Inventory(ctx context.Context, clubIDs []uuid.UUID) ([]model.InventoryItem, error) {
	return Inventory(ctx, cq.Conn, clubIDs)
}

func (cq connQueryer) Share(ctx context.Context, equipmentID, clubID uuid.UUID) error {
	return Share(ctx, cq.Conn, equipmentID, clubID)
}

func (cq connQueryer) Reserve(ctx context.Context, equipmentID, screeningID uuid.UUID) error {
	return Reserve(ctx, cq.Conn, equipmentID, screeningID)
}

type txQueryer struct {
	*postgres.Tx
}

func (equipment *Repo) Tx(tx repo.Tx) repo.EquipmentTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Inventory(ctx context.Context, clubIDs []uuid.UUID) ([]model.InventoryItem, error) {
	return Inventory(ctx, tq.Tx, clubIDs)
}

func (tq txQueryer) Share(ctx context.Context, equipmentID, clubID uuid.UUID) error {
	return Share(ctx, tq.Tx, equipmentID, clubID)
}

func (tq txQueryer) Reserve(ctx context.Context, equipmentID, screeningID uuid.UUID) error {
	return Reserve(ctx, tq.Tx, equipmentID, screeningID)
}

func (tq txQueryer) Add(ctx context.Context, name string, private bool, ownerClubID uuid.UUID) (uuid.UUID, error) {
	return Add(ctx, tq.Tx, name, private, ownerClubID)
}

func (tq txQueryer) Delete(ctx context.Context, equipmentID uuid.UUID) error {
	return Delete(ctx, tq.Tx, equipmentID)
}
