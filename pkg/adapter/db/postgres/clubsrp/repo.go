// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package clubsrp realizes the clubs repository over PostgreSQL. It
// also covers the departments and venues reference data since those
// rows only exist to be attached to clubs and screenings.
package clubsrp

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

func (clubs *Repo) Conn(c repo.Conn) repo.ClubsConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Details(ctx context.Context, clubID uuid.UUID) (*model.Club, error) {
	return Details(ctx, cq.Conn, clubID)
}

func (cq connQueryer) Update(ctx context.Context, c model.Club) error {
	return Update(ctx, cq.Conn, c)
}

func (cq connQueryer) List(ctx context.Context) ([]model.Club, error) {
	return List(ctx, cq.Conn)
}

func (cq connQueryer) Search(ctx context.Context, q string, limit int) ([]model.ClubRef, error) {
	return Search(ctx, cq.Conn, q, limit)
}

func (cq connQueryer) NonOwners(ctx context.Context, equipmentID uuid.UUID, q string) ([]model.ClubRef, error) {
	return NonOwners(ctx, cq.Conn, equipmentID, q)
}

func (cq connQueryer) Create(ctx context.Context, name, email string, departmentID *uuid.UUID) (uuid.UUID, error) {
	return Create(ctx, cq.Conn, name, email, departmentID)
}

func (cq connQueryer) Delete(ctx context.Context, clubID uuid.UUID) error {
	return Delete(ctx, cq.Conn, clubID)
}

func (cq connQueryer) Departments(ctx context.Context) ([]model.Department, error) {
	return Departments(ctx, cq.Conn)
}

func (cq connQueryer) Venues(ctx context.Context) ([]model.Venue, error) {
	return Venues(ctx, cq.Conn)
}

func (cq connQueryer) CreateVenue(ctx context.Context, name, details string, departmentID *uuid.UUID) (uuid.UUID, error) {
	return CreateVenue(ctx, cq.Conn, name, details, departmentID)
}

func (cq connQueryer) DeleteVenue(ctx context.Context, venueID uuid.UUID) error {
	return DeleteVenue(ctx, cq.Conn, venueID)
}

type txQueryer struct {
	*postgres.Tx
}

func (clubs *Repo) Tx(tx repo.Tx) repo.ClubsTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Details(ctx context.Context, clubID uuid.UUID) (*model.Club, error) {
	return Details(ctx, tq.Tx, clubID)
}

func (tq txQueryer) Update(ctx context.Context, c model.Club) error {
	return Update(ctx, tq.Tx, c)
}

func (tq txQueryer) List(ctx context.Context) ([]model.Club, error) {
	return List(ctx, tq.Tx)
}

func (tq txQueryer) Search(ctx context.Context, q string, limit int) ([]model.ClubRef, error) {
	return Search(ctx, tq.Tx, q, limit)
}

func (tq txQueryer) NonOwners(ctx context.Context, equipmentID uuid.UUID, q string) ([]model.ClubRef, error) {
	return NonOwners(ctx, tq.Tx, equipmentID, q)
}

func (tq txQueryer) Create(ctx context.Context, name, email string, departmentID *uuid.UUID) (uuid.UUID, error) {
	return Create(ctx, tq.Tx, name, email, departmentID)
}

func (tq txQueryer) Delete(ctx context.Context, clubID uuid.UUID) error {
	return Delete(ctx, tq.Tx, clubID)
}

func (tq txQueryer) Departments(ctx context.Context) ([]model.Department, error) {
	return Departments(ctx, tq.Tx)
}

func (tq txQueryer) Venues(ctx context.Context) ([]model.Venue, error) {
	return Venues(ctx, tq.Tx)
}

func (tq txQueryer) CreateVenue(ctx context.Context, name, details string, departmentID *uuid.UUID) (uuid.UUID, error) {
	return CreateVenue(ctx, tq.Tx, name, details, departmentID)
}

func (tq txQueryer) DeleteVenue(ctx context.Context, venueID uuid.UUID) error {
	return DeleteVenue(ctx, tq.Tx, venueID)
}
