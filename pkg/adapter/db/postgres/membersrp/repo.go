// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package membersrp realizes the members repository over PostgreSQL,
// covering principal lookup for the login flow, the public and
// management club rosters, and the global member directory.
package membersrp

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

func (members *Repo) Conn(c repo.Conn) repo.MembersConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) FindByName(ctx context.Context, name string) (*model.Member, []model.Membership, error) {
	return FindByName(ctx, cq.Conn, name)
}

func (cq connQueryer) Team(ctx context.Context, clubID uuid.UUID) ([]model.TeamMember, error) {
	return Team(ctx, cq.Conn, clubID)
}

func (cq connQueryer) Roster(ctx context.Context, clubID uuid.UUID) ([]model.RosterEntry, error) {
	return Roster(ctx, cq.Conn, clubID)
}

func (cq connQueryer) UpdateMembership(ctx context.Context, memberID, clubID uuid.UUID, label string, active bool) error {
	return UpdateMembership(ctx, cq.Conn, memberID, clubID, label, active)
}

func (cq connQueryer) Directory(ctx context.Context) ([]model.DirectoryEntry, error) {
	return Directory(ctx, cq.Conn)
}

func (cq connQueryer) Delete(ctx context.Context, memberID uuid.UUID) error {
	return Delete(ctx, cq.Conn, memberID)
}

type txQueryer struct {
	*postgres.Tx
}

func (members *Repo) Tx(tx repo.Tx) repo.MembersTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) FindByName(ctx context.Context, name string) (*model.Member, []model.Membership, error) {
	return FindByName(ctx, tq.Tx, name)
}

func (tq txQueryer) Team(ctx context.Context, clubID uuid.UUID) ([]model.TeamMember, error) {
	return Team(ctx, tq.Tx, clubID)
}

func (tq txQueryer) Roster(ctx context.Context, clubID uuid.UUID) ([]model.RosterEntry, error) {
	return Roster(ctx, tq.Tx, clubID)
}

func (tq txQueryer) UpdateMembership(ctx context.Context, memberID, clubID uuid.UUID, label string, active bool) error {
	return UpdateMembership(ctx, tq.Tx, memberID, clubID, label, active)
}

func (tq txQueryer) Directory(ctx context.Context) ([]model.DirectoryEntry, error) {
	return Directory(ctx, tq.Tx)
}

func (tq txQueryer) Delete(ctx context.Context, memberID uuid.UUID) error {
	return Delete(ctx, tq.Tx, memberID)
}
