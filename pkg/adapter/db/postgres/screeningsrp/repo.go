// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package screeningsrp realizes the screenings repository over
// PostgreSQL: the public schedule feed, the per-screening details
// page, and the scheduling writes.
package screeningsrp

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

func (screenings *Repo) Conn(c repo.Conn) repo.ScreeningsConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Feed(ctx context.Context, f model.FeedFilter) ([]model.FeedEntry, error) {
	return Feed(ctx, cq.Conn, f)
}

func (cq connQueryer) Details(ctx context.Context, screeningID uuid.UUID) (*model.ScreeningDetails, error) {
	return Details(ctx, cq.Conn, screeningID)
}

func (cq connQueryer) AddPost(ctx context.Context, screeningID uuid.UUID, platform, link string) (uuid.UUID, error) {
	return AddPost(ctx, cq.Conn, screeningID, platform, link)
}

type txQueryer struct {
	*postgres.Tx
}

func (screenings *Repo) Tx(tx repo.Tx) repo.ScreeningsTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Feed(ctx context.Context, f model.FeedFilter) ([]model.FeedEntry, error) {
	return Feed(ctx, tq.Tx, f)
}

func (tq txQueryer) Details(ctx context.Context, screeningID uuid.UUID) (*model.ScreeningDetails, error) {
	return Details(ctx, tq.Tx, screeningID)
}

func (tq txQueryer) AddPost(ctx context.Context, screeningID uuid.UUID, platform, link string) (uuid.UUID, error) {
	return AddPost(ctx, tq.Tx, screeningID, platform, link)
}

func (tq txQueryer) AddScreening(ctx context.Context, s model.NewScreening) (uuid.UUID, error) {
	return AddScreening(ctx, tq.Tx, s)
}
