// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package filmsrp realizes the films repository over PostgreSQL,
// together with the directors, actors, and languages reference data.
// Adding a film inserts its link rows too and is only offered on a
// transaction, keeping a film with dangling links uncommittable.
package filmsrp

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

func (films *Repo) Conn(c repo.Conn) repo.FilmsConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Search(ctx context.Context, q string) ([]model.Film, error) {
	return Search(ctx, cq.Conn, q)
}

func (cq connQueryer) SearchDirectors(ctx context.Context, q string, limit int) ([]model.Director, error) {
	return SearchDirectors(ctx, cq.Conn, q, limit)
}

func (cq connQueryer) SearchActors(ctx context.Context, q string, limit int) ([]model.Actor, error) {
	return SearchActors(ctx, cq.Conn, q, limit)
}

func (cq connQueryer) Languages(ctx context.Context) ([]model.Language, error) {
	return Languages(ctx, cq.Conn)
}

func (cq connQueryer) AddActor(ctx context.Context, name, tmdbLink string) (uuid.UUID, error) {
	return AddActor(ctx, cq.Conn, name, tmdbLink)
}

func (cq connQueryer) AddDirector(ctx context.Context, name, tmdbLink string) (uuid.UUID, error) {
	return AddDirector(ctx, cq.Conn, name, tmdbLink)
}

func (cq connQueryer) UpdateLink(ctx context.Context, filmID uuid.UUID, tmdbLink string) error {
	return UpdateLink(ctx, cq.Conn, filmID, tmdbLink)
}

type txQueryer struct {
	*postgres.Tx
}

func (films *Repo) Tx(tx repo.Tx) repo.FilmsTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Search(ctx context.Context, q string) ([]model.Film, error) {
	return Search(ctx, tq.Tx, q)
}

func (tq txQueryer) SearchDirectors(ctx context.Context, q string, limit int) ([]model.Director, error) {
	return SearchDirectors(ctx, tq.Tx, q, limit)
}

func (tq txQueryer) SearchActors(ctx context.Context, q string, limit int) ([]model.Actor, error) {
	return SearchActors(ctx, tq.Tx, q, limit)
}

func (tq txQueryer) Languages(ctx context.Context) ([]model.Language, error) {
	return Languages(ctx, tq.Tx)
}

func (tq txQueryer) AddActor(ctx context.Context, name, tmdbLink string) (uuid.UUID, error) {
	return AddActor(ctx, tq.Tx, name, tmdbLink)
}

func (tq txQueryer) AddDirector(ctx context.Context, name, tmdbLink string) (uuid.UUID, error) {
	return AddDirector(ctx, tq.Tx, name, tmdbLink)
}

func (tq txQueryer) UpdateLink(ctx context.Context, filmID uuid.UUID, tmdbLink string) error {
	return UpdateLink(ctx, tq.Tx, filmID, tmdbLink)
}

func (tq txQueryer) AddFilm(ctx context.Context, f model.NewFilm) (uuid.UUID, error) {
	return AddFilm(ctx, tq.Tx, f)
}
