// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package filmsrp

import (
	"context"
	"fmt"

	"github.com/filmclubs/fcweb/pkg/adapter/db/postgres"
	"github.com/filmclubs/fcweb/pkg/core/cerr"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/google/uuid"
)

func Search[Q postgres.Queryer](ctx context.Context, q Q, query string) ([]model.Film, error) {
	gdb := q.GORM(ctx)
	var rows []struct {
		FID         uuid.UUID `gorm:"column:fid"`
		Title       string    `gorm:"column:title"`
		ReleaseYear int       `gorm:"column:release_year"`
		TMDBLink    string    `gorm:"column:tmdb_link"`
	}
	err := gdb.Raw(`SELECT fid, title, release_year, tmdb_link
FROM film
WHERE title ILIKE '%' || ? || '%'
ORDER BY title`, query).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	films := make([]model.Film, len(rows))
	for i, r := range rows {
		films[i] = model.Film{
			ID:       r.FID,
			Title:    r.Title,
			Year:     r.ReleaseYear,
			TMDBLink: r.TMDBLink,
		}
	}
	return films, nil
}

func SearchDirectors[Q postgres.Queryer](ctx context.Context, q Q, query string, limit int) ([]model.Director, error) {
	gdb := q.GORM(ctx)
	var rows []struct {
		DRID     uuid.UUID `gorm:"column:drid"`
		Name     string    `gorm:"column:name"`
		TMDBLink string    `gorm:"column:tmdb_link"`
	}
	err := gdb.Raw(`SELECT drid, name, tmdb_link FROM director
WHERE name ILIKE '%' || ? || '%'
ORDER BY name
LIMIT ?`, query, limit).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	directors := make([]model.Director, len(rows))
	for i, r := range rows {
		directors[i] = model.Director{
			ID:       r.DRID,
			Name:     r.Name,
			TMDBLink: r.TMDBLink,
		}
	}
	return directors, nil
}

func SearchActors[Q postgres.Queryer](ctx context.Context, q Q, query string, limit int) ([]model.Actor, error) {
	gdb := q.GORM(ctx)
	var rows []struct {
		AID      uuid.UUID `gorm:"column:aid"`
		Name     string    `gorm:"column:name"`
		TMDBLink string    `gorm:"column:tmdb_link"`
	}
	err := gdb.Raw(`SELECT aid, name, tmdb_link FROM actor
WHERE name ILIKE '%' || ? || '%'
ORDER BY name
LIMIT ?`, query, limit).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	actors := make([]model.Actor, len(rows))
	for i, r := range rows {
		actors[i] = model.Actor{
			ID:       r.AID,
			Name:     r.Name,
			TMDBLink: r.TMDBLink,
		}
	}
	return actors, nil
}

func Languages[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Language, error) {
	gdb := q.GORM(ctx)
	var rows []struct {
		LID  uuid.UUID `gorm:"column:lid"`
		Name string    `gorm:"column:name"`
	}
	err := gdb.Raw(`SELECT lid, name FROM language
ORDER BY name`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	langs := make([]model.Language, len(rows))
	for i, r := range rows {
		langs[i] = model.Language{ID: r.LID, Name: r.Name}
	}
	return langs, nil
}

func AddActor[Q postgres.Queryer](ctx context.Context, q Q, name, tmdbLink string) (uuid.UUID, error) {
	return insertPerson(ctx, q, "actor", "aid", name, tmdbLink)
}

func AddDirector[Q postgres.Queryer](ctx context.Context, q Q, name, tmdbLink string) (uuid.UUID, error) {
	return insertPerson(ctx, q, "director", "drid", name, tmdbLink)
}

// insertPerson covers the actor and director tables, which share the
// same shape. The table and column names come from the two callers
// above, never from user input.
func insertPerson[Q postgres.Queryer](ctx context.Context, q Q, table, idColumn, name, tmdbLink string) (uuid.UUID, error) {
	gdb := q.GORM(ctx)
	var ids []uuid.UUID
	stmt := fmt.Sprintf(
		`INSERT INTO %s (name, tmdb_link) VALUES (?, ?) RETURNING %s`,
		table, idColumn,
	)
	err := gdb.Raw(stmt, name, tmdbLink).Scan(&ids).Error
	if err != nil {
		return uuid.Nil, fmt.Errorf("query: %w", postgres.Classify(err))
	}
	if len(ids) != 1 {
		return uuid.Nil, fmt.Errorf("expected one row, but got %d", len(ids))
	}
	return ids[0], nil
}

func UpdateLink[Q postgres.Queryer](ctx context.Context, q Q, filmID uuid.UUID, tmdbLink string) error {
	gdb := q.GORM(ctx)
	res := gdb.Exec(`UPDATE film SET tmdb_link = ? WHERE fid = ?`,
		tmdbLink, filmID)
	if err := res.Error; err != nil {
		return fmt.Errorf("query: %w", postgres.Classify(err))
	}
	if res.RowsAffected == 0 {
		return cerr.NotFound(fmt.Errorf("no such film"))
	}
	return nil
}

// AddFilm inserts the film row and all of its language, director, and
// cast link rows. The caller must run it in a transaction; a failure
// in any link insertion aborts the whole film.
func AddFilm(ctx context.Context, tx *postgres.Tx, f model.NewFilm) (uuid.UUID, error) {
	gdb := tx.GORM(ctx)
	var ids []uuid.UUID
	err := gdb.Raw(`INSERT INTO film (title, release_year, tmdb_link)
VALUES (?, ?, ?)
RETURNING fid`, f.Title, f.Year, f.TMDBLink).Scan(&ids).Error
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting film: %w", postgres.Classify(err))
	}
	if len(ids) != 1 {
		return uuid.Nil, fmt.Errorf("expected one row, but got %d", len(ids))
	}
	fid := ids[0]
	for _, lid := range f.LanguageIDs {
		err := gdb.Exec(`INSERT INTO spoken_in (fid, lid)
VALUES (?, ?)`, fid, lid).Error
		if err != nil {
			return uuid.Nil, fmt.Errorf("linking language: %w", postgres.Classify(err))
		}
	}
	for _, drid := range f.DirectorIDs {
		err := gdb.Exec(`INSERT INTO directed (fid, drid)
VALUES (?, ?)`, fid, drid).Error
		if err != nil {
			return uuid.Nil, fmt.Errorf("linking director: %w", postgres.Classify(err))
		}
	}
	for _, c := range f.Cast {
		err := gdb.Exec(`INSERT INTO played_in (fid, aid, character_name)
VALUES (?, ?, ?)`, fid, c.ActorID, c.CharacterName).Error
		if err != nil {
			return uuid.Nil, fmt.Errorf("linking actor: %w", postgres.Classify(err))
		}
	}
	return fid, nil
}
