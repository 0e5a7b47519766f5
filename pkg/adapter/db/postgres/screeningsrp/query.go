// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package screeningsrp

import (
	"context"
	"fmt"
	"time"

	"github.com/filmclubs/fcweb/pkg/adapter/db/postgres"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/google/uuid"
)

// Feed returns the schedule feed restricted by the given filter. The
// free-text query matches film titles, venue names, club names, and
// director names; the date filter restricts to one calendar day in
// the venue's local interpretation of the stored timestamp.
func Feed[Q postgres.Queryer](ctx context.Context, q Q, f model.FeedFilter) ([]model.FeedEntry, error) {
	stmt := `SELECT s.sid, s.screened_at, f.title AS film_title,
	COALESCE(string_agg(
		DISTINCT dr.name, ', ' ORDER BY dr.name
	), '') AS directors,
	v.name AS venue_name, fc.name AS club_name
FROM screening s
JOIN shows sh ON sh.sid = s.sid
JOIN film f ON f.fid = sh.fid
JOIN venue v ON v.vid = s.vid
JOIN schedules sc ON sc.sid = s.sid
JOIN filmclub fc ON fc.fcid = sc.fcid
LEFT JOIN directed dd ON dd.fid = f.fid
LEFT JOIN director dr ON dr.drid = dd.drid
WHERE TRUE`
	var args []any
	if f.Query != "" {
		stmt += `
	AND (f.title ILIKE '%' || ? || '%'
		OR v.name ILIKE '%' || ? || '%'
		OR fc.name ILIKE '%' || ? || '%'
		OR EXISTS (
			SELECT 1 FROM directed d2
			JOIN director r2 ON r2.drid = d2.drid
			WHERE d2.fid = f.fid
				AND r2.name ILIKE '%' || ? || '%'
		))`
		args = append(args, f.Query, f.Query, f.Query, f.Query)
	}
	if f.Date != nil {
		stmt += `
	AND s.screened_at::date = ?::date`
		args = append(args, f.Date.Format("2006-01-02"))
	}
	if f.ClubID != nil {
		stmt += `
	AND sc.fcid = ?`
		args = append(args, *f.ClubID)
	}
	stmt += `
GROUP BY s.sid, s.screened_at, f.title, v.name, fc.name
ORDER BY s.screened_at`
	gdb := q.GORM(ctx)
	var rows []struct {
		SID        uuid.UUID `gorm:"column:sid"`
		ScreenedAt time.Time `gorm:"column:screened_at"`
		FilmTitle  string    `gorm:"column:film_title"`
		Directors  string    `gorm:"column:directors"`
		VenueName  string    `gorm:"column:venue_name"`
		ClubName   string    `gorm:"column:club_name"`
	}
	if err := gdb.Raw(stmt, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	feed := make([]model.FeedEntry, len(rows))
	for i, r := range rows {
		feed[i] = model.FeedEntry{
			ScreeningID: r.SID,
			At:          r.ScreenedAt,
			FilmTitle:   r.FilmTitle,
			Directors:   r.Directors,
			VenueName:   r.VenueName,
			ClubName:    r.ClubName,
		}
	}
	return feed, nil
}

func Details[Q postgres.Queryer](ctx context.Context, q Q, screeningID uuid.UUID) (*model.ScreeningDetails, error) {
	gdb := q.GORM(ctx)
	var core []struct {
		SID          uuid.UUID `gorm:"column:sid"`
		ScreenedAt   time.Time `gorm:"column:screened_at"`
		Venue        string    `gorm:"column:venue"`
		VenueDetails string    `gorm:"column:venue_details"`
		FilmTitle    string    `gorm:"column:film_title"`
		FilmYear     int       `gorm:"column:film_year"`
		FilmLink     string    `gorm:"column:film_link"`
		FID          uuid.UUID `gorm:"column:fid"`
		Club         string    `gorm:"column:club"`
		ClubEmail    string    `gorm:"column:club_email"`
	}
	err := gdb.Raw(`SELECT s.sid, s.screened_at,
	v.name AS venue, v.details AS venue_details,
	f.title AS film_title, f.release_year AS film_year,
	f.tmdb_link AS film_link, f.fid,
	fc.name AS club, fc.email AS club_email
FROM screening s
JOIN venue v ON v.vid = s.vid
JOIN shows sh ON sh.sid = s.sid
JOIN film f ON f.fid = sh.fid
JOIN schedules sc ON sc.sid = s.sid
JOIN filmclub fc ON fc.fcid = sc.fcid
WHERE s.sid = ?`, screeningID).Scan(&core).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if len(core) == 0 {
		return nil, nil
	}
	c := core[0]
	d := &model.ScreeningDetails{
		ScreeningID:  c.SID,
		At:           c.ScreenedAt,
		Venue:        c.Venue,
		VenueDetails: c.VenueDetails,
		FilmTitle:    c.FilmTitle,
		FilmYear:     c.FilmYear,
		FilmLink:     c.FilmLink,
		Club:         c.Club,
		ClubEmail:    c.ClubEmail,
	}
	var directors []struct {
		Name     string `gorm:"column:name"`
		TMDBLink string `gorm:"column:tmdb_link"`
	}
	err = gdb.Raw(`SELECT dr.name, dr.tmdb_link
FROM directed dd
JOIN director dr ON dr.drid = dd.drid
WHERE dd.fid = ?
ORDER BY dr.name`, c.FID).Scan(&directors).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	for _, r := range directors {
		d.Directors = append(d.Directors, model.CreditedPerson{
			Name:     r.Name,
			TMDBLink: r.TMDBLink,
		})
	}
	var cast []struct {
		Name          string `gorm:"column:name"`
		TMDBLink      string `gorm:"column:tmdb_link"`
		CharacterName string `gorm:"column:character_name"`
	}
	err = gdb.Raw(`SELECT a.name, a.tmdb_link, pi.character_name
FROM played_in pi
JOIN actor a ON a.aid = pi.aid
WHERE pi.fid = ?
ORDER BY a.name`, c.FID).Scan(&cast).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	for _, r := range cast {
		d.Cast = append(d.Cast, model.CastMember{
			Name:          r.Name,
			TMDBLink:      r.TMDBLink,
			CharacterName: r.CharacterName,
		})
	}
	var posts []struct {
		PID      uuid.UUID `gorm:"column:pid"`
		Platform string    `gorm:"column:platform"`
		Link     string    `gorm:"column:link"`
	}
	err = gdb.Raw(`SELECT pid, platform, link FROM post
WHERE sid = ?
ORDER BY platform, link`, screeningID).Scan(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	for _, r := range posts {
		d.Posts = append(d.Posts, model.Post{
			ID:          r.PID,
			ScreeningID: screeningID,
			Platform:    r.Platform,
			Link:        r.Link,
		})
	}
	return d, nil
}

func AddPost[Q postgres.Queryer](ctx context.Context, q Q, screeningID uuid.UUID, platform, link string) (uuid.UUID, error) {
	gdb := q.GORM(ctx)
	var ids []uuid.UUID
	err := gdb.Raw(`INSERT INTO post (sid, platform, link)
VALUES (?, ?, ?)
RETURNING pid`, screeningID, platform, link).Scan(&ids).Error
	if err != nil {
		return uuid.Nil, fmt.Errorf("query: %w", postgres.Classify(err))
	}
	if len(ids) != 1 {
		return uuid.Nil, fmt.Errorf("expected one row, but got %d", len(ids))
	}
	return ids[0], nil
}

// AddScreening inserts the screening row and its film and club link
// rows. The caller must run it in a transaction.
func AddScreening(ctx context.Context, tx *postgres.Tx, s model.NewScreening) (uuid.UUID, error) {
	gdb := tx.GORM(ctx)
	var ids []uuid.UUID
	err := gdb.Raw(`INSERT INTO screening (screened_at, vid)
VALUES (?, ?)
RETURNING sid`, s.At, s.VenueID).Scan(&ids).Error
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting screening: %w", postgres.Classify(err))
	}
	if len(ids) != 1 {
		return uuid.Nil, fmt.Errorf("expected one row, but got %d", len(ids))
	}
	sid := ids[0]
	err = gdb.Exec(`INSERT INTO shows (sid, fid) VALUES (?, ?)`,
		sid, s.FilmID).Error
	if err != nil {
		return uuid.Nil, fmt.Errorf("linking film: %w", postgres.Classify(err))
	}
	err = gdb.Exec(`INSERT INTO schedules (fcid, sid) VALUES (?, ?)`,
		s.ClubID, sid).Error
	if err != nil {
		return uuid.Nil, fmt.Errorf("linking club: %w", postgres.Classify(err))
	}
	return sid, nil
}
