// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package clubsrp

import (
	"context"
	"fmt"
	"time"

	"github.com/filmclubs/fcweb/pkg/adapter/db/postgres"
	"github.com/filmclubs/fcweb/pkg/core/cerr"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/google/uuid"
)

type gClub struct {
	FCID         uuid.UUID  `gorm:"column:fcid"`
	Name         string     `gorm:"column:name"`
	Email        string     `gorm:"column:email"`
	Instagram    string     `gorm:"column:instagram"`
	Facebook     string     `gorm:"column:facebook"`
	IsActive     bool       `gorm:"column:is_active"`
	FoundingDate time.Time  `gorm:"column:founding_date"`
	DID          *uuid.UUID `gorm:"column:did"`
	Department   string     `gorm:"column:department"`
}

func (gc *gClub) Model() model.Club {
	return model.Club{
		ID:           gc.FCID,
		Name:         gc.Name,
		Email:        gc.Email,
		Instagram:    gc.Instagram,
		Facebook:     gc.Facebook,
		Active:       gc.IsActive,
		FoundingDate: gc.FoundingDate,
		DepartmentID: gc.DID,
		Department:   gc.Department,
	}
}

const clubColumns = `fc.fcid, fc.name, fc.email, fc.instagram,
	fc.facebook, fc.is_active, fc.founding_date, fc.did,
	COALESCE(d.name, '') AS department`

func Details[Q postgres.Queryer](ctx context.Context, q Q, clubID uuid.UUID) (*model.Club, error) {
	gdb := q.GORM(ctx)
	var gc []gClub
	err := gdb.Raw(`SELECT `+clubColumns+`
FROM filmclub fc
LEFT JOIN department d ON d.did = fc.did
WHERE fc.fcid = ?`, clubID).Scan(&gc).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if len(gc) == 0 {
		return nil, nil
	}
	c := gc[0].Model()
	return &c, nil
}

func Update[Q postgres.Queryer](ctx context.Context, q Q, c model.Club) error {
	gdb := q.GORM(ctx)
	res := gdb.Exec(`UPDATE filmclub
SET name = ?, email = ?, instagram = ?, facebook = ?, is_active = ?,
	founding_date = ?, did = ?
WHERE fcid = ?`, c.Name, c.Email, c.Instagram, c.Facebook, c.Active,
		c.FoundingDate, c.DepartmentID, c.ID)
	if err := res.Error; err != nil {
		return fmt.Errorf("query: %w", postgres.Classify(err))
	}
	if res.RowsAffected == 0 {
		return cerr.NotFound(fmt.Errorf("no such club"))
	}
	return nil
}

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Club, error) {
	gdb := q.GORM(ctx)
	var gc []gClub
	err := gdb.Raw(`SELECT ` + clubColumns + `
FROM filmclub fc
LEFT JOIN department d ON d.did = fc.did
ORDER BY fc.name`).Scan(&gc).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	clubs := make([]model.Club, len(gc))
	for i := range gc {
		clubs[i] = gc[i].Model()
	}
	return clubs, nil
}

func Search[Q postgres.Queryer](ctx context.Context, q Q, query string, limit int) ([]model.ClubRef, error) {
	gdb := q.GORM(ctx)
	var rows []struct {
		FCID uuid.UUID `gorm:"column:fcid"`
		Name string    `gorm:"column:name"`
	}
	err := gdb.Raw(`SELECT fcid, name FROM filmclub
WHERE name ILIKE '%' || ? || '%'
ORDER BY name
LIMIT ?`, query, limit).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	refs := make([]model.ClubRef, len(rows))
	for i, r := range rows {
		refs[i] = model.ClubRef{ID: r.FCID, Name: r.Name}
	}
	return refs, nil
}

// NonOwners returns the clubs which do not co-own the given equipment
// item yet. The listing backs the share-equipment picker, so already
// owning clubs must not be offered again.
func NonOwners[Q postgres.Queryer](ctx context.Context, q Q, equipmentID uuid.UUID, query string) ([]model.ClubRef, error) {
	gdb := q.GORM(ctx)
	var rows []struct {
		FCID uuid.UUID `gorm:"column:fcid"`
		Name string    `gorm:"column:name"`
	}
	err := gdb.Raw(`SELECT fc.fcid, fc.name FROM filmclub fc
WHERE fc.name ILIKE '%' || ? || '%'
	AND NOT EXISTS (
		SELECT 1 FROM owns o
		WHERE o.fcid = fc.fcid AND o.eid = ?
	)
ORDER BY fc.name`, query, equipmentID).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	refs := make([]model.ClubRef, len(rows))
	for i, r := range rows {
		refs[i] = model.ClubRef{ID: r.FCID, Name: r.Name}
	}
	return refs, nil
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, name, email string, departmentID *uuid.UUID) (uuid.UUID, error) {
	gdb := q.GORM(ctx)
	var ids []uuid.UUID
	err := gdb.Raw(`INSERT INTO filmclub (name, email, did)
VALUES (?, ?, ?)
RETURNING fcid`, name, email, departmentID).Scan(&ids).Error
	if err != nil {
		return uuid.Nil, fmt.Errorf("query: %w", postgres.Classify(err))
	}
	if len(ids) != 1 {
		return uuid.Nil, fmt.Errorf("expected one row, but got %d", len(ids))
	}
	return ids[0], nil
}

func Delete[Q postgres.Queryer](ctx context.Context, q Q, clubID uuid.UUID) error {
	gdb := q.GORM(ctx)
	res := gdb.Exec(`DELETE FROM filmclub WHERE fcid = ?`, clubID)
	if err := res.Error; err != nil {
		return fmt.Errorf("query: %w", postgres.Classify(err))
	}
	if res.RowsAffected == 0 {
		return cerr.NotFound(fmt.Errorf("no such club"))
	}
	return nil
}

func Departments[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Department, error) {
	gdb := q.GORM(ctx)
	var rows []struct {
		DID  uuid.UUID `gorm:"column:did"`
		Name string    `gorm:"column:name"`
	}
	err := gdb.Raw(`SELECT did, name FROM department
ORDER BY name`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	deps := make([]model.Department, len(rows))
	for i, r := range rows {
		deps[i] = model.Department{ID: r.DID, Name: r.Name}
	}
	return deps, nil
}

func Venues[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Venue, error) {
	gdb := q.GORM(ctx)
	var rows []struct {
		VID        uuid.UUID  `gorm:"column:vid"`
		Name       string     `gorm:"column:name"`
		Details    string     `gorm:"column:details"`
		DID        *uuid.UUID `gorm:"column:did"`
		Department string     `gorm:"column:department"`
	}
	err := gdb.Raw(`SELECT v.vid, v.name, v.details, v.did,
	COALESCE(d.name, '') AS department
FROM venue v
LEFT JOIN department d ON d.did = v.did
ORDER BY v.name`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	venues := make([]model.Venue, len(rows))
	for i, r := range rows {
		venues[i] = model.Venue{
			ID:           r.VID,
			Name:         r.Name,
			Details:      r.Details,
			DepartmentID: r.DID,
			Department:   r.Department,
		}
	}
	return venues, nil
}

func CreateVenue[Q postgres.Queryer](ctx context.Context, q Q, name, details string, departmentID *uuid.UUID) (uuid.UUID, error) {
	gdb := q.GORM(ctx)
	var ids []uuid.UUID
	err := gdb.Raw(`INSERT INTO venue (name, details, did)
VALUES (?, ?, ?)
RETURNING vid`, name, details, departmentID).Scan(&ids).Error
	if err != nil {
		return uuid.Nil, fmt.Errorf("query: %w", postgres.Classify(err))
	}
	if len(ids) != 1 {
		return uuid.Nil, fmt.Errorf("expected one row, but got %d", len(ids))
	}
	return ids[0], nil
}

// DeleteVenue fails with a conflict while screenings still reference
// the venue, relying on the restrictive foreign key.
func DeleteVenue[Q postgres.Queryer](ctx context.Context, q Q, venueID uuid.UUID) error {
	gdb := q.GORM(ctx)
	res := gdb.Exec(`DELETE FROM venue WHERE vid = ?`, venueID)
	if err := res.Error; err != nil {
		return fmt.Errorf("query: %w", postgres.Classify(err))
	}
	if res.RowsAffected == 0 {
		return cerr.NotFound(fmt.Errorf("no such venue"))
	}
	return nil
}
