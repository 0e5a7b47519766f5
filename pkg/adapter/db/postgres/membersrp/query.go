// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package membersrp

import (
	"context"
	"fmt"
	"strings"

	"github.com/filmclubs/fcweb/pkg/adapter/db/postgres"
	"github.com/filmclubs/fcweb/pkg/core/cerr"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/google/uuid"
)

type gMember struct {
	MID         uuid.UUID `gorm:"column:mid"`
	Name        string    `gorm:"column:name"`
	Phone       string    `gorm:"column:phone"`
	Instagram   string    `gorm:"column:instagram"`
	Facebook    string    `gorm:"column:facebook"`
	IsSuperuser bool      `gorm:"column:is_superuser"`
}

func (gm *gMember) Model() *model.Member {
	return &model.Member{
		ID:        gm.MID,
		Name:      gm.Name,
		Phone:     gm.Phone,
		Instagram: gm.Instagram,
		Facebook:  gm.Facebook,
		Superuser: gm.IsSuperuser,
	}
}

type gMembership struct {
	FCID      uuid.UUID `gorm:"column:fcid"`
	ClubName  string    `gorm:"column:club_name"`
	RoleLabel string    `gorm:"column:role_label"`
	IsActive  bool      `gorm:"column:is_active"`
}

// FindByName locates a principal by its unique name together with its
// active memberships. A missing principal is reported as a nil member
// with a nil error, so the caller can classify the miss itself.
func FindByName[Q postgres.Queryer](ctx context.Context, q Q, name string) (*model.Member, []model.Membership, error) {
	gdb := q.GORM(ctx)
	var gm []gMember
	err := gdb.Raw(`SELECT mid, name, phone, instagram, facebook,
	is_superuser FROM member WHERE name = ?`, name).Scan(&gm).Error
	if err != nil {
		return nil, nil, fmt.Errorf("query: %w", err)
	}
	if len(gm) == 0 {
		return nil, nil, nil
	}
	var gbt []gMembership
	err = gdb.Raw(`SELECT bt.fcid, fc.name AS club_name,
	bt.role_label, bt.is_active
FROM belongs_to bt
JOIN filmclub fc ON fc.fcid = bt.fcid
WHERE bt.mid = ? AND bt.is_active
ORDER BY fc.name`, gm[0].MID).Scan(&gbt).Error
	if err != nil {
		return nil, nil, fmt.Errorf("query: %w", err)
	}
	ms := make([]model.Membership, len(gbt))
	for i, g := range gbt {
		ms[i] = model.Membership{
			ClubID:   g.FCID,
			ClubName: g.ClubName,
			Label:    g.RoleLabel,
			Active:   g.IsActive,
		}
	}
	return gm[0].Model(), ms, nil
}

func Team[Q postgres.Queryer](ctx context.Context, q Q, clubID uuid.UUID) ([]model.TeamMember, error) {
	gdb := q.GORM(ctx)
	var rows []struct {
		Name      string `gorm:"column:name"`
		Phone     string `gorm:"column:phone"`
		Instagram string `gorm:"column:instagram"`
		RoleLabel string `gorm:"column:role_label"`
	}
	err := gdb.Raw(`SELECT m.name, m.phone, m.instagram, bt.role_label
FROM belongs_to bt
JOIN member m ON m.mid = bt.mid
WHERE bt.fcid = ? AND bt.is_active
ORDER BY bt.role_label, m.name`, clubID).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	team := make([]model.TeamMember, len(rows))
	for i, r := range rows {
		team[i] = model.TeamMember{
			Name:      r.Name,
			Phone:     r.Phone,
			Instagram: r.Instagram,
			Label:     r.RoleLabel,
		}
	}
	return team, nil
}

func Roster[Q postgres.Queryer](ctx context.Context, q Q, clubID uuid.UUID) ([]model.RosterEntry, error) {
	gdb := q.GORM(ctx)
	var rows []struct {
		MID       uuid.UUID `gorm:"column:mid"`
		Name      string    `gorm:"column:name"`
		RoleLabel string    `gorm:"column:role_label"`
		IsActive  bool      `gorm:"column:is_active"`
	}
	err := gdb.Raw(`SELECT m.mid, m.name, bt.role_label, bt.is_active
FROM belongs_to bt
JOIN member m ON m.mid = bt.mid
WHERE bt.fcid = ?
ORDER BY m.name`, clubID).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	roster := make([]model.RosterEntry, len(rows))
	for i, r := range rows {
		roster[i] = model.RosterEntry{
			MemberID: r.MID,
			Name:     r.Name,
			Label:    r.RoleLabel,
			Active:   r.IsActive,
		}
	}
	return roster, nil
}

func UpdateMembership[Q postgres.Queryer](ctx context.Context, q Q, memberID, clubID uuid.UUID, label string, active bool) error {
	gdb := q.GORM(ctx)
	res := gdb.Exec(`UPDATE belongs_to SET role_label = ?, is_active = ?
WHERE mid = ? AND fcid = ?`, label, active, memberID, clubID)
	if err := res.Error; err != nil {
		return fmt.Errorf("query: %w", postgres.Classify(err))
	}
	if res.RowsAffected == 0 {
		return cerr.NotFound(fmt.Errorf("no such membership"))
	}
	return nil
}

// Directory lists every member with its department and its active
// club affiliations flattened into "Club (Label)" strings. The
// affiliations are aggregated with a separator which cannot appear
// in club names or role labels.
func Directory[Q postgres.Queryer](ctx context.Context, q Q) ([]model.DirectoryEntry, error) {
	gdb := q.GORM(ctx)
	var rows []struct {
		gMember
		Department string `gorm:"column:department"`
		Clubs      string `gorm:"column:clubs"`
	}
	err := gdb.Raw(`SELECT m.mid, m.name, m.phone, m.instagram,
	m.facebook, m.is_superuser,
	COALESCE(d.name, '') AS department,
	COALESCE(string_agg(
		fc.name || ' (' || bt.role_label || ')', '|'
		ORDER BY fc.name
	), '') AS clubs
FROM member m
LEFT JOIN department d ON d.did = m.did
LEFT JOIN belongs_to bt ON bt.mid = m.mid AND bt.is_active
LEFT JOIN filmclub fc ON fc.fcid = bt.fcid
GROUP BY m.mid, m.name, m.phone, m.instagram, m.facebook,
	m.is_superuser, d.name
ORDER BY m.name`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	dir := make([]model.DirectoryEntry, len(rows))
	for i, r := range rows {
		e := model.DirectoryEntry{
			Member:     *r.gMember.Model(),
			Department: r.Department,
		}
		if r.Clubs != "" {
			e.Clubs = strings.Split(r.Clubs, "|")
		}
		dir[i] = e
	}
	return dir, nil
}

func Delete[Q postgres.Queryer](ctx context.Context, q Q, memberID uuid.UUID) error {
	gdb := q.GORM(ctx)
	res := gdb.Exec(`DELETE FROM member WHERE mid = ?`, memberID)
	if err := res.Error; err != nil {
		return fmt.Errorf("query: %w", postgres.Classify(err))
	}
	if res.RowsAffected == 0 {
		return cerr.NotFound(fmt.Errorf("no such member"))
	}
	return nil
}
