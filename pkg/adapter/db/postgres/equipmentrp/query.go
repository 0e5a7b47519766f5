// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package equipmentrp

import (
	"context"
	"fmt"
	"strings"

	"github.com/filmclubs/fcweb/pkg/adapter/db/postgres"
	"github.com/filmclubs/fcweb/pkg/core/cerr"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/google/uuid"
)

// Inventory lists the items owned by any of the given clubs. All
// co-owning clubs are aggregated per item, even those outside the
// requested set, so the caller can render shared ownership.
func Inventory[Q postgres.Queryer](ctx context.Context, q Q, clubIDs []uuid.UUID) ([]model.InventoryItem, error) {
	if len(clubIDs) == 0 {
		return nil, nil
	}
	gdb := q.GORM(ctx)
	var rows []struct {
		EID       uuid.UUID `gorm:"column:eid"`
		Name      string    `gorm:"column:name"`
		IsPrivate bool      `gorm:"column:is_private"`
		Owners    string    `gorm:"column:owners"`
		OwnerIDs  string    `gorm:"column:owner_ids"`
	}
	err := gdb.Raw(`SELECT e.eid, e.name, e.is_private,
	string_agg(fc.name, '|' ORDER BY fc.name) AS owners,
	string_agg(fc.fcid::text, '|' ORDER BY fc.name) AS owner_ids
FROM equipment e
JOIN owns o ON o.eid = e.eid
JOIN filmclub fc ON fc.fcid = o.fcid
WHERE e.eid IN (SELECT eid FROM owns WHERE fcid IN ?)
GROUP BY e.eid, e.name, e.is_private
ORDER BY e.name`, clubIDs).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	items := make([]model.InventoryItem, len(rows))
	for i, r := range rows {
		item := model.InventoryItem{
			Equipment: model.Equipment{
				ID:      r.EID,
				Name:    r.Name,
				Private: r.IsPrivate,
			},
			Owners: strings.Split(r.Owners, "|"),
		}
		for _, s := range strings.Split(r.OwnerIDs, "|") {
			id, err := uuid.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("parsing owner id %q: %w", s, err)
			}
			item.OwnerIDs = append(item.OwnerIDs, id)
		}
		items[i] = item
	}
	return items, nil
}

func Share[Q postgres.Queryer](ctx context.Context, q Q, equipmentID, clubID uuid.UUID) error {
	gdb := q.GORM(ctx)
	err := gdb.Exec(`INSERT INTO owns (fcid, eid) VALUES (?, ?)`,
		clubID, equipmentID).Error
	if err != nil {
		return fmt.Errorf("query: %w", postgres.Classify(err))
	}
	return nil
}

func Reserve[Q postgres.Queryer](ctx context.Context, q Q, equipmentID, screeningID uuid.UUID) error {
	gdb := q.GORM(ctx)
	err := gdb.Exec(`INSERT INTO uses (sid, eid) VALUES (?, ?)`,
		screeningID, equipmentID).Error
	if err != nil {
		return fmt.Errorf("query: %w", postgres.Classify(err))
	}
	return nil
}

// Add inserts the equipment row and its first ownership link. The
// caller must run it in a transaction; an unowned item must not be
// committable.
func Add(ctx context.Context, tx *postgres.Tx, name string, private bool, ownerClubID uuid.UUID) (uuid.UUID, error) {
	gdb := tx.GORM(ctx)
	var ids []uuid.UUID
	err := gdb.Raw(`INSERT INTO equipment (name, is_private)
VALUES (?, ?)
RETURNING eid`, name, private).Scan(&ids).Error
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting equipment: %w", postgres.Classify(err))
	}
	if len(ids) != 1 {
		return uuid.Nil, fmt.Errorf("expected one row, but got %d", len(ids))
	}
	eid := ids[0]
	err = gdb.Exec(`INSERT INTO owns (fcid, eid) VALUES (?, ?)`,
		ownerClubID, eid).Error
	if err != nil {
		return uuid.Nil, fmt.Errorf("linking owner: %w", postgres.Classify(err))
	}
	return eid, nil
}

// Delete removes the ownership links, the reservations, and then the
// item itself, all in the caller's transaction.
func Delete(ctx context.Context, tx *postgres.Tx, equipmentID uuid.UUID) error {
	gdb := tx.GORM(ctx)
	err := gdb.Exec(`DELETE FROM owns WHERE eid = ?`, equipmentID).Error
	if err != nil {
		return fmt.Errorf("unlinking owners: %w", postgres.Classify(err))
	}
	err = gdb.Exec(`DELETE FROM uses WHERE eid = ?`, equipmentID).Error
	if err != nil {
		return fmt.Errorf("removing reservations: %w", postgres.Classify(err))
	}
	res := gdb.Exec(`DELETE FROM equipment WHERE eid = ?`, equipmentID)
	if err := res.Error; err != nil {
		return fmt.Errorf("query: %w", postgres.Classify(err))
	}
	if res.RowsAffected == 0 {
		return cerr.NotFound(fmt.Errorf("no such equipment"))
	}
	return nil
}
