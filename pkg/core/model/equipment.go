// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "github.com/google/uuid"

// Equipment is one shared inventory item. Private items are visible
// to their owning clubs only.
type Equipment struct {
	ID      uuid.UUID
	Name    string
	Private bool
}

// InventoryItem is one row of a club's inventory listing, with all
// co-owning clubs aggregated.
type InventoryItem struct {
	Equipment
	Owners   []string
	OwnerIDs []uuid.UUID
}

// ClubRef is a minimal club reference used by search and selection
// listings.
type ClubRef struct {
	ID   uuid.UUID
	Name string
}
