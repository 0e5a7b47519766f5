package repo

import (
	"context"

	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/google/uuid"
)

type EquipmentConnQueryer interface {
	EquipmentQueryer
}

type EquipmentTxQueryer interface {
	EquipmentQueryer

	// Add inserts the equipment row and its first ownership link.
	Add(ctx context.Context, name string, private bool, ownerClubID uuid.UUID) (uuid.UUID, error)

	// Delete removes the ownership links, the reservations, and then
	// the item itself.
	Delete(ctx context.Context, equipmentID uuid.UUID) error
}

type EquipmentQueryer interface {
	// Inventory lists the items owned by any of the given clubs, with
	// all co-owning clubs aggregated per item.
	Inventory(ctx context.Context, clubIDs []uuid.UUID) ([]model.InventoryItem, error)

	// Share adds a co-owning club to an item. A duplicate ownership
	// link surfaces as an integrity violation.
	Share(ctx context.Context, equipmentID, clubID uuid.UUID) error

	// Reserve books an item for a screening.
	Reserve(ctx context.Context, equipmentID, screeningID uuid.UUID) error
}

type Equipment interface {
	Conn(Conn) EquipmentConnQueryer
	Tx(Tx) EquipmentTxQueryer
}
