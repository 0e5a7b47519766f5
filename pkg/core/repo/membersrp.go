package repo

import (
	"context"

	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/google/uuid"
)

type MembersConnQueryer interface {
	MembersQueryer
}

type MembersTxQueryer interface {
	MembersQueryer
}

type MembersQueryer interface {
	// FindByName locates a principal by its unique name, returning the
	// member row and its active memberships. A missing principal is
	// reported as a nil member with a nil error; classification of
	// that miss belongs to the use cases layer.
	FindByName(ctx context.Context, name string) (*model.Member, []model.Membership, error)

	// Team lists the active members of a club as shown on its public
	// roster page.
	Team(ctx context.Context, clubID uuid.UUID) ([]model.TeamMember, error)

	// Roster lists all members of a club, active or not, with the
	// identifiers needed for management.
	Roster(ctx context.Context, clubID uuid.UUID) ([]model.RosterEntry, error)

	// UpdateMembership rewrites the organizational label and active
	// flag of one membership row.
	UpdateMembership(ctx context.Context, memberID, clubID uuid.UUID, label string, active bool) error

	// Directory lists every member with its club affiliations
	// flattened, for the global administrative directory.
	Directory(ctx context.Context) ([]model.DirectoryEntry, error)

	// Delete removes a member row. Membership rows are cleaned up by
	// the schema's cascading constraints.
	Delete(ctx context.Context, memberID uuid.UUID) error
}

type Members interface {
	Conn(Conn) MembersConnQueryer
	Tx(Tx) MembersTxQueryer
}
