package repo

import (
	"context"

	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/google/uuid"
)

type ClubsConnQueryer interface {
	ClubsQueryer
}

type ClubsTxQueryer interface {
	ClubsQueryer
}

type ClubsQueryer interface {
	// Details fetches one club's profile, or a nil club if it does
	// not exist.
	Details(ctx context.Context, clubID uuid.UUID) (*model.Club, error)

	// Update rewrites a club's contact, status, and department fields.
	Update(ctx context.Context, c model.Club) error

	// List returns every club with its department name resolved.
	List(ctx context.Context) ([]model.Club, error)

	// Search returns up to limit clubs whose name contains q, or the
	// first clubs by name for an empty q.
	Search(ctx context.Context, q string, limit int) ([]model.ClubRef, error)

	// NonOwners returns clubs which do not co-own the given equipment
	// item, optionally filtered by a name substring.
	NonOwners(ctx context.Context, equipmentID uuid.UUID, q string) ([]model.ClubRef, error)

	// Create inserts a club row and returns its identifier.
	Create(ctx context.Context, name, email string, departmentID *uuid.UUID) (uuid.UUID, error)

	// Delete removes a club row.
	Delete(ctx context.Context, clubID uuid.UUID) error

	// Departments lists all departments.
	Departments(ctx context.Context) ([]model.Department, error)

	// Venues lists all venues with their department names resolved.
	Venues(ctx context.Context) ([]model.Venue, error)

	// CreateVenue inserts a venue row and returns its identifier.
	CreateVenue(ctx context.Context, name, details string, departmentID *uuid.UUID) (uuid.UUID, error)

	// DeleteVenue removes a venue row. It fails with an integrity
	// violation while screenings still reference the venue.
	DeleteVenue(ctx context.Context, venueID uuid.UUID) error
}

type Clubs interface {
	Conn(Conn) ClubsConnQueryer
	Tx(Tx) ClubsTxQueryer
}
