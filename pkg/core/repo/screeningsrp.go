package repo

import (
	"context"

	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/google/uuid"
)

type ScreeningsConnQueryer interface {
	ScreeningsQueryer
}

type ScreeningsTxQueryer interface {
	ScreeningsQueryer

	// AddScreening inserts the screening row together with its film
	// and club link rows. Transaction-only, like Films.AddFilm.
	AddScreening(ctx context.Context, s model.NewScreening) (uuid.UUID, error)
}

type ScreeningsQueryer interface {
	// Feed returns the schedule feed restricted by the given filter,
	// ordered by screening time.
	Feed(ctx context.Context, f model.FeedFilter) ([]model.FeedEntry, error)

	// Details fetches the full description of one screening, or a nil
	// value if it does not exist.
	Details(ctx context.Context, screeningID uuid.UUID) (*model.ScreeningDetails, error)

	// AddPost attaches a social media post to a screening.
	AddPost(ctx context.Context, screeningID uuid.UUID, platform, link string) (uuid.UUID, error)
}

type Screenings interface {
	Conn(Conn) ScreeningsConnQueryer
	Tx(Tx) ScreeningsTxQueryer
}
