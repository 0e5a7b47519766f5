package repo

import (
	"context"

	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/google/uuid"
)

type FilmsConnQueryer interface {
	FilmsQueryer
}

type FilmsTxQueryer interface {
	FilmsQueryer

	// AddFilm inserts the film row together with all of its language,
	// director, and cast link rows. It is transaction-only because a
	// partially linked film is an incorrect half-state.
	AddFilm(ctx context.Context, f model.NewFilm) (uuid.UUID, error)
}

type FilmsQueryer interface {
	// Search returns films whose title contains q, ordered by title.
	Search(ctx context.Context, q string) ([]model.Film, error)

	// SearchDirectors returns up to limit directors by name substring.
	SearchDirectors(ctx context.Context, q string, limit int) ([]model.Director, error)

	// SearchActors returns up to limit actors by name substring.
	SearchActors(ctx context.Context, q string, limit int) ([]model.Actor, error)

	// Languages lists all languages ordered by name.
	Languages(ctx context.Context) ([]model.Language, error)

	// AddActor inserts an actor row.
	AddActor(ctx context.Context, name, tmdbLink string) (uuid.UUID, error)

	// AddDirector inserts a director row.
	AddDirector(ctx context.Context, name, tmdbLink string) (uuid.UUID, error)

	// UpdateLink rewrites the external database link of a film.
	UpdateLink(ctx context.Context, filmID uuid.UUID, tmdbLink string) error
}

type Films interface {
	Conn(Conn) FilmsConnQueryer
	Tx(Tx) FilmsTxQueryer
}
