// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package filmsuc_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/filmclubs/fcweb/internal/test/fakerp"
	"github.com/filmclubs/fcweb/pkg/core/cerr"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/filmclubs/fcweb/pkg/core/repo"
	"github.com/filmclubs/fcweb/pkg/core/usecase/filmsuc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFilms records every catalog call it receives. A non-nil err is
// returned from all of them, emulating a failing statement.
type fakeFilms struct {
	err error

	searches      []string
	limits        []int
	addedFilms    []model.NewFilm
	addedInTx     int
	catalogWrites int
}

func (f *fakeFilms) Conn(repo.Conn) repo.FilmsConnQueryer {
	return fakeFilmsQueryer{f: f}
}

func (f *fakeFilms) Tx(repo.Tx) repo.FilmsTxQueryer {
	return fakeFilmsQueryer{f: f, inTx: true}
}

type fakeFilmsQueryer struct {
	f    *fakeFilms
	inTx bool
}

func (q fakeFilmsQueryer) Search(
	ctx context.Context, query string,
) ([]model.Film, error) {
	q.f.searches = append(q.f.searches, query)
	if q.f.err != nil {
		return nil, q.f.err
	}
	return []model.Film{{ID: uuid.New(), Title: "Cinema Paradiso"}}, nil
}

func (q fakeFilmsQueryer) SearchDirectors(
	ctx context.Context, query string, limit int,
) ([]model.Director, error) {
	q.f.searches = append(q.f.searches, query)
	q.f.limits = append(q.f.limits, limit)
	return nil, q.f.err
}

func (q fakeFilmsQueryer) SearchActors(
	ctx context.Context, query string, limit int,
) ([]model.Actor, error) {
	q.f.searches = append(q.f.searches, query)
	q.f.limits = append(q.f.limits, limit)
	return nil, q.f.err
}

func (q fakeFilmsQueryer) Languages(
	ctx context.Context,
) ([]model.Language, error) {
	return nil, q.f.err
}

func (q fakeFilmsQueryer) AddActor(
	ctx context.Context, name, tmdbLink string,
) (uuid.UUID, error) {
	q.f.catalogWrites++
	if q.f.err != nil {
		return uuid.Nil, q.f.err
	}
	return uuid.New(), nil
}

func (q fakeFilmsQueryer) AddDirector(
	ctx context.Context, name, tmdbLink string,
) (uuid.UUID, error) {
	q.f.catalogWrites++
	if q.f.err != nil {
		return uuid.Nil, q.f.err
	}
	return uuid.New(), nil
}

func (q fakeFilmsQueryer) UpdateLink(
	ctx context.Context, filmID uuid.UUID, tmdbLink string,
) error {
	q.f.catalogWrites++
	return q.f.err
}

func (q fakeFilmsQueryer) AddFilm(
	ctx context.Context, f model.NewFilm,
) (uuid.UUID, error) {
	if q.inTx {
		q.f.addedInTx++
	}
	q.f.addedFilms = append(q.f.addedFilms, f)
	if q.f.err != nil {
		return uuid.Nil, q.f.err
	}
	return uuid.New(), nil
}

func TestSearchSelectsPoolByRole(t *testing.T) {
	ctx := context.Background()
	ps := fakerp.NewPoolSet()
	f := &fakeFilms{}
	films, err := filmsuc.New(ps, f)
	require.NoError(t, err)

	fs, err := films.Search(ctx, model.RoleGuest, "paradiso")
	require.NoError(t, err)
	assert.Len(t, fs, 1)
	assert.Equal(t, []string{"paradiso"}, f.searches)
	assert.Equal(t, 1, ps.ByRole["guest"].ConnCount)

	_, err = films.Search(ctx, model.RoleContentManager, "vague")
	require.NoError(t, err)
	assert.Equal(t, 1, ps.ByRole["contentManager"].ConnCount)
	// the guest pool must not have served the manager's request
	assert.Equal(t, 1, ps.ByRole["guest"].ConnCount)
}

func TestSearchLimitOption(t *testing.T) {
	ctx := context.Background()
	ps := fakerp.NewPoolSet()
	f := &fakeFilms{}
	films, err := filmsuc.New(ps, f, filmsuc.WithSearchLimit(7))
	require.NoError(t, err)

	_, err = films.SearchDirectors(ctx, model.RoleGuest, "ford")
	require.NoError(t, err)
	_, err = films.SearchActors(ctx, model.RoleGuest, "fonda")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 7}, f.limits)

	_, err = filmsuc.New(ps, f, filmsuc.WithSearchLimit(0))
	assert.Error(t, err)
	_, err = filmsuc.New(
		ps, f,
		filmsuc.WithSearchLimit(3), filmsuc.WithSearchLimit(4),
	)
	assert.Error(t, err)
}

func TestAddFilmRunsInTransaction(t *testing.T) {
	ctx := context.Background()
	ps := fakerp.NewPoolSet()
	f := &fakeFilms{}
	films, err := filmsuc.New(ps, f)
	require.NoError(t, err)

	nf := model.NewFilm{
		Title:       "Breathless",
		Year:        1960,
		LanguageIDs: []uuid.UUID{uuid.New()},
		DirectorIDs: []uuid.UUID{uuid.New()},
		Cast: []model.CastCredit{
			{ActorID: uuid.New(), CharacterName: "Michel"},
		},
	}
	fid, err := films.AddFilm(ctx, model.RoleContentManager, nf)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, fid)
	require.Len(t, f.addedFilms, 1)
	assert.Equal(t, nf, f.addedFilms[0])
	assert.Equal(t, 1, f.addedInTx, "film insertion must use a Tx")
}

func TestAddFilmFailurePropagates(t *testing.T) {
	ctx := context.Background()
	ps := fakerp.NewPoolSet()
	f := &fakeFilms{err: errors.New("duplicate credit link")}
	films, err := filmsuc.New(ps, f)
	require.NoError(t, err)

	fid, err := films.AddFilm(
		ctx, model.RoleContentManager, model.NewFilm{Title: "x"},
	)
	assert.ErrorContains(t, err, "duplicate credit link")
	assert.Equal(t, uuid.Nil, fid)
}

func TestCatalogWritesAreGated(t *testing.T) {
	ctx := context.Background()
	ps := fakerp.NewPoolSet()
	f := &fakeFilms{}
	films, err := filmsuc.New(ps, f)
	require.NoError(t, err)

	for _, role := range []model.Role{
		model.RoleGuest,
		model.RoleClubMember,
		model.RoleEquipmentManager,
	} {
		_, err := films.AddFilm(ctx, role, model.NewFilm{Title: "x"})
		assertForbidden(t, err)
		_, err = films.AddActor(ctx, role, "a", "")
		assertForbidden(t, err)
		_, err = films.AddDirector(ctx, role, "d", "")
		assertForbidden(t, err)
		err = films.UpdateLink(ctx, role, uuid.New(), "")
		assertForbidden(t, err)
	}
	// a denied write must not have touched the repository or any pool
	assert.Empty(t, f.addedFilms)
	assert.Zero(t, f.catalogWrites)
	assert.Empty(t, ps.ByRole)
}

func assertForbidden(t *testing.T, err error) {
	t.Helper()
	var cerrErr *cerr.Error
	require.True(t, errors.As(err, &cerrErr), "got: %v", err)
	assert.Equal(t, http.StatusForbidden, cerrErr.HTTPStatusCode)
}
