// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package filmsuc contains the films UseCase: searching the film,
// director, and actor catalogs and maintaining them from the content
// management pages. Catalog writes demand the contentManager role;
// adding a film is transactional so its credit links can never be
// committed half-written.
package filmsuc

import (
	"context"
	"fmt"

	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/filmclubs/fcweb/pkg/core/repo"
	"github.com/google/uuid"
)

// UseCase represents the films use case. It holds the credential pool
// set, the films repository, and the search specific settings.
type UseCase struct {
	pools   repo.PoolSet
	filmsrp repo.Films

	searchLimit int
}

// New instantiates a films use case.
// Required parameters are passed individually, so the caller has to
// provision them and notice (as a compilation error) whenever they
// change. Optional parameters are passed as functional options.
func New(ps repo.PoolSet, f repo.Films, opts ...Option) (*UseCase, error) {
	uc := &UseCase{pools: ps, filmsrp: f}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.searchLimit == 0 {
		uc.searchLimit = 20
	}
	return uc, nil
}

// Search returns the films whose title contains the query. Open to
// every role.
func (films *UseCase) Search(ctx context.Context, role model.Role, query string) (fs []model.Film, err error) {
	pool := films.pools.Get(string(role))
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		fs, err = films.filmsrp.Conn(c).Search(ctx, query)
		return err
	})
	if err != nil {
		fs = nil
	}
	return
}

// SearchDirectors returns directors by name substring, up to the
// configured search limit. Open to every role.
func (films *UseCase) SearchDirectors(ctx context.Context, role model.Role, query string) (ds []model.Director, err error) {
	pool := films.pools.Get(string(role))
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		ds, err = films.filmsrp.Conn(c).SearchDirectors(
			ctx, query, films.searchLimit,
		)
		return err
	})
	if err != nil {
		ds = nil
	}
	return
}

// SearchActors returns actors by name substring, up to the configured
// search limit. Open to every role.
func (films *UseCase) SearchActors(ctx context.Context, role model.Role, query string) (as []model.Actor, err error) {
	pool := films.pools.Get(string(role))
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		as, err = films.filmsrp.Conn(c).SearchActors(
			ctx, query, films.searchLimit,
		)
		return err
	})
	if err != nil {
		as = nil
	}
	return
}

// Languages lists the languages catalog. Open to every role.
func (films *UseCase) Languages(ctx context.Context, role model.Role) (ls []model.Language, err error) {
	pool := films.pools.Get(string(role))
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		ls, err = films.filmsrp.Conn(c).Languages(ctx)
		return err
	})
	if err != nil {
		ls = nil
	}
	return
}

// AddFilm publishes a film with its language, director, and cast
// links, all in one transaction.
func (films *UseCase) AddFilm(ctx context.Context, role model.Role, f model.NewFilm) (fid uuid.UUID, err error) {
	if err := model.Require(ctx, role, model.RoleContentManager); err != nil {
		return uuid.Nil, err
	}
	pool := films.pools.Get(string(role))
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			fid, err = films.filmsrp.Tx(tx).AddFilm(ctx, f)
			return err
		})
	})
	if err != nil {
		fid = uuid.Nil
	}
	return
}

// AddActor registers an actor in the catalog.
func (films *UseCase) AddActor(ctx context.Context, role model.Role, name, tmdbLink string) (aid uuid.UUID, err error) {
	if err := model.Require(ctx, role, model.RoleContentManager); err != nil {
		return uuid.Nil, err
	}
	pool := films.pools.Get(string(role))
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		aid, err = films.filmsrp.Conn(c).AddActor(ctx, name, tmdbLink)
		return err
	})
	if err != nil {
		aid = uuid.Nil
	}
	return
}

// AddDirector registers a director in the catalog.
func (films *UseCase) AddDirector(ctx context.Context, role model.Role, name, tmdbLink string) (did uuid.UUID, err error) {
	if err := model.Require(ctx, role, model.RoleContentManager); err != nil {
		return uuid.Nil, err
	}
	pool := films.pools.Get(string(role))
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		did, err = films.filmsrp.Conn(c).AddDirector(ctx, name, tmdbLink)
		return err
	})
	if err != nil {
		did = uuid.Nil
	}
	return
}

// UpdateLink rewrites the external database link of a film.
func (films *UseCase) UpdateLink(ctx context.Context, role model.Role, filmID uuid.UUID, tmdbLink string) error {
	if err := model.Require(ctx, role, model.RoleContentManager); err != nil {
		return err
	}
	pool := films.pools.Get(string(role))
	return pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return films.filmsrp.Conn(c).UpdateLink(ctx, filmID, tmdbLink)
	})
}
