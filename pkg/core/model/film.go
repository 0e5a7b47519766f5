// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "github.com/google/uuid"

// Film is a published film. The TMDB link points at the film's page
// on an external movie database.
type Film struct {
	ID       uuid.UUID
	Title    string
	Year     int
	TMDBLink string
}

// Director identifies one film director.
type Director struct {
	ID       uuid.UUID
	Name     string
	TMDBLink string
}

// Actor identifies one actor.
type Actor struct {
	ID       uuid.UUID
	Name     string
	TMDBLink string
}

// Language is a spoken language that films may be linked with.
type Language struct {
	ID   uuid.UUID
	Name string
}

// CastCredit links an actor to a film under a character name.
type CastCredit struct {
	ActorID       uuid.UUID
	CharacterName string
}

// NewFilm gathers a film row together with its language, director,
// and actor links. The whole value is persisted atomically: a film
// with dangling links is an incorrect half-state.
type NewFilm struct {
	Title       string
	Year        int
	TMDBLink    string
	LanguageIDs []uuid.UUID
	DirectorIDs []uuid.UUID
	Cast        []CastCredit
}
