// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"time"

	"github.com/google/uuid"
)

// Screening is one scheduled projection of a film at a venue,
// organized by a club.
type Screening struct {
	ID      uuid.UUID
	At      time.Time
	VenueID uuid.UUID
}

// NewScreening gathers a screening row with its film and club links.
// It is persisted atomically, like NewFilm.
type NewScreening struct {
	At      time.Time
	VenueID uuid.UUID
	FilmID  uuid.UUID
	ClubID  uuid.UUID
}

// FeedEntry is one row of the schedule feed.
type FeedEntry struct {
	ScreeningID uuid.UUID
	At          time.Time
	FilmTitle   string
	Directors   string
	VenueName   string
	ClubName    string
}

// FeedFilter restricts the schedule feed. Query matches film title,
// venue, director, and club name substrings; Date restricts to one
// calendar day; ClubID restricts the per-club feed.
type FeedFilter struct {
	Query  string
	Date   *time.Time
	ClubID *uuid.UUID
}

// Post is a social media post promoting a screening.
type Post struct {
	ID          uuid.UUID
	ScreeningID uuid.UUID
	Platform    string
	Link        string
}

// CastMember is one cast row of the screening details page.
type CastMember struct {
	Name          string
	TMDBLink      string
	CharacterName string
}

// CreditedPerson is one director row of the screening details page.
type CreditedPerson struct {
	Name     string
	TMDBLink string
}

// ScreeningDetails is the full description of a screening: the film,
// venue, and club core, plus directors, cast, and promotion posts.
type ScreeningDetails struct {
	ScreeningID  uuid.UUID
	At           time.Time
	Venue        string
	VenueDetails string
	FilmTitle    string
	FilmYear     int
	FilmLink     string
	Club         string
	ClubEmail    string
	Directors    []CreditedPerson
	Cast         []CastMember
	Posts        []Post
}
