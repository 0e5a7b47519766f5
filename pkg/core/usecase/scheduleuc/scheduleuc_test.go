// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package scheduleuc_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/filmclubs/fcweb/internal/test/fakerp"
	"github.com/filmclubs/fcweb/pkg/core/cerr"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/filmclubs/fcweb/pkg/core/repo"
	"github.com/filmclubs/fcweb/pkg/core/usecase/scheduleuc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScreenings struct {
	details *model.ScreeningDetails

	feedFilters []model.FeedFilter
	scheduled   []model.NewScreening
	scheduledTx int
	posts       int
}

func (f *fakeScreenings) Conn(repo.Conn) repo.ScreeningsConnQueryer {
	return fakeScreeningsQueryer{f: f}
}

func (f *fakeScreenings) Tx(repo.Tx) repo.ScreeningsTxQueryer {
	return fakeScreeningsQueryer{f: f, inTx: true}
}

type fakeScreeningsQueryer struct {
	f    *fakeScreenings
	inTx bool
}

func (q fakeScreeningsQueryer) Feed(
	ctx context.Context, f model.FeedFilter,
) ([]model.FeedEntry, error) {
	q.f.feedFilters = append(q.f.feedFilters, f)
	return []model.FeedEntry{
		{ScreeningID: uuid.New(), FilmTitle: "Breathless"},
	}, nil
}

func (q fakeScreeningsQueryer) Details(
	ctx context.Context, screeningID uuid.UUID,
) (*model.ScreeningDetails, error) {
	if q.f.details == nil || q.f.details.ScreeningID != screeningID {
		return nil, nil
	}
	d := *q.f.details
	return &d, nil
}

func (q fakeScreeningsQueryer) AddPost(
	ctx context.Context, screeningID uuid.UUID, platform, link string,
) (uuid.UUID, error) {
	q.f.posts++
	return uuid.New(), nil
}

func (q fakeScreeningsQueryer) AddScreening(
	ctx context.Context, s model.NewScreening,
) (uuid.UUID, error) {
	q.f.scheduled = append(q.f.scheduled, s)
	if q.inTx {
		q.f.scheduledTx++
	}
	return uuid.New(), nil
}

func newScheduleUseCase() (
	*scheduleuc.UseCase, *fakerp.PoolSet, *fakeScreenings,
) {
	ps := fakerp.NewPoolSet()
	s := &fakeScreenings{details: &model.ScreeningDetails{
		ScreeningID: uuid.New(),
		FilmTitle:   "Breathless",
		Venue:       "Main Hall",
	}}
	return scheduleuc.New(ps, s), ps, s
}

func TestFeedOpenToGuests(t *testing.T) {
	ctx := context.Background()
	sched, ps, s := newScheduleUseCase()

	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	cid := uuid.New()
	f := model.FeedFilter{Query: "breathless", Date: &date, ClubID: &cid}
	feed, err := sched.Feed(ctx, model.RoleGuest, f)
	require.NoError(t, err)
	assert.Len(t, feed, 1)
	require.Len(t, s.feedFilters, 1)
	assert.Equal(t, f, s.feedFilters[0])
	assert.Equal(t, 1, ps.ByRole["guest"].ConnCount)

	d, err := sched.Details(ctx, model.RoleGuest, s.details.ScreeningID)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "Breathless", d.FilmTitle)

	d, err = sched.Details(ctx, model.RoleGuest, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestSchedulingRequiresContentManager(t *testing.T) {
	ctx := context.Background()
	sched, ps, s := newScheduleUseCase()

	ns := model.NewScreening{
		At:      time.Now().Add(48 * time.Hour),
		VenueID: uuid.New(),
		FilmID:  uuid.New(),
		ClubID:  uuid.New(),
	}
	for _, role := range []model.Role{
		model.RoleGuest,
		model.RoleClubMember,
		model.RoleEquipmentManager,
	} {
		_, err := sched.AddScreening(ctx, role, ns)
		assertForbidden(t, err)
		_, err = sched.AddPost(
			ctx, role, uuid.New(), "instagram", "https://ig.example/p/1",
		)
		assertForbidden(t, err)
	}
	assert.Empty(t, s.scheduled)
	assert.Zero(t, s.posts)
	assert.Empty(t, ps.ByRole)

	sid, err := sched.AddScreening(ctx, model.RoleContentManager, ns)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, sid)
	require.Len(t, s.scheduled, 1)
	assert.Equal(t, ns, s.scheduled[0])
	assert.Equal(t, 1, s.scheduledTx, "scheduling must use a Tx")

	_, err = sched.AddPost(
		ctx, model.RoleContentManager, sid,
		"instagram", "https://ig.example/p/1",
	)
	require.NoError(t, err)
	assert.Equal(t, 1, s.posts)
	assert.Equal(t, 2, ps.ByRole["contentManager"].ConnCount)
}

func assertForbidden(t *testing.T, err error) {
	t.Helper()
	var cerrErr *cerr.Error
	require.True(t, errors.As(err, &cerrErr), "got: %v", err)
	assert.Equal(t, http.StatusForbidden, cerrErr.HTTPStatusCode)
}
