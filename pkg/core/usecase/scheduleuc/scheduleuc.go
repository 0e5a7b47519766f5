// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package scheduleuc contains the screening schedule UseCase: the
// public feed and details pages plus the content management writes.
// Every operation receives the effective role of its request and
// selects the matching credential pool for it, so a forged or missing
// claim degrades the database privileges instead of widening them.
package scheduleuc

import (
	"context"

	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/filmclubs/fcweb/pkg/core/repo"
	"github.com/google/uuid"
)

// UseCase represents the schedule use case. It holds the credential
// pool set and the screenings repository.
type UseCase struct {
	pools        repo.PoolSet
	screeningsrp repo.Screenings
}

// New instantiates a schedule use case.
func New(ps repo.PoolSet, s repo.Screenings) *UseCase {
	return &UseCase{pools: ps, screeningsrp: s}
}

// Feed returns the schedule feed restricted by the given filter. It
// is open to every role, including guests.
func (sched *UseCase) Feed(ctx context.Context, role model.Role, f model.FeedFilter) (feed []model.FeedEntry, err error) {
	pool := sched.pools.Get(string(role))
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		feed, err = sched.screeningsrp.Conn(c).Feed(ctx, f)
		return err
	})
	if err != nil {
		feed = nil
	}
	return
}

// Details returns the full description of one screening, or a nil
// value when it does not exist. Open to every role.
func (sched *UseCase) Details(ctx context.Context, role model.Role, screeningID uuid.UUID) (d *model.ScreeningDetails, err error) {
	pool := sched.pools.Get(string(role))
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		d, err = sched.screeningsrp.Conn(c).Details(ctx, screeningID)
		return err
	})
	if err != nil {
		d = nil
	}
	return
}

// AddScreening schedules a screening for a club. The screening row
// and its film and club links are written in one transaction.
func (sched *UseCase) AddScreening(ctx context.Context, role model.Role, s model.NewScreening) (sid uuid.UUID, err error) {
	if err := model.Require(ctx, role, model.RoleContentManager); err != nil {
		return uuid.Nil, err
	}
	pool := sched.pools.Get(string(role))
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			sid, err = sched.screeningsrp.Tx(tx).AddScreening(ctx, s)
			return err
		})
	})
	if err != nil {
		sid = uuid.Nil
	}
	return
}

// AddPost attaches a promotion post to a screening.
func (sched *UseCase) AddPost(ctx context.Context, role model.Role, screeningID uuid.UUID, platform, link string) (pid uuid.UUID, err error) {
	if err := model.Require(ctx, role, model.RoleContentManager); err != nil {
		return uuid.Nil, err
	}
	pool := sched.pools.Get(string(role))
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		pid, err = sched.screeningsrp.Conn(c).AddPost(
			ctx, screeningID, platform, link,
		)
		return err
	})
	if err != nil {
		pid = uuid.Nil
	}
	return
}
