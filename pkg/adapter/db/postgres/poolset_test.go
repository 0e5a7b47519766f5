// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/filmclubs/fcweb/pkg/adapter/db/postgres"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/filmclubs/fcweb/pkg/core/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newDummyPoolSet opens one distinct dummy pool per database principal
// so tests can check the selection path by pointer identity. The dummy
// pools carry no live connection and must never be closed.
func newDummyPoolSet(t *testing.T) (
	*postgres.PoolSet, map[repo.Role]*postgres.Pool,
) {
	opened := make(map[repo.Role]*postgres.Pool)
	ps, err := postgres.NewPoolSet(
		context.Background(),
		func(ctx context.Context, r repo.Role) (*postgres.Pool, error) {
			require.NotContains(t, opened, r, "principal opened twice")
			p := &postgres.Pool{}
			opened[r] = p
			return p, nil
		},
	)
	require.NoError(t, err)
	require.Len(t, opened, len(model.AllRoles))
	return ps, opened
}

func TestPoolSetGet(t *testing.T) {
	ps, opened := newDummyPoolSet(t)
	for _, cr := range model.AllRoles {
		p := ps.Get(string(cr))
		assert.Same(t, opened[repo.RoleFor(cr)], p, "role %q", cr)
	}
}

func TestPoolSetGetFallsBackToGuest(t *testing.T) {
	ps, opened := newDummyPoolSet(t)
	guest := opened[repo.GuestRole]
	for _, claim := range []string{
		"", "root", "superuser", "dbadministrator", "fc_admin",
		"Guest", "clubAdmin ",
	} {
		p := ps.Get(claim)
		require.NotNil(t, p, "claim %q", claim)
		assert.Same(t, guest, p, "claim %q", claim)
	}
}

func TestPoolSetLookup(t *testing.T) {
	ps, opened := newDummyPoolSet(t)
	assert.Same(t, opened[repo.AdminRole], ps.Lookup())
}

func TestNewPoolSetAllOrNothing(t *testing.T) {
	calls := 0
	ps, err := postgres.NewPoolSet(
		context.Background(),
		func(ctx context.Context, r repo.Role) (*postgres.Pool, error) {
			calls++
			return nil, fmt.Errorf("no such principal: %q", r)
		},
	)
	require.Error(t, err)
	assert.Nil(t, ps)
	// the first failure aborts provisioning
	assert.Equal(t, 1, calls)
	assert.ErrorContains(t, err, "opening pool for role")
}
