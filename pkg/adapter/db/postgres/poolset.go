// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/filmclubs/fcweb/pkg/core/log"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/filmclubs/fcweb/pkg/core/repo"
)

// PoolSet is the fixed collection of credential pools, one per
// canonical system role, each bound to a distinct database principal
// with its own SQL grants. It is created once at process start and
// shared by all requests; the per-role map is never exposed, so no
// caller can mutate the registry or bypass the fallback rule.
type PoolSet struct {
	pools map[model.Role]*Pool
}

// PoolOpener opens one pool for the given database role. The config
// adapter provides an implementation which resolves the connection
// URL (including the role's password) and dials it.
type PoolOpener func(ctx context.Context, r repo.Role) (*Pool, error)

// NewPoolSet provisions one pool per canonical role using the open
// function. Construction is all-or-nothing: if any pool cannot be
// established, every already-opened pool is closed and an error is
// returned, which the caller must treat as fatal to process start.
// A missing database principal means that role class can never
// function; crashing loudly beats silently serving privileged roles
// from the guest pool.
func NewPoolSet(ctx context.Context, open PoolOpener) (*PoolSet, error) {
	ps := &PoolSet{pools: make(map[model.Role]*Pool, len(model.AllRoles))}
	for _, cr := range model.AllRoles {
		p, err := open(ctx, repo.RoleFor(cr))
		if err != nil {
			closeErr := ps.Close()
			return nil, errors.Join(
				fmt.Errorf("opening pool for role %q: %w", cr, err),
				closeErr,
			)
		}
		ps.pools[cr] = p
	}
	return ps, nil
}

// Get returns the pool matching the given effective role string.
// It is total: nil-like values, the empty string, and arbitrary
// client-supplied strings all map to the guest pool, which is the
// single fallback point of the selection path. Get never returns nil
// and has no side effects beyond the usual acquisition counters of
// the returned pool.
func (ps *PoolSet) Get(role string) repo.Pool {
	cr, err := model.ParseRole(role)
	if err != nil {
		cr = model.RoleGuest
	}
	p, ok := ps.pools[cr]
	if !ok {
		// cannot happen after NewPoolSet; guard the invariant anyway
		p = ps.pools[model.RoleGuest]
	}
	return p
}

// Lookup returns the fixed elevated pool used by the login path for
// principal lookup. Reading arbitrary principals' membership rows is
// itself privileged, so login does not go through the per-request
// Get selection.
func (ps *PoolSet) Lookup() repo.Pool {
	return ps.pools[model.RoleDBAdministrator]
}

// Close tears down every pool. It is called at process shutdown only;
// pools are never recreated within the lifetime of the process.
func (ps *PoolSet) Close() error {
	var errs []error
	for cr, p := range ps.pools {
		if p == nil {
			continue
		}
		if err := p.Close(); err != nil {
			errs = append(
				errs, fmt.Errorf("closing pool of %q: %w", cr, err),
			)
		}
	}
	if len(errs) != 0 {
		log.Error(
			context.Background(), "closing credential pools",
			log.Err("error", errors.Join(errs...)),
		)
	}
	return errors.Join(errs...)
}
