// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package fakerp is an internal helper for the use case test packages.
// It provides in-memory stand-ins for the connection pool interfaces
// so the pool selection and role gating logic can be exercised without
// a DBMS server. The fakes record which pools were asked for and how
// many connections and transactions were handed out; the repository
// fakes stay with their respective test packages since their methods
// are domain specific.
package fakerp

import (
	"context"

	"github.com/filmclubs/fcweb/pkg/core/repo"
)

// Conn satisfies repo.Conn without any live connection. Its Queryer
// methods must never be reached by the code under test; the domain
// repository fakes intercept all queries above this layer.
type Conn struct {
	TxCount int
}

func (c *Conn) IsConn() {}

func (c *Conn) Exec(
	ctx context.Context, sql string, args ...any,
) (int64, error) {
	panic("fake connection cannot execute SQL: " + sql)
}

func (c *Conn) Query(
	ctx context.Context, sql string, args ...any,
) (repo.Rows, error) {
	panic("fake connection cannot query SQL: " + sql)
}

// Tx runs handler with a fake transaction. The handler error is
// returned as-is, mirroring a rollback without a commit.
func (c *Conn) Tx(ctx context.Context, handler repo.TxHandler) error {
	c.TxCount++
	return handler(ctx, &Tx{})
}

// Tx satisfies repo.Tx without any live transaction.
type Tx struct{}

func (tx *Tx) IsTx() {}

func (tx *Tx) Exec(
	ctx context.Context, sql string, args ...any,
) (int64, error) {
	panic("fake transaction cannot execute SQL: " + sql)
}

func (tx *Tx) Query(
	ctx context.Context, sql string, args ...any,
) (repo.Rows, error) {
	panic("fake transaction cannot query SQL: " + sql)
}

// Pool hands out fake connections, counting the acquisitions.
type Pool struct {
	ConnCount int
}

func (p *Pool) Conn(ctx context.Context, handler repo.ConnHandler) error {
	p.ConnCount++
	return handler(ctx, &Conn{})
}

// PoolSet fakes the per-role credential pool registry with one
// distinct fake pool per requested role string, so a test can verify
// both which role was used for the selection and that a connection
// was actually acquired from the matching pool.
type PoolSet struct {
	ByRole     map[string]*Pool
	LookupPool Pool
}

// NewPoolSet creates an empty fake pool set.
func NewPoolSet() *PoolSet {
	return &PoolSet{ByRole: make(map[string]*Pool)}
}

func (ps *PoolSet) Get(role string) repo.Pool {
	p, ok := ps.ByRole[role]
	if !ok {
		p = &Pool{}
		ps.ByRole[role] = p
	}
	return p
}

func (ps *PoolSet) Lookup() repo.Pool {
	return &ps.LookupPool
}

func (ps *PoolSet) Close() error {
	return nil
}
