// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package postgres adapts the core repo connection interfaces to a
// PostgreSQL DBMS using the GORM framework over the pgx driver.
// It realizes the repo.Pool, repo.Conn, and repo.Tx interfaces, and
// additionally provides the PoolSet: the process-wide registry of
// per-role credential pools which the request path selects from.
package postgres

import (
	"context"
	"errors"

	"github.com/filmclubs/fcweb/pkg/core/cerr"
	"github.com/filmclubs/fcweb/pkg/core/repo"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Queryer interface {
	*Conn | *Tx
	repo.Queryer

	// GORM returns the embedded *gorm.DB instance, configuring it
	// to operate on the given ctx context (in a gorm.Session).
	GORM(ctx context.Context) *gorm.DB
}

// IsConflict detects an integrity violation, such as inserting a
// duplicate ownership link. SQLSTATE class 23 covers the integrity
// constraint violations.
func IsConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return len(pgErr.SQLState()) >= 2 && pgErr.SQLState()[:2] == "23"
}

// IsRetriable detects pool exhaustion and transient connectivity
// failures which the caller may retry. SQLSTATE classes 08 and 57
// cover connection exceptions and operator interventions (including
// 57P03, "the database system is starting up").
func IsRetriable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch s := pgErr.SQLState(); {
	case len(s) < 2:
		return false
	case s[:2] == "08", s[:2] == "57":
		return true
	}
	return false
}

// Classify attaches the transport classification of a driver-level
// failure: integrity violations become conflict errors and transient
// connectivity failures become unavailable errors. Other errors pass
// through unchanged and end up reported as internal server errors.
func Classify(err error) error {
	switch {
	case IsConflict(err):
		return cerr.Conflict(err)
	case IsRetriable(err):
		return cerr.Unavailable(err)
	}
	return err
}
