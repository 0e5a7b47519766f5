// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package scram exports the expected interface for Salted Challenge
// Response Authentication Mechanism (SCRAM) hashing. For the
// corresponding implementation, check the adapter layer.
//
// In this system the interface is only needed for one purpose: when
// the `fcweb db init-dev` or `fcweb db init-prod` command provisions
// the per-role database
// principals, their passwords must be hashed in-process with the
// standard scram format (having a password, salt, and iteration
// count) before being embedded in CREATE/ALTER ROLE statements, so
// plaintext passwords never appear in DDL queries where statement
// logging could capture them. The client and server sides of the
// SCRAM conversation itself are handled by the PostgreSQL server and
// its driver in the adapter layer.
package scram

// Hasher represents the expectations from a SCRAM hasher
// implementation which, for a specific underlying hash function
// (e.g., SHA1 or SHA256), computes the storedKey and serverKey values
// whenever its Hash method is called with the relevant pass, salt,
// and iters arguments. A PBKDF2 algorithm is computed in order to
// slow down a dictionary attack as detailed in RFC 5802.
type Hasher interface {
	// Hash computes a hash string following the standard scram hash
	// format, so it can be stored and used later for authentication.
	//
	// The pass argument must be non-empty. The salt must contain a
	// base64 encoding of the desired salt bytes; if an empty value is
	// passed, a random salt will be generated and used instead. The
	// iters must be at least 4096 (RFC 7677 recommends 15000 or
	// more).
	//
	// In absence of errors, a hashed string will be returned which
	// conforms to the following format.
	//
	//	SCRAM-{SHA-X}${iters}:{b64-salt}${b64-storedKey}:{b64-serverKey}
	//
	// This string (consisting only of ASCII printable letters) can be
	// safely passed to an ALTER or CREATE ROLE query as accepted by
	// the PostgreSQL DBMS.
	Hash(pass, salt string, iters int) (string, error)
}
