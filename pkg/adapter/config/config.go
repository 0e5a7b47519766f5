// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config loads the YAML configuration settings and provisions
// the concrete adapters based on them: the per-role database
// connection pools (with passwords read from a pgpass-format file),
// the gin-gonic engine, and the schema management repository.
// The configuration format is deliberately thin; it identifies the
// database and toggles a few behaviors, nothing more.
package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/filmclubs/fcweb/pkg/adapter/db/postgres"
	"github.com/filmclubs/fcweb/pkg/adapter/db/postgres/schemarp"
	"github.com/filmclubs/fcweb/pkg/adapter/hash/scram"
	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin"
	"github.com/filmclubs/fcweb/pkg/core/repo"
	scrami "github.com/filmclubs/fcweb/pkg/core/scram"
	"gopkg.in/yaml.v3"
)

// Config contains all settings which are required by different parts
// of the project, such as adapters or use cases.
type Config struct {
	Database Database // PostgreSQL database connection settings
	Gin      Gin      // Gin-Gonic instantiation settings
	Usecases Usecases // Configuration settings for supported use cases
}

// Database contains the database related configuration settings.
type Database struct {
	Host    string // domain name or IP address of the DBMS server
	Port    int    // port number of the DBMS server
	Name    string // database name, like filmclubs
	PassDir string `yaml:"pass-dir"` // path of the passwords dir

	// RoleSuffix specifies a possibly empty suffix for the database
	// role names. Normally, the fixed repo.Role principals are used.
	// In the parallel test cases, it is required to create multiple
	// non-colliding roles in the same database cluster and so having
	// a unique (per test) role suffix helps with parallelism.
	RoleSuffix repo.Role `yaml:"role-suffix,omitempty"`

	// AuthMethod specifies the database authentication method name,
	// indicating how role passwords should be hashed before being
	// stored in the database. Currently, only scram-sha-1 and
	// scram-sha-256 methods are supported. The scram-sha-256 is the
	// default value.
	AuthMethod string `yaml:"auth-method,omitempty"`

	// hasher is instantiated based on the AuthMethod and is used by
	// the NewSchemaRepo method, so Schema repo instances may hash
	// passwords properly (as expected by the DBMS).
	hasher scrami.Hasher `yaml:"-"`
}

// Gin contains the gin-gonic related configuration settings.
// Fields are defined as pointers, so it is possible to detect if they
// are or are not initialized by the configuration file; uninitialized
// toggles are enabled by ValidateAndNormalize.
type Gin struct {
	Logger   *bool // Whether to register the gin.Logger() middleware
	Recovery *bool // Whether to register the gin.Recovery() middleware
}

// Usecases contains the configuration settings for all use cases.
type Usecases struct {
	Search Search // name-search related settings
}

// Search contains the settings of the name-search use cases.
type Search struct {
	// Limit bounds the number of rows which the film, director,
	// actor, and club name searches return. Nil selects the default.
	Limit *int `yaml:",omitempty"`
}

// Load reads, deserializes, validates, and normalizes the
// configuration settings from the given path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q file: %w", path, err)
	}
	c := &Config{}
	if err = yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if err = c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

// ValidateAndNormalize validates the configuration settings and
// returns an error if they were not acceptable. It can also modify
// settings in order to replace some zero values with their expected
// default values (if any).
func (c *Config) ValidateAndNormalize() error {
	if err := c.Database.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("database settings: %w", err)
	}
	t := true
	if c.Gin.Logger == nil {
		c.Gin.Logger = &t
	}
	if c.Gin.Recovery == nil {
		c.Gin.Recovery = &t
	}
	if c.Usecases.Search.Limit == nil {
		l := 20
		c.Usecases.Search.Limit = &l
	} else if *c.Usecases.Search.Limit <= 0 {
		return fmt.Errorf(
			"search limit (%d) is not positive",
			*c.Usecases.Search.Limit,
		)
	}
	return nil
}

// ValidateAndNormalize validates the database settings, filling the
// default port and instantiating the password hasher matching the
// configured authentication method.
func (d *Database) ValidateAndNormalize() error {
	if d.Port == 0 {
		d.Port = 5432
	}
	switch am := d.AuthMethod; am {
	case "scram-sha-1":
		d.hasher = scram.SHA1()
	case "":
		d.AuthMethod = "scram-sha-256"
		fallthrough
	case "scram-sha-256":
		d.hasher = scram.SHA256()
	default:
		return fmt.Errorf(
			"unsupported database authentication method: %q", am,
		)
	}
	return nil
}

// PoolSet provisions the complete credential pool set, opening one
// connection pool per canonical role with that role's own database
// principal. Failure to establish any pool is returned as an error
// which the caller must treat as fatal to process start.
func (c *Config) PoolSet(ctx context.Context) (*postgres.PoolSet, error) {
	return postgres.NewPoolSet(
		ctx,
		func(ctx context.Context, r repo.Role) (*postgres.Pool, error) {
			return c.Database.ConnectionPool(ctx, r)
		},
	)
}

// ConnectionPool creates a database connection pool for the given `r`
// role using the connection information which are kept in the `d`
// settings. The role's password is read from the .pgpass file in the
// d.PassDir folder, which should conform with the pgpass format with
// lines like this:
//
//	host:port:dbname:role:password
//
// The `d.RoleSuffix` will be appended to the given `r` role name too.
func (d Database) ConnectionPool(
	ctx context.Context, r repo.Role,
) (*postgres.Pool, error) {
	path := filepath.Join(d.PassDir, ".pgpass")
	u, err := d.ConnectionURL(r, path)
	if err != nil {
		return nil, fmt.Errorf("using %q pass-file: %w", path, err)
	}
	p, err := postgres.NewPool(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("connecting as %q: %w", r, err)
	}
	return p, nil
}

// ConnectionURL returns the database connection URL embedding the
// host, port, role name, database name, and password value. These
// items are directly taken from the `d` settings, but the role name
// which is specified by the `r` argument and the password value which
// is read from the given `path` file. Returned URL has the postgresql
// scheme. The `path` file may contain empty or `#`-commented lines in
// addition to the password specifying lines.
func (d Database) ConnectionURL(
	r repo.Role, path string,
) (string, error) {
	pass, err := d.Password(r, path)
	if err != nil {
		return "", err
	}
	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(string(r+d.RoleSuffix), pass),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.Name,
	}
	return u.String(), nil
}

// Password reads the password of the `r` role (with the configured
// role suffix appended) from the `path` pgpass-format file.
func (d Database) Password(r repo.Role, path string) (string, error) {
	passLines, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading pass-file: %w", err)
	}
	r = r + d.RoleSuffix
	prfx := fmt.Sprintf("%s:%d:%s:%s:", d.Host, d.Port, d.Name, r)
	for _, line := range strings.Split(string(passLines), "\n") {
		if line == "" || line[0] == '#' {
			continue
		}
		if strings.HasPrefix(line, prfx) {
			return line[len(prfx):], nil
		}
	}
	return "", fmt.Errorf("no matching password line for role %q", r)
}

// ConnectionInfo returns the host, port, and database name of the
// connection information which are kept in this Database instance.
func (d Database) ConnectionInfo() (dbName, host string, port int) {
	return d.Name, d.Host, d.Port
}

// NewSchemaRepo instantiates a fresh Schema repository. Role names
// may be optionally suffixed based on the settings; since the Schema
// repository has methods for creation of roles or asking to grant
// specific privileges to them, it needs to obtain the same role name
// suffix and password hasher as stored in this Database instance.
// ValidateAndNormalize is expected to be called beforehand, so the
// hasher is in place.
func (d Database) NewSchemaRepo() repo.Schema {
	return schemarp.New(d.RoleSuffix, d.hasher)
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the `g` settings.
func (g Gin) NewEngine() *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 2)
	if *g.Logger {
		middlewares = append(middlewares, gin.Logger())
	}
	if *g.Recovery {
		middlewares = append(middlewares, gin.Recovery())
	}
	return gin.New(middlewares...)
}
