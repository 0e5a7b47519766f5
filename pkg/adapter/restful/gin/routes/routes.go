// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, use case, and resource
// packages based on the user provided configuration settings.
package routes

import (
	"context"
	"fmt"

	"github.com/filmclubs/fcweb/pkg/adapter/config"
	"github.com/filmclubs/fcweb/pkg/adapter/db/postgres/clubsrp"
	"github.com/filmclubs/fcweb/pkg/adapter/db/postgres/equipmentrp"
	"github.com/filmclubs/fcweb/pkg/adapter/db/postgres/filmsrp"
	"github.com/filmclubs/fcweb/pkg/adapter/db/postgres/membersrp"
	"github.com/filmclubs/fcweb/pkg/adapter/db/postgres/screeningsrp"
	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/adminrs"
	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/authrs"
	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/clubsrs"
	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/equipmentrs"
	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/filmsrs"
	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/roleauth"
	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/schedulesrs"
	"github.com/filmclubs/fcweb/pkg/core/repo"
	"github.com/filmclubs/fcweb/pkg/core/usecase/adminuc"
	"github.com/filmclubs/fcweb/pkg/core/usecase/authuc"
	"github.com/filmclubs/fcweb/pkg/core/usecase/clubsuc"
	"github.com/filmclubs/fcweb/pkg/core/usecase/equipmentuc"
	"github.com/filmclubs/fcweb/pkg/core/usecase/filmsuc"
	"github.com/filmclubs/fcweb/pkg/core/usecase/scheduleuc"
	"github.com/gin-gonic/gin"
)

// Register instantiates the repositories, use cases, and resources
// based on the `c` configuration settings. The `ps` credential pool
// set is passed to the use case instances so each request runs its
// queries over the pool of its effective role; the roleauth
// middleware which resolves that role is installed on the whole API
// group. Each use case package is named like filmsuc, each repository
// package like filmsrp, and each resource package like filmsrs.
func Register(
	ctx context.Context, e *gin.Engine, ps repo.PoolSet, c *config.Config,
) error {
	membersRepo := membersrp.New()
	clubsRepo := clubsrp.New()
	filmsRepo := filmsrp.New()
	screeningsRepo := screeningsrp.New()
	equipmentRepo := equipmentrp.New()

	filmsUC, err := filmsuc.New(
		ps, filmsRepo,
		filmsuc.WithSearchLimit(*c.Usecases.Search.Limit),
	)
	if err != nil {
		return fmt.Errorf("creating films use case: %w", err)
	}
	authUC := authuc.New(ps, membersRepo)
	scheduleUC := scheduleuc.New(ps, screeningsRepo)
	equipmentUC := equipmentuc.New(ps, equipmentRepo, clubsRepo)
	clubsUC := clubsuc.New(ps, clubsRepo, membersRepo)
	adminUC := adminuc.New(ps, clubsRepo, membersRepo)

	r := e.Group("/api/fcweb/v1", roleauth.New())
	authrs.Register(r, authUC)
	schedulesrs.Register(r, scheduleUC)
	filmsrs.Register(r, filmsUC)
	equipmentrs.Register(r, equipmentUC)
	clubsrs.Register(r, clubsUC)
	adminrs.Register(r, adminUC)
	return nil
}
