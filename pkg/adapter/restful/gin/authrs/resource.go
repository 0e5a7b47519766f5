// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package authrs realizes the authentication resource. Login is
// name-only by design: the surrounding deployment fronts this service
// with an SSO proxy which authenticates the principal, so this layer
// only resolves the authenticated name into a canonical role and the
// memberships the client keeps for its per-club context.
package authrs

import (
	"net/http"

	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/serdser"
	"github.com/filmclubs/fcweb/pkg/core/usecase/authuc"
	"github.com/gin-gonic/gin"
)

type resource struct {
	auth *authuc.UseCase
}

// Register instantiates a resource adapting the authentication use
// case instance with the relevant REST APIs including:
//  1. POST request to /api/fcweb/v1/sessions
//     in order to login and resolve the canonical role.
//  2. POST request to /api/fcweb/v1/sessions/club-context
//     in order to narrow the session to one club's role.
func Register(r *gin.RouterGroup, auth *authuc.UseCase) {
	rs := &resource{auth: auth}
	r.POST("sessions", rs.Login)
	r.POST("sessions/club-context", rs.AssumeClubContext)
}

func (rs *resource) Login(c *gin.Context) {
	req := rs.DserLoginReq(c)
	if req == nil {
		return
	}
	s, err := rs.auth.Login(c, req.Username)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerSession(s))
}

func (rs *resource) AssumeClubContext(c *gin.Context) {
	req := rs.DserClubContextReq(c)
	if req == nil {
		return
	}
	role, err := rs.auth.AssumeClubContext(c, req.Username, req.ClubID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role})
}
