// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package clubsrs realizes the clubs resource: the public club pages
// and the club administration operations of the clubAdmin tier.
package clubsrs

import (
	"net/http"

	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/roleauth"
	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/serdser"
	"github.com/filmclubs/fcweb/pkg/core/usecase/clubsuc"
	"github.com/gin-gonic/gin"
)

type resource struct {
	clubs *clubsuc.UseCase
}

// Register instantiates a resource adapting the clubs use case
// instance with the relevant REST APIs including:
//  1. GET requests to /api/fcweb/v1/clubs, /clubs/search,
//     /clubs/:cid, and /clubs/:cid/team for the public pages.
//  2. GET request to /api/fcweb/v1/clubs/:cid/roster
//     in order to manage the club's memberships.
//  3. PUT request to /api/fcweb/v1/clubs/:cid
//     in order to update the club's profile.
//  4. PATCH request to /api/fcweb/v1/clubs/:cid/members/:mid
//     in order to relabel or deactivate one membership.
func Register(r *gin.RouterGroup, clubs *clubsuc.UseCase) {
	rs := &resource{clubs: clubs}
	r.GET("clubs", rs.List)
	r.GET("clubs/search", rs.Search)
	r.GET("clubs/:cid", rs.Details)
	r.GET("clubs/:cid/team", rs.Team)
	r.GET("clubs/:cid/roster", rs.Roster)
	r.PUT("clubs/:cid", rs.Update)
	r.PATCH("clubs/:cid/members/:mid", rs.UpdateMembership)
}

func (rs *resource) List(c *gin.Context) {
	cs, err := rs.clubs.List(c, roleauth.Role(c))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerClubs(cs))
}

func (rs *resource) Search(c *gin.Context) {
	req := rs.DserSearchReq(c)
	if req == nil {
		return
	}
	refs, err := rs.clubs.Search(
		c, roleauth.Role(c), req.Query, req.Limit,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, refs)
}

func (rs *resource) Details(c *gin.Context) {
	cid, ok := dserClubID(c)
	if !ok {
		return
	}
	club, err := rs.clubs.Details(c, roleauth.Role(c), cid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerClub(*club))
}

func (rs *resource) Team(c *gin.Context) {
	cid, ok := dserClubID(c)
	if !ok {
		return
	}
	team, err := rs.clubs.Team(c, roleauth.Role(c), cid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

func (rs *resource) Roster(c *gin.Context) {
	cid, ok := dserClubID(c)
	if !ok {
		return
	}
	roster, err := rs.clubs.Roster(c, roleauth.Role(c), cid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, roster)
}

func (rs *resource) Update(c *gin.Context) {
	club := rs.DserUpdateReq(c)
	if club == nil {
		return
	}
	if err := rs.clubs.Update(c, roleauth.Role(c), *club); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *resource) UpdateMembership(c *gin.Context) {
	req := rs.DserUpdateMembershipReq(c)
	if req == nil {
		return
	}
	err := rs.clubs.UpdateMembership(
		c, roleauth.Role(c),
		req.MemberID, req.ClubID, req.Label, req.Active,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
