// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package adminrs realizes the administration resource: club and
// venue lifecycle, departments, and the member directory. The whole
// group sits behind the dbAdministrator gate middleware and the use
// case checks the role again before touching the database.
package adminrs

import (
	"net/http"

	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/roleauth"
	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/serdser"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/filmclubs/fcweb/pkg/core/usecase/adminuc"
	"github.com/gin-gonic/gin"
)

type resource struct {
	admin *adminuc.UseCase
}

// Register instantiates a resource adapting the administration use
// case instance with the relevant REST APIs including:
//  1. POST and DELETE requests to /api/fcweb/v1/clubs[/:cid]
//     in order to manage the clubs lifecycle.
//  2. GET request to /api/fcweb/v1/departments.
//  3. GET, POST, and DELETE requests to /api/fcweb/v1/venues[/:vid].
//  4. GET request to /api/fcweb/v1/members for the directory and
//     DELETE request to /api/fcweb/v1/members/:mid.
func Register(r *gin.RouterGroup, admin *adminuc.UseCase) {
	rs := &resource{admin: admin}
	g := r.Group("", roleauth.Require(model.RoleDBAdministrator))
	g.POST("clubs", rs.CreateClub)
	g.DELETE("clubs/:cid", rs.DeleteClub)
	g.GET("departments", rs.Departments)
	g.GET("venues", rs.Venues)
	g.POST("venues", rs.CreateVenue)
	g.DELETE("venues/:vid", rs.DeleteVenue)
	g.GET("members", rs.Directory)
	g.DELETE("members/:mid", rs.DeleteMember)
}

func (rs *resource) CreateClub(c *gin.Context) {
	req := rs.DserCreateClubReq(c)
	if req == nil {
		return
	}
	cid, err := rs.admin.CreateClub(
		c, roleauth.Role(c), req.Name, req.Email, req.DepartmentID,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"clubId": cid})
}

func (rs *resource) DeleteClub(c *gin.Context) {
	cid, ok := dserPathID(c, "cid")
	if !ok {
		return
	}
	if err := rs.admin.DeleteClub(c, roleauth.Role(c), cid); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *resource) Departments(c *gin.Context) {
	ds, err := rs.admin.Departments(c, roleauth.Role(c))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ds)
}

func (rs *resource) Venues(c *gin.Context) {
	vs, err := rs.admin.Venues(c, roleauth.Role(c))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, vs)
}

func (rs *resource) CreateVenue(c *gin.Context) {
	req := rs.DserCreateVenueReq(c)
	if req == nil {
		return
	}
	vid, err := rs.admin.CreateVenue(
		c, roleauth.Role(c), req.Name, req.Details, req.DepartmentID,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"venueId": vid})
}

func (rs *resource) DeleteVenue(c *gin.Context) {
	vid, ok := dserPathID(c, "vid")
	if !ok {
		return
	}
	if err := rs.admin.DeleteVenue(c, roleauth.Role(c), vid); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *resource) Directory(c *gin.Context) {
	dir, err := rs.admin.Directory(c, roleauth.Role(c))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerDirectory(dir))
}

func (rs *resource) DeleteMember(c *gin.Context) {
	mid, ok := dserPathID(c, "mid")
	if !ok {
		return
	}
	if err := rs.admin.DeleteMember(c, roleauth.Role(c), mid); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
