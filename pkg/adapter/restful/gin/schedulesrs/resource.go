// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package schedulesrs realizes the screenings resource: the public
// schedule feed and details pages plus the scheduling and promotion
// writes of the content management pages.
package schedulesrs

import (
	"fmt"
	"net/http"

	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/roleauth"
	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/serdser"
	"github.com/filmclubs/fcweb/pkg/core/cerr"
	"github.com/filmclubs/fcweb/pkg/core/usecase/scheduleuc"
	"github.com/gin-gonic/gin"
)

type resource struct {
	schedule *scheduleuc.UseCase
}

// Register instantiates a resource adapting the schedule use case
// instance with the relevant REST APIs including:
//  1. GET request to /api/fcweb/v1/screenings
//     in order to browse the schedule feed.
//  2. GET request to /api/fcweb/v1/screenings/:sid
//     in order to read one screening's details.
//  3. POST request to /api/fcweb/v1/screenings
//     in order to schedule a screening.
//  4. POST request to /api/fcweb/v1/screenings/:sid/posts
//     in order to attach a promotion post.
func Register(r *gin.RouterGroup, schedule *scheduleuc.UseCase) {
	rs := &resource{schedule: schedule}
	r.GET("screenings", rs.Feed)
	r.GET("screenings/:sid", rs.Details)
	r.POST("screenings", rs.AddScreening)
	r.POST("screenings/:sid/posts", rs.AddPost)
}

func (rs *resource) Feed(c *gin.Context) {
	f := rs.DserFeedFilter(c)
	if f == nil {
		return
	}
	feed, err := rs.schedule.Feed(c, roleauth.Role(c), *f)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerFeed(feed))
}

func (rs *resource) Details(c *gin.Context) {
	sid, ok := dserScreeningID(c)
	if !ok {
		return
	}
	d, err := rs.schedule.Details(c, roleauth.Role(c), sid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	if d == nil {
		serdser.SerErr(c, cerr.NotFound(
			fmt.Errorf("no such screening"),
		))
		return
	}
	c.JSON(http.StatusOK, d)
}

func (rs *resource) AddScreening(c *gin.Context) {
	req := rs.DserAddScreeningReq(c)
	if req == nil {
		return
	}
	sid, err := rs.schedule.AddScreening(c, roleauth.Role(c), *req)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"screeningId": sid})
}

func (rs *resource) AddPost(c *gin.Context) {
	sid, ok := dserScreeningID(c)
	if !ok {
		return
	}
	req := rs.DserAddPostReq(c)
	if req == nil {
		return
	}
	pid, err := rs.schedule.AddPost(
		c, roleauth.Role(c), sid, req.Platform, req.Link,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"postId": pid})
}
