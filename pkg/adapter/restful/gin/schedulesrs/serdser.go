// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schedulesrs

import (
	"net/http"
	"time"

	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/serdser"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

func dserScreeningID(c *gin.Context) (uuid.UUID, bool) {
	sid, err := uuid.Parse(c.Param("sid"))
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "sid", "Path param sid is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return uuid.Nil, false
	}
	return sid, true
}

type rawFeedFilter struct {
	Query  string `form:"query" binding:"omitempty"`
	Date   string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	ClubID string `form:"clubId" binding:"omitempty,uuid"`
}

func (rs *resource) DserFeedFilter(c *gin.Context) *model.FeedFilter {
	req := &rawFeedFilter{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return nil
	}
	f := &model.FeedFilter{Query: req.Query}
	if req.Date != "" {
		d, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			var errs map[string][]string
			serdser.AddErr(&errs, "date", err.Error())
			c.JSON(http.StatusBadRequest, errs)
			return nil
		}
		f.Date = &d
	}
	if req.ClubID != "" {
		cid, err := uuid.Parse(req.ClubID)
		if err != nil {
			var errs map[string][]string
			serdser.AddErr(&errs, "clubId", err.Error())
			c.JSON(http.StatusBadRequest, errs)
			return nil
		}
		f.ClubID = &cid
	}
	return f
}

type rawAddScreeningReq struct {
	At      time.Time `json:"at" binding:"required"`
	VenueID string    `json:"venueId" binding:"required,uuid"`
	FilmID  string    `json:"filmId" binding:"required,uuid"`
	ClubID  string    `json:"clubId" binding:"required,uuid"`
	Role    string    `json:"role" binding:"omitempty"`
}

func (rs *resource) DserAddScreeningReq(c *gin.Context) *model.NewScreening {
	req := &rawAddScreeningReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	var errs map[string][]string
	s := &model.NewScreening{At: req.At}
	var err error
	if s.VenueID, err = uuid.Parse(req.VenueID); err != nil {
		serdser.AddErr(&errs, "venueId", err.Error())
	}
	if s.FilmID, err = uuid.Parse(req.FilmID); err != nil {
		serdser.AddErr(&errs, "filmId", err.Error())
	}
	if s.ClubID, err = uuid.Parse(req.ClubID); err != nil {
		serdser.AddErr(&errs, "clubId", err.Error())
	}
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return s
}

type rawAddPostReq struct {
	Platform string `json:"platform" binding:"required"`
	Link     string `json:"link" binding:"required,url"`
	Role     string `json:"role" binding:"omitempty"`
}

type addPostReq struct {
	Platform string
	Link     string
}

func (rs *resource) DserAddPostReq(c *gin.Context) *addPostReq {
	req := &rawAddPostReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &addPostReq{Platform: req.Platform, Link: req.Link}
}

type feedEntryResp struct {
	ScreeningID uuid.UUID `json:"screeningId"`
	At          time.Time `json:"at"`
	FilmTitle   string    `json:"filmTitle"`
	Directors   string    `json:"directors"`
	VenueName   string    `json:"venueName"`
	ClubName    string    `json:"clubName"`
}

// SerFeed serializes the feed as an array, never null.
func SerFeed(feed []model.FeedEntry) []feedEntryResp {
	resp := make([]feedEntryResp, len(feed))
	for i, e := range feed {
		resp[i] = feedEntryResp{
			ScreeningID: e.ScreeningID,
			At:          e.At,
			FilmTitle:   e.FilmTitle,
			Directors:   e.Directors,
			VenueName:   e.VenueName,
			ClubName:    e.ClubName,
		}
	}
	return resp
}
