// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package clubsrs

import (
	"net/http"
	"time"

	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/serdser"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

func dserClubID(c *gin.Context) (uuid.UUID, bool) {
	cid, err := uuid.Parse(c.Param("cid"))
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "cid", "Path param cid is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return uuid.Nil, false
	}
	return cid, true
}

type rawSearchReq struct {
	Query string `form:"query" binding:"omitempty"`
	Limit int    `form:"limit" binding:"omitempty,gte=1,lte=100"`
}

type searchReq struct {
	Query string
	Limit int
}

func (rs *resource) DserSearchReq(c *gin.Context) *searchReq {
	req := &rawSearchReq{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return nil
	}
	if req.Limit == 0 {
		req.Limit = 20
	}
	return &searchReq{Query: req.Query, Limit: req.Limit}
}

type rawUpdateReq struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"omitempty,email"`
	Instagram    string `json:"instagram" binding:"omitempty"`
	Facebook     string `json:"facebook" binding:"omitempty"`
	Active       bool   `json:"active"`
	FoundingDate string `json:"foundingDate" binding:"required,datetime=2006-01-02"`
	DepartmentID string `json:"departmentId" binding:"omitempty,uuid"`
	Role         string `json:"role" binding:"omitempty"`
}

func (rs *resource) DserUpdateReq(c *gin.Context) *model.Club {
	cid, ok := dserClubID(c)
	if !ok {
		return nil
	}
	req := &rawUpdateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	var errs map[string][]string
	club := &model.Club{
		ID:        cid,
		Name:      req.Name,
		Email:     req.Email,
		Instagram: req.Instagram,
		Facebook:  req.Facebook,
		Active:    req.Active,
	}
	fd, err := time.Parse("2006-01-02", req.FoundingDate)
	if err != nil {
		serdser.AddErr(&errs, "foundingDate", err.Error())
	}
	club.FoundingDate = fd
	if req.DepartmentID != "" {
		did, err := uuid.Parse(req.DepartmentID)
		if err != nil {
			serdser.AddErr(&errs, "departmentId", err.Error())
		} else {
			club.DepartmentID = &did
		}
	}
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return club
}

type rawUpdateMembershipReq struct {
	Label  string `json:"label" binding:"required"`
	Active *bool  `json:"active" binding:"required"`
	Role   string `json:"role" binding:"omitempty"`
}

type updateMembershipReq struct {
	MemberID uuid.UUID
	ClubID   uuid.UUID
	Label    string
	Active   bool
}

func (rs *resource) DserUpdateMembershipReq(c *gin.Context) *updateMembershipReq {
	cid, ok := dserClubID(c)
	if !ok {
		return nil
	}
	mid, err := uuid.Parse(c.Param("mid"))
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "mid", "Path param mid is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	req := &rawUpdateMembershipReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &updateMembershipReq{
		MemberID: mid,
		ClubID:   cid,
		Label:    req.Label,
		Active:   *req.Active,
	}
}

type clubResp struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Instagram    string     `json:"instagram"`
	Facebook     string     `json:"facebook"`
	Active       bool       `json:"active"`
	FoundingDate string     `json:"foundingDate"`
	DepartmentID *uuid.UUID `json:"departmentId"`
	Department   string     `json:"department"`
}

func SerClub(c model.Club) clubResp {
	return clubResp{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Instagram:    c.Instagram,
		Facebook:     c.Facebook,
		Active:       c.Active,
		FoundingDate: c.FoundingDate.Format("2006-01-02"),
		DepartmentID: c.DepartmentID,
		Department:   c.Department,
	}
}

func SerClubs(cs []model.Club) []clubResp {
	resp := make([]clubResp, len(cs))
	for i, c := range cs {
		resp[i] = SerClub(c)
	}
	return resp
}
