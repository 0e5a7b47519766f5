// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package authrs

import (
	"net/http"

	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/serdser"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

type rawLoginReq struct {
	Username string `json:"username" binding:"required"`
}

type loginReq struct {
	Username string
}

func (rs *resource) DserLoginReq(c *gin.Context) *loginReq {
	req := &rawLoginReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &loginReq{Username: req.Username}
}

type rawClubContextReq struct {
	Username string `json:"username" binding:"required"`
	ClubID   string `json:"clubId" binding:"required,uuid"`
}

type clubContextReq struct {
	Username string
	ClubID   uuid.UUID
}

func (rs *resource) DserClubContextReq(c *gin.Context) *clubContextReq {
	req := &rawClubContextReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	cid, err := uuid.Parse(req.ClubID)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "clubId", "Field clubId is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return &clubContextReq{Username: req.Username, ClubID: cid}
}

type membershipResp struct {
	ClubID   uuid.UUID `json:"clubId"`
	ClubName string    `json:"clubName"`
	Label    string    `json:"label"`
	Active   bool      `json:"active"`
}

type sessionResp struct {
	MemberID    uuid.UUID        `json:"memberId"`
	DisplayName string           `json:"displayName"`
	Role        model.Role       `json:"role"`
	Memberships []membershipResp `json:"memberships"`
}

// SerSession flattens a session model for the wire. The memberships
// list is serialized as an empty array, not null, since clients
// iterate it unconditionally.
func SerSession(s *model.Session) sessionResp {
	resp := sessionResp{
		MemberID:    s.MemberID,
		DisplayName: s.DisplayName,
		Role:        s.Role,
		Memberships: make([]membershipResp, len(s.Memberships)),
	}
	for i, m := range s.Memberships {
		resp.Memberships[i] = membershipResp{
			ClubID:   m.ClubID,
			ClubName: m.ClubName,
			Label:    m.Label,
			Active:   m.Active,
		}
	}
	return resp
}
