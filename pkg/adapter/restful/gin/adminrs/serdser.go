// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package adminrs

import (
	"net/http"

	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/serdser"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

func dserPathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(
			&errs, name, "Path param "+name+" is not UUID.",
		)
		c.JSON(http.StatusBadRequest, errs)
		return uuid.Nil, false
	}
	return id, true
}

type rawCreateClubReq struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"omitempty,email"`
	DepartmentID string `json:"departmentId" binding:"omitempty,uuid"`
	Role         string `json:"role" binding:"omitempty"`
}

type createClubReq struct {
	Name         string
	Email        string
	DepartmentID *uuid.UUID
}

func (rs *resource) DserCreateClubReq(c *gin.Context) *createClubReq {
	req := &rawCreateClubReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	val := &createClubReq{Name: req.Name, Email: req.Email}
	if req.DepartmentID != "" {
		did, err := uuid.Parse(req.DepartmentID)
		if err != nil {
			var errs map[string][]string
			serdser.AddErr(&errs, "departmentId", err.Error())
			c.JSON(http.StatusBadRequest, errs)
			return nil
		}
		val.DepartmentID = &did
	}
	return val
}

type rawCreateVenueReq struct {
	Name         string `json:"name" binding:"required"`
	Details      string `json:"details" binding:"omitempty"`
	DepartmentID string `json:"departmentId" binding:"omitempty,uuid"`
	Role         string `json:"role" binding:"omitempty"`
}

type createVenueReq struct {
	Name         string
	Details      string
	DepartmentID *uuid.UUID
}

func (rs *resource) DserCreateVenueReq(c *gin.Context) *createVenueReq {
	req := &rawCreateVenueReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	val := &createVenueReq{Name: req.Name, Details: req.Details}
	if req.DepartmentID != "" {
		did, err := uuid.Parse(req.DepartmentID)
		if err != nil {
			var errs map[string][]string
			serdser.AddErr(&errs, "departmentId", err.Error())
			c.JSON(http.StatusBadRequest, errs)
			return nil
		}
		val.DepartmentID = &did
	}
	return val
}

type directoryEntryResp struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Instagram  string    `json:"instagram"`
	Facebook   string    `json:"facebook"`
	Superuser  bool      `json:"superuser"`
	Department string    `json:"department"`
	Clubs      []string  `json:"clubs"`
}

// SerDirectory serializes the member directory. The clubs list is an
// empty array for unaffiliated members, never null.
func SerDirectory(dir []model.DirectoryEntry) []directoryEntryResp {
	resp := make([]directoryEntryResp, len(dir))
	for i, e := range dir {
		clubs := e.Clubs
		if clubs == nil {
			clubs = []string{}
		}
		resp[i] = directoryEntryResp{
			ID:         e.ID,
			Name:       e.Name,
			Phone:      e.Phone,
			Instagram:  e.Instagram,
			Facebook:   e.Facebook,
			Superuser:  e.Superuser,
			Department: e.Department,
			Clubs:      clubs,
		}
	}
	return resp
}
