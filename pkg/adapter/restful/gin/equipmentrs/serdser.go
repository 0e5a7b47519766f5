// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package equipmentrs

import (
	"net/http"

	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/serdser"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

func dserEquipmentID(c *gin.Context) (uuid.UUID, bool) {
	eid, err := uuid.Parse(c.Param("eid"))
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "eid", "Path param eid is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return uuid.Nil, false
	}
	return eid, true
}

// dserClubIDs reads the repeated clubId query parameter. An inventory
// request names at least one club.
func dserClubIDs(c *gin.Context) ([]uuid.UUID, bool) {
	var errs map[string][]string
	raw := c.QueryArray("clubId")
	if len(raw) == 0 {
		serdser.AddErr(
			&errs, "clubId",
			"At least one clubId query param is required.",
		)
		c.JSON(http.StatusBadRequest, errs)
		return nil, false
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			serdser.AddErr(&errs, "clubId", err.Error())
			continue
		}
		ids = append(ids, id)
	}
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil, false
	}
	return ids, true
}

type rawAddReq struct {
	Name    string `json:"name" binding:"required"`
	Private bool   `json:"private"`
	ClubID  string `json:"clubId" binding:"required,uuid"`
	Role    string `json:"role" binding:"omitempty"`
}

type addReq struct {
	Name    string
	Private bool
	ClubID  uuid.UUID
}

func (rs *resource) DserAddReq(c *gin.Context) *addReq {
	req := &rawAddReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	cid, err := uuid.Parse(req.ClubID)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "clubId", err.Error())
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return &addReq{Name: req.Name, Private: req.Private, ClubID: cid}
}

type rawClubRefReq struct {
	ClubID string `json:"clubId" binding:"required,uuid"`
	Role   string `json:"role" binding:"omitempty"`
}

type clubRefReq struct {
	ClubID uuid.UUID
}

func (rs *resource) DserClubRefReq(c *gin.Context) *clubRefReq {
	req := &rawClubRefReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	cid, err := uuid.Parse(req.ClubID)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "clubId", err.Error())
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return &clubRefReq{ClubID: cid}
}

type rawReserveReq struct {
	ScreeningID string `json:"screeningId" binding:"required,uuid"`
	Role        string `json:"role" binding:"omitempty"`
}

type reserveReq struct {
	ScreeningID uuid.UUID
}

func (rs *resource) DserReserveReq(c *gin.Context) *reserveReq {
	req := &rawReserveReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	sid, err := uuid.Parse(req.ScreeningID)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "screeningId", err.Error())
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return &reserveReq{ScreeningID: sid}
}

type inventoryItemResp struct {
	ID       uuid.UUID   `json:"id"`
	Name     string      `json:"name"`
	Private  bool        `json:"private"`
	Owners   []string    `json:"owners"`
	OwnerIDs []uuid.UUID `json:"ownerIds"`
}

func SerInventory(items []model.InventoryItem) []inventoryItemResp {
	resp := make([]inventoryItemResp, len(items))
	for i, it := range items {
		resp[i] = inventoryItemResp{
			ID:       it.ID,
			Name:     it.Name,
			Private:  it.Private,
			Owners:   it.Owners,
			OwnerIDs: it.OwnerIDs,
		}
	}
	return resp
}
