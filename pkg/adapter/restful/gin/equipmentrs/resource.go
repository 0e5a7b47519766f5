// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package equipmentrs realizes the equipment resource: the per-club
// inventory listing and the ownership and reservation management of
// the equipment manager pages.
package equipmentrs

import (
	"net/http"

	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/roleauth"
	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/serdser"
	"github.com/filmclubs/fcweb/pkg/core/usecase/equipmentuc"
	"github.com/gin-gonic/gin"
)

type resource struct {
	equipment *equipmentuc.UseCase
}

// Register instantiates a resource adapting the equipment use case
// instance with the relevant REST APIs including:
//  1. GET request to /api/fcweb/v1/equipment
//     in order to list the inventory of one or more clubs.
//  2. GET request to /api/fcweb/v1/equipment/:eid/non-owners
//     in order to list clubs which may still be offered co-ownership.
//  3. POST request to /api/fcweb/v1/equipment
//     in order to register an item with its first owner.
//  4. POST requests to /api/fcweb/v1/equipment/:eid/owners and
//     /reservations in order to share or reserve an item.
//  5. DELETE request to /api/fcweb/v1/equipment/:eid
//     in order to remove an item.
func Register(r *gin.RouterGroup, equipment *equipmentuc.UseCase) {
	rs := &resource{equipment: equipment}
	r.GET("equipment", rs.Inventory)
	r.GET("equipment/:eid/non-owners", rs.NonOwners)
	r.POST("equipment", rs.Add)
	r.POST("equipment/:eid/owners", rs.Share)
	r.POST("equipment/:eid/reservations", rs.Reserve)
	r.DELETE("equipment/:eid", rs.Delete)
}

func (rs *resource) Inventory(c *gin.Context) {
	clubIDs, ok := dserClubIDs(c)
	if !ok {
		return
	}
	items, err := rs.equipment.Inventory(c, roleauth.Role(c), clubIDs)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerInventory(items))
}

func (rs *resource) NonOwners(c *gin.Context) {
	eid, ok := dserEquipmentID(c)
	if !ok {
		return
	}
	refs, err := rs.equipment.NonOwners(
		c, roleauth.Role(c), eid, c.Query("query"),
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, refs)
}

func (rs *resource) Add(c *gin.Context) {
	req := rs.DserAddReq(c)
	if req == nil {
		return
	}
	eid, err := rs.equipment.Add(
		c, roleauth.Role(c), req.Name, req.Private, req.ClubID,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"equipmentId": eid})
}

func (rs *resource) Share(c *gin.Context) {
	eid, ok := dserEquipmentID(c)
	if !ok {
		return
	}
	req := rs.DserClubRefReq(c)
	if req == nil {
		return
	}
	err := rs.equipment.Share(c, roleauth.Role(c), eid, req.ClubID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *resource) Reserve(c *gin.Context) {
	eid, ok := dserEquipmentID(c)
	if !ok {
		return
	}
	req := rs.DserReserveReq(c)
	if req == nil {
		return
	}
	err := rs.equipment.Reserve(
		c, roleauth.Role(c), eid, req.ScreeningID,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *resource) Delete(c *gin.Context) {
	eid, ok := dserEquipmentID(c)
	if !ok {
		return
	}
	if err := rs.equipment.Delete(c, roleauth.Role(c), eid); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
