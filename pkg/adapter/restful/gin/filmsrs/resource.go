// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package filmsrs realizes the films resource: the catalog searches
// backing the content management pickers and the catalog writes.
package filmsrs

import (
	"net/http"

	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/roleauth"
	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/serdser"
	"github.com/filmclubs/fcweb/pkg/core/usecase/filmsuc"
	"github.com/gin-gonic/gin"
)

type resource struct {
	films *filmsuc.UseCase
}

// Register instantiates a resource adapting the films use case
// instance with the relevant REST APIs including:
//  1. GET requests to /api/fcweb/v1/films, /directors, /actors, and
//     /languages in order to search the catalogs.
//  2. POST requests to the same paths in order to extend them.
//  3. PATCH request to /api/fcweb/v1/films/:fid
//     in order to fix a film's external database link.
func Register(r *gin.RouterGroup, films *filmsuc.UseCase) {
	rs := &resource{films: films}
	r.GET("films", rs.Search)
	r.GET("directors", rs.SearchDirectors)
	r.GET("actors", rs.SearchActors)
	r.GET("languages", rs.Languages)
	r.POST("films", rs.AddFilm)
	r.POST("directors", rs.AddDirector)
	r.POST("actors", rs.AddActor)
	r.PATCH("films/:fid", rs.UpdateLink)
}

func (rs *resource) Search(c *gin.Context) {
	fs, err := rs.films.Search(c, roleauth.Role(c), c.Query("query"))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerFilms(fs))
}

func (rs *resource) SearchDirectors(c *gin.Context) {
	ds, err := rs.films.SearchDirectors(
		c, roleauth.Role(c), c.Query("query"),
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerDirectors(ds))
}

func (rs *resource) SearchActors(c *gin.Context) {
	as, err := rs.films.SearchActors(
		c, roleauth.Role(c), c.Query("query"),
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerActors(as))
}

func (rs *resource) Languages(c *gin.Context) {
	ls, err := rs.films.Languages(c, roleauth.Role(c))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ls)
}

func (rs *resource) AddFilm(c *gin.Context) {
	req := rs.DserAddFilmReq(c)
	if req == nil {
		return
	}
	fid, err := rs.films.AddFilm(c, roleauth.Role(c), *req)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"filmId": fid})
}

func (rs *resource) AddDirector(c *gin.Context) {
	req := rs.DserAddPersonReq(c)
	if req == nil {
		return
	}
	did, err := rs.films.AddDirector(
		c, roleauth.Role(c), req.Name, req.TMDBLink,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"directorId": did})
}

func (rs *resource) AddActor(c *gin.Context) {
	req := rs.DserAddPersonReq(c)
	if req == nil {
		return
	}
	aid, err := rs.films.AddActor(
		c, roleauth.Role(c), req.Name, req.TMDBLink,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"actorId": aid})
}

func (rs *resource) UpdateLink(c *gin.Context) {
	req := rs.DserUpdateLinkReq(c)
	if req == nil {
		return
	}
	err := rs.films.UpdateLink(
		c, roleauth.Role(c), req.FilmID, req.TMDBLink,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
