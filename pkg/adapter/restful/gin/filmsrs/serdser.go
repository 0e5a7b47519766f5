// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package filmsrs

import (
	"net/http"

	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/serdser"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

type rawCastCredit struct {
	ActorID       string `json:"actorId" binding:"required,uuid"`
	CharacterName string `json:"characterName" binding:"omitempty"`
}

type rawAddFilmReq struct {
	Title       string          `json:"title" binding:"required"`
	Year        int             `json:"year" binding:"required,gte=1878"`
	TMDBLink    string          `json:"tmdbLink" binding:"omitempty,url"`
	LanguageIDs []string        `json:"languageIds" binding:"omitempty,dive,uuid"`
	DirectorIDs []string        `json:"directorIds" binding:"omitempty,dive,uuid"`
	Cast        []rawCastCredit `json:"cast" binding:"omitempty,dive"`
	Role        string          `json:"role" binding:"omitempty"`
}

func (rs *resource) DserAddFilmReq(c *gin.Context) *model.NewFilm {
	req := &rawAddFilmReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	var errs map[string][]string
	f := &model.NewFilm{
		Title:    req.Title,
		Year:     req.Year,
		TMDBLink: req.TMDBLink,
	}
	for _, s := range req.LanguageIDs {
		id, err := uuid.Parse(s)
		if err != nil {
			serdser.AddErr(&errs, "languageIds", err.Error())
			continue
		}
		f.LanguageIDs = append(f.LanguageIDs, id)
	}
	for _, s := range req.DirectorIDs {
		id, err := uuid.Parse(s)
		if err != nil {
			serdser.AddErr(&errs, "directorIds", err.Error())
			continue
		}
		f.DirectorIDs = append(f.DirectorIDs, id)
	}
	for _, cc := range req.Cast {
		id, err := uuid.Parse(cc.ActorID)
		if err != nil {
			serdser.AddErr(&errs, "cast", err.Error())
			continue
		}
		f.Cast = append(f.Cast, model.CastCredit{
			ActorID:       id,
			CharacterName: cc.CharacterName,
		})
	}
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return f
}

type rawAddPersonReq struct {
	Name     string `json:"name" binding:"required"`
	TMDBLink string `json:"tmdbLink" binding:"omitempty,url"`
	Role     string `json:"role" binding:"omitempty"`
}

type addPersonReq struct {
	Name     string
	TMDBLink string
}

func (rs *resource) DserAddPersonReq(c *gin.Context) *addPersonReq {
	req := &rawAddPersonReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &addPersonReq{Name: req.Name, TMDBLink: req.TMDBLink}
}

type rawUpdateLinkReq struct {
	TMDBLink string `json:"tmdbLink" binding:"required,url"`
	Role     string `json:"role" binding:"omitempty"`
}

type updateLinkReq struct {
	FilmID   uuid.UUID
	TMDBLink string
}

func (rs *resource) DserUpdateLinkReq(c *gin.Context) *updateLinkReq {
	fid, err := uuid.Parse(c.Param("fid"))
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "fid", "Path param fid is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	req := &rawUpdateLinkReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &updateLinkReq{FilmID: fid, TMDBLink: req.TMDBLink}
}

type filmResp struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Year     int       `json:"year"`
	TMDBLink string    `json:"tmdbLink"`
}

func SerFilms(fs []model.Film) []filmResp {
	resp := make([]filmResp, len(fs))
	for i, f := range fs {
		resp[i] = filmResp{
			ID:       f.ID,
			Title:    f.Title,
			Year:     f.Year,
			TMDBLink: f.TMDBLink,
		}
	}
	return resp
}

type personResp struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	TMDBLink string    `json:"tmdbLink"`
}

func SerDirectors(ds []model.Director) []personResp {
	resp := make([]personResp, len(ds))
	for i, d := range ds {
		resp[i] = personResp{ID: d.ID, Name: d.Name, TMDBLink: d.TMDBLink}
	}
	return resp
}

func SerActors(as []model.Actor) []personResp {
	resp := make([]personResp, len(as))
	for i, a := range as {
		resp[i] = personResp{ID: a.ID, Name: a.Name, TMDBLink: a.TMDBLink}
	}
	return resp
}
