// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bitcomplete/sqltestutil"
	"github.com/filmclubs/fcweb/internal/test/dbcontainer"
	"github.com/filmclubs/fcweb/pkg/adapter/config"
	"github.com/filmclubs/fcweb/pkg/adapter/db/postgres"
	"github.com/filmclubs/fcweb/pkg/adapter/db/postgres/schemainit"
	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin"
	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/roleauth"
	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/routes"
	"github.com/filmclubs/fcweb/pkg/core/repo"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// singlePoolSet serves every role from one container pool. The
// container superuser stands in for all database principals, so these
// tests exercise the routing, claim extraction, and in-process gates
// rather than the SQL grants.
type singlePoolSet struct {
	pool *postgres.Pool
}

func (ps singlePoolSet) Get(role string) repo.Pool {
	return ps.pool
}

func (ps singlePoolSet) Lookup() repo.Pool {
	return ps.pool
}

func (ps singlePoolSet) Close() error {
	return nil // the container teardown closes the pool
}

type IntegrationGinTestSuite struct {
	suite.Suite

	Ctx  context.Context
	Pg   *sqltestutil.PostgresContainer
	Pool *postgres.Pool
	Gin  *gin.Engine
}

func TestIntegrationGinTestSuite(t *testing.T) {
	ctx := context.Background()
	pg, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	suite.Run(t, &IntegrationGinTestSuite{
		Ctx:  ctx,
		Pg:   pg,
		Pool: pool,
	})
}

func (igts *IntegrationGinTestSuite) SetupSuite() {
	err := igts.Pool.Conn(
		igts.Ctx, func(ctx context.Context, c repo.Conn) error {
			return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
				return schemainit.New(tx).InitDevSchema(ctx)
			})
		},
	)
	igts.Require().NoError(err, "failed to create schema contents")

	igts.Gin = gin.New(gin.Logger(), gin.Recovery())
	igts.Require().NotNil(igts.Gin, "cannot instantiate Gin engine")
	limit := 20
	c := &config.Config{}
	c.Usecases.Search.Limit = &limit
	err = routes.Register(
		igts.Ctx, igts.Gin, singlePoolSet{pool: igts.Pool}, c,
	)
	igts.Require().NoError(err, "failed to register Gin routes")
}

func (igts *IntegrationGinTestSuite) sendReqRecvResp(
	method, path, role string, body io.Reader, res any,
) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, err := http.NewRequest(method, "/api/fcweb/v1/"+path, body)
	igts.Require().NoError(err, "cannot create %s request", method)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		req.Header.Set(roleauth.HeaderName, role)
	}
	igts.Gin.ServeHTTP(w, req)
	if res != nil {
		b := w.Body.Bytes()
		igts.NoError(json.Unmarshal(b, res), "body is not json")
	}
	return w
}

type sessionResp struct {
	MemberID    uuid.UUID `json:"memberId"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
	Memberships []struct {
		ClubID   uuid.UUID `json:"clubId"`
		ClubName string    `json:"clubName"`
		Label    string    `json:"label"`
		Active   bool      `json:"active"`
	} `json:"memberships"`
}

func (igts *IntegrationGinTestSuite) TestLoginSuperuser() {
	res := &sessionResp{}
	w := igts.sendReqRecvResp(
		http.MethodPost, "sessions", "",
		strings.NewReader(`{"username":"alex"}`), res,
	)
	igts.Equal(200, w.Code)
	igts.Equal("alex", res.DisplayName)
	igts.Equal("dbAdministrator", res.Role)
	igts.NotNil(res.Memberships, "memberships must be an array")
	igts.Empty(res.Memberships)
}

func (igts *IntegrationGinTestSuite) TestLoginEquipmentHead() {
	res := &sessionResp{}
	w := igts.sendReqRecvResp(
		http.MethodPost, "sessions", "",
		strings.NewReader(`{"username":"omid"}`), res,
	)
	igts.Equal(200, w.Code)
	igts.Equal("equipmentManager", res.Role)
	igts.Require().Len(res.Memberships, 1)
	igts.Equal("Cinema Paradiso Club", res.Memberships[0].ClubName)
	igts.Equal("Equipment Head", res.Memberships[0].Label)
}

func (igts *IntegrationGinTestSuite) TestLoginUnknownPrincipal() {
	w := igts.sendReqRecvResp(
		http.MethodPost, "sessions", "",
		strings.NewReader(`{"username":"stranger"}`), nil,
	)
	igts.Equal(401, w.Code)
}

func (igts *IntegrationGinTestSuite) TestClubContext() {
	res := &struct {
		Role string `json:"role"`
	}{}
	w := igts.sendReqRecvResp(
		http.MethodPost, "sessions/club-context", "",
		strings.NewReader(`{
			"username": "sara",
			"clubId": "30000000-0000-4000-8000-000000000002"
		}`), res,
	)
	igts.Equal(200, w.Code)
	// Program Curator in the first club, plain Member in this one
	igts.Equal("clubMember", res.Role)
}

type clubResp struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func (igts *IntegrationGinTestSuite) TestClubsListing() {
	res := &[]clubResp{}
	w := igts.sendReqRecvResp(http.MethodGet, "clubs", "", nil, res)
	igts.Equal(200, w.Code)
	names := make([]string, 0, len(*res))
	for _, c := range *res {
		names = append(names, c.Name)
	}
	igts.Contains(names, "Cinema Paradiso Club")
	igts.Contains(names, "Nouvelle Vague Society")
}

func (igts *IntegrationGinTestSuite) TestScheduleFeed() {
	res := &[]struct {
		ScreeningID uuid.UUID `json:"screeningId"`
		FilmTitle   string    `json:"filmTitle"`
	}{}
	w := igts.sendReqRecvResp(http.MethodGet, "screenings", "", nil, res)
	igts.Equal(200, w.Code)
	igts.NotEmpty(*res, "the dev seed schedules screenings")
}

func (igts *IntegrationGinTestSuite) TestEquipmentInventoryForManager() {
	// the manager who maintains the inventory must be able to list it
	res := &[]struct {
		ID   uuid.UUID `json:"id"`
		Name string    `json:"name"`
	}{}
	w := igts.sendReqRecvResp(
		http.MethodGet,
		"equipment?clubId=30000000-0000-4000-8000-000000000001",
		"equipmentManager", nil, res,
	)
	igts.Equal(200, w.Code)
	names := make([]string, 0, len(*res))
	for _, item := range *res {
		names = append(names, item.Name)
	}
	igts.Contains(names, "4K Projector")
	igts.Contains(names, "Archive Hard Drive")
}

func (igts *IntegrationGinTestSuite) TestFilmWithDanglingCreditNotPersisted() {
	// the film row and all of its links land in one transaction; when
	// the last credit names an unknown actor, the foreign key rejects
	// it and the film row itself must not survive
	title := "The Reel That Never Was"
	w := igts.sendReqRecvResp(
		http.MethodPost, "films", "contentManager",
		strings.NewReader(`{
			"title": "`+title+`",
			"year": 1971,
			"languageIds": ["80000000-0000-4000-8000-000000000004"],
			"directorIds": ["60000000-0000-4000-8000-000000000002"],
			"cast": [
				{
					"actorId": "70000000-0000-4000-8000-000000000002",
					"characterName": "Lead"
				},
				{
					"actorId": "`+uuid.New().String()+`",
					"characterName": "Ghost"
				}
			]
		}`), nil,
	)
	igts.Equal(409, w.Code, "a dangling credit is an integrity conflict")

	res := &[]struct {
		Title string `json:"title"`
	}{}
	w = igts.sendReqRecvResp(
		http.MethodGet, "films?query=Reel+That+Never", "", nil, res,
	)
	igts.Equal(200, w.Code)
	igts.Empty(*res, "the rejected film must not be persisted")
}

func (igts *IntegrationGinTestSuite) TestDeleteClubForbidden() {
	// a clubMember claim must be rejected before any row is touched
	w := igts.sendReqRecvResp(
		http.MethodDelete,
		"clubs/30000000-0000-4000-8000-000000000001",
		"clubMember", nil, nil,
	)
	igts.Equal(403, w.Code)

	res := &[]clubResp{}
	w = igts.sendReqRecvResp(http.MethodGet, "clubs", "", nil, res)
	igts.Equal(200, w.Code)
	found := false
	for _, c := range *res {
		if c.Name == "Cinema Paradiso Club" {
			found = true
		}
	}
	igts.True(found, "the denied delete must not remove the club")
}

func (igts *IntegrationGinTestSuite) TestCreateAndDeleteClub() {
	res := &struct {
		ID uuid.UUID `json:"clubId"`
	}{}
	w := igts.sendReqRecvResp(
		http.MethodPost, "clubs", "dbAdministrator",
		strings.NewReader(`{
			"name": "Ephemeral Film Circle",
			"email": "ephemeral@example.edu"
		}`), res,
	)
	igts.Require().Equal(201, w.Code)
	igts.NotEqual(uuid.Nil, res.ID)

	w = igts.sendReqRecvResp(
		http.MethodDelete, "clubs/"+res.ID.String(),
		"dbAdministrator", nil, nil,
	)
	igts.Equal(204, w.Code)

	w = igts.sendReqRecvResp(
		http.MethodDelete, "clubs/"+res.ID.String(),
		"dbAdministrator", nil, nil,
	)
	igts.Equal(404, w.Code, "the club is already gone")
}
