// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package roleauth_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/roleauth"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// extract runs the middleware against one request and reports the
// effective role it stored, plus the body as seen by the handler after
// the middleware possibly peeked at it.
func extract(t *testing.T, req *http.Request) (model.Role, string) {
	var role model.Role
	var body string
	e := gin.New()
	e.Use(roleauth.New())
	handle := func(c *gin.Context) {
		role = roleauth.Role(c)
		b, err := io.ReadAll(c.Request.Body)
		require.NoError(t, err)
		body = string(b)
		c.Status(http.StatusNoContent)
	}
	e.GET("/probe", handle)
	e.POST("/probe", handle)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
	return role, body
}

func TestClaimFromHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(roleauth.HeaderName, "contentManager")
	role, _ := extract(t, req)
	assert.Equal(t, model.RoleContentManager, role)
}

func TestClaimFromQuery(t *testing.T) {
	req := httptest.NewRequest(
		http.MethodGet, "/probe?role=clubMember", nil,
	)
	role, _ := extract(t, req)
	assert.Equal(t, model.RoleClubMember, role)
}

func TestClaimFromBody(t *testing.T) {
	payload := `{"role":"equipmentManager","note":"x"}`
	req := httptest.NewRequest(
		http.MethodPost, "/probe", strings.NewReader(payload),
	)
	req.Header.Set("Content-Type", "application/json")
	role, body := extract(t, req)
	assert.Equal(t, model.RoleEquipmentManager, role)
	// the peeked body must be restored for the handler's binding
	assert.Equal(t, payload, body)
}

func TestClaimPrecedence(t *testing.T) {
	t.Run("header beats query and body", func(t *testing.T) {
		req := httptest.NewRequest(
			http.MethodPost, "/probe?role=clubAdmin",
			strings.NewReader(`{"role":"dbAdministrator"}`),
		)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(roleauth.HeaderName, "clubMember")
		role, _ := extract(t, req)
		assert.Equal(t, model.RoleClubMember, role)
	})
	t.Run("query beats body", func(t *testing.T) {
		req := httptest.NewRequest(
			http.MethodPost, "/probe?role=contentManager",
			strings.NewReader(`{"role":"dbAdministrator"}`),
		)
		req.Header.Set("Content-Type", "application/json")
		role, _ := extract(t, req)
		assert.Equal(t, model.RoleContentManager, role)
	})
}

func TestForgedBodyClaimIgnoredUnderGuestHeader(t *testing.T) {
	// an explicit guest header pins the role; the body claim must not
	// escalate it
	req := httptest.NewRequest(
		http.MethodPost, "/probe",
		strings.NewReader(`{"role":"dbAdministrator"}`),
	)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(roleauth.HeaderName, "guest")
	role, _ := extract(t, req)
	assert.Equal(t, model.RoleGuest, role)
}

func TestUnknownAndMissingClaims(t *testing.T) {
	for name, req := range map[string]*http.Request{
		"no claim at all": httptest.NewRequest(
			http.MethodGet, "/probe", nil,
		),
		"unknown header claim": func() *http.Request {
			r := httptest.NewRequest(http.MethodGet, "/probe", nil)
			r.Header.Set(roleauth.HeaderName, "root")
			return r
		}(),
		"malformed body": func() *http.Request {
			r := httptest.NewRequest(
				http.MethodPost, "/probe", strings.NewReader("{oops"),
			)
			r.Header.Set("Content-Type", "application/json")
			return r
		}(),
		"non-JSON body": httptest.NewRequest(
			http.MethodPost, "/probe", strings.NewReader("role=admin"),
		),
	} {
		t.Run(name, func(t *testing.T) {
			role, _ := extract(t, req)
			assert.Equal(t, model.RoleGuest, role)
		})
	}
}

func TestRequireAborts(t *testing.T) {
	e := gin.New()
	e.Use(roleauth.New())
	reached := false
	e.DELETE(
		"/gated", roleauth.Require(model.RoleDBAdministrator),
		func(c *gin.Context) {
			reached = true
			c.Status(http.StatusNoContent)
		},
	)
	req := httptest.NewRequest(http.MethodDelete, "/gated", nil)
	req.Header.Set(roleauth.HeaderName, "clubMember")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, reached, "gated handler must not run")

	req = httptest.NewRequest(http.MethodDelete, "/gated", nil)
	req.Header.Set(roleauth.HeaderName, "dbAdministrator")
	w = httptest.NewRecorder()
	e.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, reached)
}
