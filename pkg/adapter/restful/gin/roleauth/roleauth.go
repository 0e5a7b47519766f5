// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package roleauth extracts the role claim of each request and makes
// the effective canonical role available to the handlers. The claim
// is advisory: it selects which credential pool serves the request,
// while the SQL grants of that credential and the Require checks
// decide what the request may actually do. A client lying about its
// role can only obtain fewer privileges than it was entitled to,
// never more.
package roleauth

import (
	"bytes"
	"io"
	"net/http"

	"github.com/filmclubs/fcweb/pkg/adapter/restful/gin/serdser"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

// HeaderName carries the role claim. The header takes precedence over
// the `role` query parameter, which takes precedence over a `role`
// field in a JSON request body. A request with none of the three is
// served as a guest.
const HeaderName = "X-User-Role"

const roleKey = "fcweb.role"

// maxClaimBodyBytes bounds the body prefix which is inspected for a
// role claim. Bodies beyond this size cannot carry a claim anyway and
// must not be buffered wholesale.
const maxClaimBodyBytes = 1 << 20

// New creates the claim extraction middleware. Every route must run
// it, otherwise Role will panic for requests on that route.
func New() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := model.ParseRole(extractClaim(c))
		if err != nil {
			// Unknown claims fail closed to the guest tier.
			role = model.RoleGuest
		}
		c.Set(roleKey, role)
		c.Next()
	}
}

// Role returns the effective canonical role of the request. It panics
// if the New middleware did not run.
func Role(c *gin.Context) model.Role {
	return c.MustGet(roleKey).(model.Role)
}

// Require aborts the request with an authorization error unless the
// effective role satisfies the min role. Handlers behind it can still
// call model.Require themselves for finer-grained checks.
func Require(min model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := model.Require(c, Role(c), min); err != nil {
			serdser.SerErr(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// extractClaim returns the first present claim in precedence order:
// the header, then the query parameter, then the JSON body field.
// An empty string means no claim was made.
func extractClaim(c *gin.Context) string {
	if v := c.GetHeader(HeaderName); v != "" {
		return v
	}
	if v := c.Query("role"); v != "" {
		return v
	}
	return bodyClaim(c)
}

// bodyClaim peeks at a JSON request body for a top-level `role`
// field. The consumed bytes are restored, so the later binding of the
// body by the handler still sees the full payload.
func bodyClaim(c *gin.Context) string {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return ""
	}
	buf, err := io.ReadAll(io.LimitReader(
		c.Request.Body, maxClaimBodyBytes+1,
	))
	rest := c.Request.Body
	c.Request.Body = readCloser{
		Reader: io.MultiReader(bytes.NewReader(buf), rest),
		Closer: rest,
	}
	if err != nil || len(buf) > maxClaimBodyBytes {
		return ""
	}
	var payload struct {
		Role string `json:"role"`
	}
	if err := json.Unmarshal(buf, &payload); err != nil {
		return ""
	}
	return payload.Role
}

type readCloser struct {
	io.Reader
	io.Closer
}
