// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/filmclubs/fcweb/pkg/core/cerr"
	"github.com/filmclubs/fcweb/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, r := range model.AllRoles {
		parsed, err := model.ParseRole(string(r))
		require.NoError(t, err, "parsing canonical role %q", r)
		assert.Equal(t, r, parsed)
	}
	for _, s := range []string{"", "root", "Guest", "club_member"} {
		_, err := model.ParseRole(s)
		assert.Error(t, err, "parsing unknown role %q", s)
	}
}

func TestSatisfies(t *testing.T) {
	sat := func(r, min model.Role) {
		assert.True(t, r.Satisfies(min), "%q must satisfy %q", r, min)
	}
	unsat := func(r, min model.Role) {
		assert.False(
			t, r.Satisfies(min), "%q must not satisfy %q", r, min,
		)
	}
	for _, min := range model.AllRoles {
		sat(model.RoleDBAdministrator, min)
	}
	for _, min := range model.AllRoles {
		if min == model.RoleDBAdministrator {
			unsat(model.RoleClubAdmin, min)
			continue
		}
		sat(model.RoleClubAdmin, min)
	}
	for _, r := range []model.Role{
		model.RoleGuest,
		model.RoleClubMember,
		model.RoleContentManager,
		model.RoleEquipmentManager,
	} {
		for _, min := range model.AllRoles {
			if r == min {
				sat(r, min)
			} else {
				unsat(r, min)
			}
		}
	}
}

func TestOutranks(t *testing.T) {
	a := assert.New(t)
	a.True(model.RoleClubAdmin.Outranks(model.RoleContentManager))
	a.True(model.RoleClubMember.Outranks(model.RoleGuest))
	a.True(model.RoleDBAdministrator.Outranks(model.RoleClubAdmin))
	// same-rank parallel capabilities
	a.False(model.RoleContentManager.Outranks(model.RoleEquipmentManager))
	a.False(model.RoleEquipmentManager.Outranks(model.RoleContentManager))
	a.False(model.RoleGuest.Outranks(model.RoleGuest))
	a.False(model.RoleGuest.Outranks(model.RoleClubAdmin))
}

func TestReaches(t *testing.T) {
	a := assert.New(t)
	// both same-rank capability roles reach the member tier
	a.True(model.RoleContentManager.Reaches(model.RoleClubMember))
	a.True(model.RoleEquipmentManager.Reaches(model.RoleClubMember))
	a.True(model.RoleContentManager.Reaches(model.RoleEquipmentManager))
	a.True(model.RoleClubMember.Reaches(model.RoleClubMember))
	a.True(model.RoleDBAdministrator.Reaches(model.RoleClubAdmin))
	a.False(model.RoleGuest.Reaches(model.RoleClubMember))
	a.False(model.RoleClubMember.Reaches(model.RoleEquipmentManager))
}

func TestRequireTier(t *testing.T) {
	ctx := context.Background()
	for _, r := range []model.Role{
		model.RoleClubMember,
		model.RoleContentManager,
		model.RoleEquipmentManager,
		model.RoleClubAdmin,
		model.RoleDBAdministrator,
	} {
		err := model.RequireTier(ctx, r, model.RoleClubMember)
		assert.NoError(t, err, "role %q", r)
	}
	err := model.RequireTier(
		ctx, model.RoleGuest, model.RoleClubMember,
	)
	require.Error(t, err)
	var cerrErr *cerr.Error
	require.True(t, errors.As(err, &cerrErr))
	assert.Equal(t, http.StatusForbidden, cerrErr.HTTPStatusCode)
}

func TestRequire(t *testing.T) {
	ctx := context.Background()
	err := model.Require(ctx, model.RoleClubAdmin, model.RoleClubMember)
	assert.NoError(t, err)
	err = model.Require(
		ctx, model.RoleClubMember, model.RoleDBAdministrator,
	)
	require.Error(t, err)
	var cerrErr *cerr.Error
	require.True(t, errors.As(err, &cerrErr))
	assert.Equal(t, http.StatusForbidden, cerrErr.HTTPStatusCode)
}

func TestResolveRole(t *testing.T) {
	ctx := context.Background()
	a := assert.New(t)
	for label, want := range map[string]model.Role{
		"President":         model.RoleClubAdmin,
		"Vice President":    model.RoleClubAdmin,
		"Program Curator":   model.RoleContentManager,
		"Content Manager":   model.RoleContentManager,
		"Equipment Head":    model.RoleEquipmentManager,
		"Equipment Manager": model.RoleEquipmentManager,
		"Projectionist":     model.RoleEquipmentManager,
		"Member":            model.RoleClubMember,
		"Treasurer":         model.RoleClubMember,
		"Secretary":         model.RoleClubMember,
	} {
		a.Equal(want, model.ResolveRole(ctx, label, false), label)
	}
	// unmapped labels fail closed instead of failing the login
	a.Equal(
		model.RoleGuest, model.ResolveRole(ctx, "Archivist", false),
	)
	a.Equal(model.RoleGuest, model.ResolveRole(ctx, "", false))
	// a designated superuser overrides any label
	a.Equal(
		model.RoleDBAdministrator,
		model.ResolveRole(ctx, "Member", true),
	)
	a.Equal(
		model.RoleDBAdministrator, model.ResolveRole(ctx, "", true),
	)
}
