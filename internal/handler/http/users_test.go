// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/campus-coffee/internal/config"
	"github.com/MKhiriev/campus-coffee/internal/logger"
	"github.com/MKhiriev/campus-coffee/internal/service"
	"github.com/MKhiriev/campus-coffee/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Fake UserService
// ─────────────────────────────────────────────

// fakeUserService implements service.UserService with overridable funcs.
// Unset funcs fail the call with errNotStubbed.
type fakeUserService struct {
	clear          func(ctx context.Context) error
	getAll         func(ctx context.Context) ([]models.User, error)
	getByID        func(ctx context.Context, id int64) (models.User, error)
	getByLoginName func(ctx context.Context, loginName string) (models.User, error)
	upsert         func(ctx context.Context, req models.UpsertRequest) (models.User, error)
	delete         func(ctx context.Context, id int64) error
}

var errNotStubbed = errors.New("not stubbed")

func (f *fakeUserService) Clear(ctx context.Context) error {
	if f.clear == nil {
		return errNotStubbed
	}
	return f.clear(ctx)
}

func (f *fakeUserService) GetAll(ctx context.Context) ([]models.User, error) {
	if f.getAll == nil {
		return nil, errNotStubbed
	}
	return f.getAll(ctx)
}

func (f *fakeUserService) GetByID(ctx context.Context, id int64) (models.User, error) {
	if f.getByID == nil {
		return models.User{}, errNotStubbed
	}
	return f.getByID(ctx, id)
}

func (f *fakeUserService) GetByLoginName(ctx context.Context, loginName string) (models.User, error) {
	if f.getByLoginName == nil {
		return models.User{}, errNotStubbed
	}
	return f.getByLoginName(ctx, loginName)
}

func (f *fakeUserService) Upsert(ctx context.Context, req models.UpsertRequest) (models.User, error) {
	if f.upsert == nil {
		return models.User{}, errNotStubbed
	}
	return f.upsert(ctx, req)
}

func (f *fakeUserService) Delete(ctx context.Context, id int64) error {
	if f.delete == nil {
		return errNotStubbed
	}
	return f.delete(ctx, id)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func sampleUser(id int64, login string) models.User {
	return models.User{
		ID: id,
		UserProfile: models.UserProfile{
			LoginName:    login,
			EmailAddress: login + "@example.com",
			FirstName:    "First",
			LastName:     "Last",
		},
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func newUsersHandler(users service.UserService) *Handler {
	return NewHandler(&service.Services{
		UserService:    users,
		AppInfoService: &mockAppInfoService{version: "test"},
	}, config.Server{}, logger.Nop())
}

func serve(h *Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func decodeUser(t *testing.T, rec *httptest.ResponseRecorder) models.User {
	t.Helper()
	var u models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	return u
}

const aliceBody = `{"login_name":"alice","email_address":"alice@example.com","first_name":"Alice","last_name":"Smith"}`

// ─────────────────────────────────────────────
// GET /api/users/
// ─────────────────────────────────────────────

func TestListUsers(t *testing.T) {
	h := newUsersHandler(&fakeUserService{
		getAll: func(context.Context) ([]models.User, error) {
			return []models.User{sampleUser(1, "alice"), sampleUser(2, "bob")}, nil
		},
	})

	rec := serve(h, http.MethodGet, "/api/users/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var users []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 2)
	assert.Equal(t, "bob", users[1].LoginName)
}

func TestListUsers_EmptyIsArray(t *testing.T) {
	h := newUsersHandler(&fakeUserService{
		getAll: func(context.Context) ([]models.User, error) { return nil, nil },
	})

	rec := serve(h, http.MethodGet, "/api/users/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListUsers_StorageFailure(t *testing.T) {
	h := newUsersHandler(&fakeUserService{
		getAll: func(context.Context) ([]models.User, error) { return nil, errors.New("db down") },
	})

	rec := serve(h, http.MethodGet, "/api/users/", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}

// ─────────────────────────────────────────────
// GET /api/users/{id}
// ─────────────────────────────────────────────

func TestGetUser(t *testing.T) {
	var gotID int64
	h := newUsersHandler(&fakeUserService{
		getByID: func(_ context.Context, id int64) (models.User, error) {
			gotID = id
			return sampleUser(id, "alice"), nil
		},
	})

	rec := serve(h, http.MethodGet, "/api/users/42", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gotID)

	u := decodeUser(t, rec)
	assert.Equal(t, int64(42), u.ID)
	assert.Equal(t, "alice", u.LoginName)
	assert.True(t, testTime.Equal(u.CreatedAt))
}

func TestGetUser_JSONShape(t *testing.T) {
	h := newUsersHandler(&fakeUserService{
		getByID: func(_ context.Context, id int64) (models.User, error) { return sampleUser(id, "alice"), nil },
	})

	rec := serve(h, http.MethodGet, "/api/users/1", "")

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	for _, key := range []string{"id", "login_name", "email_address", "first_name", "last_name", "created_at", "updated_at"} {
		assert.Contains(t, raw, key)
	}
}

func TestGetUser_Errors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		err    error
		status int
	}{
		{"not found", "/api/users/7", fmt.Errorf("wrapped: %w", service.ErrNotFound), http.StatusNotFound},
		{"non-numeric id", "/api/users/abc", nil, http.StatusBadRequest},
		{"unexpected failure", "/api/users/7", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newUsersHandler(&fakeUserService{
				getByID: func(context.Context, int64) (models.User, error) { return models.User{}, tt.err },
			})

			rec := serve(h, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// GET /api/users/filter
// ─────────────────────────────────────────────

func TestFindUserByLoginName(t *testing.T) {
	var gotLogin string
	h := newUsersHandler(&fakeUserService{
		getByLoginName: func(_ context.Context, login string) (models.User, error) {
			gotLogin = login
			return sampleUser(3, login), nil
		},
	})

	rec := serve(h, http.MethodGet, "/api/users/filter?login_name=Alice", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Alice", gotLogin)
	assert.Equal(t, "Alice", decodeUser(t, rec).LoginName)
}

func TestFindUserByLoginName_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"invalid login", service.ErrInvalidDataProvided, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newUsersHandler(&fakeUserService{
				getByLoginName: func(context.Context, string) (models.User, error) { return models.User{}, tt.err },
			})

			rec := serve(h, http.MethodGet, "/api/users/filter", "")

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// POST /api/users/
// ─────────────────────────────────────────────

func TestCreateUser(t *testing.T) {
	var got models.UpsertRequest
	h := newUsersHandler(&fakeUserService{
		upsert: func(_ context.Context, req models.UpsertRequest) (models.User, error) {
			got = req
			u := sampleUser(5, req.Profile.LoginName)
			u.UserProfile = req.Profile
			return u, nil
		},
	})

	rec := serve(h, http.MethodPost, "/api/users/", aliceBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/users/5", rec.Header().Get("Location"))
	assert.True(t, got.IsCreate())
	assert.Equal(t, models.UserProfile{
		LoginName:    "alice",
		EmailAddress: "alice@example.com",
		FirstName:    "Alice",
		LastName:     "Smith",
	}, got.Profile)
	assert.Equal(t, int64(5), decodeUser(t, rec).ID)
}

func TestCreateUser_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"duplicate login", aliceBody, service.ErrDuplication, http.StatusConflict},
		{"invalid profile", aliceBody, service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"malformed json", `{"login_name":`, nil, http.StatusBadRequest},
		{"id in body", `{"id":3,"login_name":"alice"}`, nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			h := newUsersHandler(&fakeUserService{
				upsert: func(context.Context, models.UpsertRequest) (models.User, error) {
					called = true
					return models.User{}, tt.err
				},
			})

			rec := serve(h, http.MethodPost, "/api/users/", tt.body)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.err != nil, called)
		})
	}
}

// ─────────────────────────────────────────────
// PUT /api/users/{id}
// ─────────────────────────────────────────────

func TestUpdateUser(t *testing.T) {
	var got models.UpsertRequest
	h := newUsersHandler(&fakeUserService{
		upsert: func(_ context.Context, req models.UpsertRequest) (models.User, error) {
			got = req
			id, _ := req.ID()
			return sampleUser(id, req.Profile.LoginName), nil
		},
	})

	rec := serve(h, http.MethodPut, "/api/users/9", aliceBody)

	require.Equal(t, http.StatusOK, rec.Code)
	id, existing := got.ID()
	assert.True(t, existing)
	assert.Equal(t, int64(9), id)
	assert.Equal(t, "alice", got.Profile.LoginName)
}

func TestUpdateUser_MatchingBodyID(t *testing.T) {
	h := newUsersHandler(&fakeUserService{
		upsert: func(_ context.Context, req models.UpsertRequest) (models.User, error) {
			id, _ := req.ID()
			return sampleUser(id, "alice"), nil
		},
	})

	rec := serve(h, http.MethodPut, "/api/users/9", `{"id":9,"login_name":"alice"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateUser_Errors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		err    error
		status int
	}{
		{"missing user", "/api/users/9", aliceBody, service.ErrNotFound, http.StatusNotFound},
		{"login taken", "/api/users/9", aliceBody, service.ErrDuplication, http.StatusConflict},
		{"invalid profile", "/api/users/9", aliceBody, service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"body id mismatch", "/api/users/9", `{"id":10,"login_name":"alice"}`, nil, http.StatusBadRequest},
		{"non-numeric id", "/api/users/nine", aliceBody, nil, http.StatusBadRequest},
		{"malformed json", "/api/users/9", `not json`, nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newUsersHandler(&fakeUserService{
				upsert: func(context.Context, models.UpsertRequest) (models.User, error) { return models.User{}, tt.err },
			})

			rec := serve(h, http.MethodPut, tt.path, tt.body)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// DELETE /api/users/{id}
// ─────────────────────────────────────────────

func TestDeleteUser(t *testing.T) {
	var gotID int64
	h := newUsersHandler(&fakeUserService{
		delete: func(_ context.Context, id int64) error {
			gotID = id
			return nil
		},
	})

	rec := serve(h, http.MethodDelete, "/api/users/4", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(4), gotID)
	assert.Zero(t, rec.Body.Len())
}

func TestDeleteUser_NotFound(t *testing.T) {
	h := newUsersHandler(&fakeUserService{
		delete: func(context.Context, int64) error { return service.ErrNotFound },
	})

	rec := serve(h, http.MethodDelete, "/api/users/4", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// Error mapping
// ─────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&service.NotFoundError{Entity: "user", Field: "id", Value: "1"}, http.StatusNotFound},
		{&service.DuplicationError{Entity: "user", Field: "login name", Value: "a"}, http.StatusConflict},
		{fmt.Errorf("%w: bad email", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{ErrInvalidUserID, http.StatusBadRequest},
		{ErrUserIDMismatch, http.StatusBadRequest},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFromError(tt.err), tt.err.Error())
	}
}
