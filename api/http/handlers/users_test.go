package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahul370139/train-backend/pkg/users"
)

type userRepoStub struct {
	profiles  map[string]users.Profile
	upsertErr error
}

func (r *userRepoStub) Upsert(_ context.Context, p users.Profile) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	if r.profiles == nil {
		r.profiles = map[string]users.Profile{}
	}
	r.profiles[p.UserID] = p
	return nil
}

func (r *userRepoStub) Get(_ context.Context, userID string) (users.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return users.Profile{}, users.ErrNotFound
	}
	return p, nil
}

func userApp(repo users.Repository) *fiber.App {
	app := fiber.New()
	h := NewUserHandler(users.New(repo))
	app.Put("/api/users/:user_id/role", h.SetRole)
	app.Get("/api/users/:user_id/role", h.GetRole)
	return app
}

func TestSetRoleEndpoint(t *testing.T) {
	repo := &userRepoStub{}
	app := userApp(repo)

	resp, body := doJSON(t, app, http.MethodPut, "/api/users/u1/role",
		`{"role": "backend developer", "experience_level": "mid"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "backend developer", body["role"])

	stored, err := repo.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "mid", stored.ExperienceLevel)
}

func TestSetRoleEndpointValidation(t *testing.T) {
	app := userApp(&userRepoStub{})

	resp, body := doJSON(t, app, http.MethodPut, "/api/users/u1/role",
		`{"role": "backend developer", "experience_level": "guru"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["message"], "experience_level")
}

func TestSetRoleEndpointRepoFailure(t *testing.T) {
	app := userApp(&userRepoStub{upsertErr: errors.New("db down")})

	resp, body := doJSON(t, app, http.MethodPut, "/api/users/u1/role",
		`{"role": "backend developer"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "failed to store profile", body["message"])
	assert.NotContains(t, body["message"], "db down")
}

func TestGetRoleEndpointNotFound(t *testing.T) {
	app := userApp(&userRepoStub{})

	resp, _ := doJSON(t, app, http.MethodGet, "/api/users/u1/role", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
