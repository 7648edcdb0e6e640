package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type deathData struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	UserID uint   `json:"user_id"`
}

func TestAdminSubmitPublishesDirectly(t *testing.T) {
	h := newTestRouter(t)
	admin := registerAs(t, h, "Admin", "admin@example.com", "admin")

	rec, env := submitDeath(t, h, admin, "X")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.OK)
	assert.Equal(t, "Death created successfully", env.Message)

	var d deathData
	require.NoError(t, json.Unmarshal(env.Data, &d))
	assert.Equal(t, "approved", d.Status)

	// visible in the admin listing
	rec, env = doJSON(t, h, http.MethodGet, "/deaths", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Deaths found successfully", env.Message)

	var all []deathData
	require.NoError(t, json.Unmarshal(env.Data, &all))
	require.Len(t, all, 1)
	assert.Equal(t, "X", all[0].Name)
}

func TestUserSubmitAwaitsApproval(t *testing.T) {
	h := newTestRouter(t)
	user := registerAs(t, h, "John Doe", "john@example.com", "")

	rec, env := submitDeath(t, h, user, "Y")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Death request created successfully. Awaiting admin approval.", env.Message)

	var d deathData
	require.NoError(t, json.Unmarshal(env.Data, &d))
	assert.Equal(t, "pending", d.Status)
	assert.NotZero(t, d.UserID)
}

func TestSubmitValidation(t *testing.T) {
	h := newTestRouter(t)
	user := registerAs(t, h, "John Doe", "john@example.com", "")

	rec, env := doJSON(t, h, http.MethodPost, "/deaths", user, map[string]string{
		"name":       "",
		"start_date": "January 1st",
		"end_date":   "2024-01-02",
		"profession": "",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Request didn't pass validation", env.Message)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "start_date")
	assert.Contains(t, fields, "profession")
}

func TestSubmitDuplicateName(t *testing.T) {
	h := newTestRouter(t)
	admin := registerAs(t, h, "Admin", "admin@example.com", "admin")
	user := registerAs(t, h, "John Doe", "john@example.com", "")

	rec, _ := submitDeath(t, h, user, "X")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := submitDeath(t, h, admin, "X")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	assert.Contains(t, fields, "name")
}

func TestSubmitRequiresToken(t *testing.T) {
	h := newTestRouter(t)

	rec, _ := submitDeath(t, h, "", "X")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRejectThenRedecide(t *testing.T) {
	h := newTestRouter(t)
	admin := registerAs(t, h, "Admin", "admin@example.com", "admin")
	user := registerAs(t, h, "John Doe", "john@example.com", "")

	_, env := submitDeath(t, h, user, "Y")
	var d deathData
	require.NoError(t, json.Unmarshal(env.Data, &d))

	path := fmt.Sprintf("/deaths/%d", d.ID)

	rec, env := doJSON(t, h, http.MethodPost, path, admin, map[string]string{"status": "rejected"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Death request rejected.", env.Message)
	require.NoError(t, json.Unmarshal(env.Data, &d))
	assert.Equal(t, "rejected", d.Status)

	// a decided record reads as missing on the second attempt
	rec, env = doJSON(t, h, http.MethodPost, path, admin, map[string]string{"status": "approved"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Death request not found or already processed.", env.Message)
}

func TestApproveMessage(t *testing.T) {
	h := newTestRouter(t)
	admin := registerAs(t, h, "Admin", "admin@example.com", "admin")
	user := registerAs(t, h, "John Doe", "john@example.com", "")

	_, env := submitDeath(t, h, user, "Z")
	var d deathData
	require.NoError(t, json.Unmarshal(env.Data, &d))

	rec, env := doJSON(t, h, http.MethodPost, fmt.Sprintf("/deaths/%d", d.ID), admin, map[string]string{"status": "approved"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Death request approved and added.", env.Message)

	// still exactly one record after approval
	_, env = doJSON(t, h, http.MethodGet, "/deaths", admin, nil)
	var all []deathData
	require.NoError(t, json.Unmarshal(env.Data, &all))
	require.Len(t, all, 1)
	assert.Equal(t, "approved", all[0].Status)
}

func TestDecideByNonAdmin(t *testing.T) {
	h := newTestRouter(t)
	user := registerAs(t, h, "John Doe", "john@example.com", "")

	_, env := submitDeath(t, h, user, "Y")
	var d deathData
	require.NoError(t, json.Unmarshal(env.Data, &d))

	rec, env := doJSON(t, h, http.MethodPost, fmt.Sprintf("/deaths/%d", d.ID), user, map[string]string{"status": "approved"})
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You are not authorized to approve/reject death requests.", env.Message)
}

func TestDecideInvalidStatus(t *testing.T) {
	h := newTestRouter(t)
	admin := registerAs(t, h, "Admin", "admin@example.com", "admin")
	user := registerAs(t, h, "John Doe", "john@example.com", "")

	_, env := submitDeath(t, h, user, "Y")
	var d deathData
	require.NoError(t, json.Unmarshal(env.Data, &d))

	rec, env := doJSON(t, h, http.MethodPost, fmt.Sprintf("/deaths/%d", d.ID), admin, map[string]string{"status": "maybe"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid status provided. It must be either 'approved' or 'rejected'.", env.Message)
}

func TestDecideUnknownRecord(t *testing.T) {
	h := newTestRouter(t)
	admin := registerAs(t, h, "Admin", "admin@example.com", "admin")

	rec, env := doJSON(t, h, http.MethodPost, "/deaths/9999", admin, map[string]string{"status": "approved"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Death request not found or already processed.", env.Message)
}

func TestListDeathsByNonAdmin(t *testing.T) {
	h := newTestRouter(t)
	user := registerAs(t, h, "John Doe", "john@example.com", "")

	rec, env := doJSON(t, h, http.MethodGet, "/deaths", user, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You are not authorized to view all deaths.", env.Message)
}
