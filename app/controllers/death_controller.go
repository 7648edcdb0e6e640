package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"death-registry/app/dto"
	"death-registry/app/middleware"
	"death-registry/app/models"
	"death-registry/app/services"

	validation "github.com/go-ozzo/ozzo-validation"
)

type DeathController struct{ Deaths *services.DeathService }

func NewDeathController(deaths *services.DeathService) *DeathController {
	return &DeathController{Deaths: deaths}
}

// Store submits a record. Admins publish directly; everyone else queues a
// pending request for review.
func (c *DeathController) Store(w http.ResponseWriter, r *http.Request) {
	actor := middleware.CurrentUser(r.Context())
	var req dto.DeathRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := req.Validate(); err != nil {
		respondFail(w, http.StatusBadRequest, msgValidationFailed, err)
		return
	}
	result, err := c.Deaths.Submit(req, actor.ID)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			respondFail(w, http.StatusBadRequest, msgValidationFailed, verrs)
			return
		}
		respondFail(w, http.StatusInternalServerError, "Could not create death record", nil)
		return
	}
	if result.Published {
		respondOK(w, http.StatusCreated, "Death created successfully", result.Death)
		return
	}
	respondOK(w, http.StatusCreated, "Death request created successfully. Awaiting admin approval.", result.Death)
}

// Update applies an admin decision to a pending record.
func (c *DeathController) Update(w http.ResponseWriter, r *http.Request) {
	actor := middleware.CurrentUser(r.Context())
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		respondFail(w, http.StatusNotFound, "Death request not found or already processed.", nil)
		return
	}
	var req dto.DecisionRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	d, err := c.Deaths.Decide(uint(id), req.Status, actor)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.Is(err, services.ErrForbidden):
			respondFail(w, http.StatusForbidden, "You are not authorized to approve/reject death requests.", nil)
		case errors.As(err, &verrs):
			respondFail(w, http.StatusBadRequest, "Invalid status provided. It must be either 'approved' or 'rejected'.", verrs)
		case errors.Is(err, services.ErrNotFound):
			respondFail(w, http.StatusNotFound, "Death request not found or already processed.", nil)
		default:
			respondFail(w, http.StatusInternalServerError, "Could not update death request", nil)
		}
		return
	}
	msg := "Death request rejected."
	if d.Status == models.StatusApproved {
		msg = "Death request approved and added."
	}
	respondOK(w, http.StatusOK, msg, d)
}

// Index lists every record, admins only.
func (c *DeathController) Index(w http.ResponseWriter, r *http.Request) {
	actor := middleware.CurrentUser(r.Context())
	deaths, err := c.Deaths.ListAll(actor)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			respondFail(w, http.StatusForbidden, "You are not authorized to view all deaths.", nil)
			return
		}
		respondFail(w, http.StatusInternalServerError, "Could not list deaths", nil)
		return
	}
	respondOK(w, http.StatusOK, "Deaths found successfully", deaths)
}
