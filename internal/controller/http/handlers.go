package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ibeloyar/courierdesk/internal/model"
)

func unauthorized(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}

func (c *Controller) GetState(w http.ResponseWriter, r *http.Request) {
	id, ok := riderID(r)
	if !ok {
		unauthorized(w)
		return
	}

	state, apiErr := c.service.GetState(r.Context(), id)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, state, http.StatusOK)
}

func (c *Controller) GetAssignments(w http.ResponseWriter, r *http.Request) {
	id, ok := riderID(r)
	if !ok {
		unauthorized(w)
		return
	}

	assignments, apiErr := c.service.GetAssignments(r.Context(), id)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, assignments, http.StatusOK)
}

func (c *Controller) AddAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := riderID(r)
	if !ok {
		unauthorized(w)
		return
	}

	body, err := readBody[model.Assignment](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if apiErr := c.service.AddAssignment(r.Context(), id, body); apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (c *Controller) SetAssignments(w http.ResponseWriter, r *http.Request) {
	id, ok := riderID(r)
	if !ok {
		unauthorized(w)
		return
	}

	body, err := readBody[[]model.Assignment](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if apiErr := c.service.SetAssignments(r.Context(), id, body); apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) AcceptAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := riderID(r)
	if !ok {
		unauthorized(w)
		return
	}

	order, apiErr := c.service.AcceptAssignment(r.Context(), id, chi.URLParam(r, "id"))
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, order, http.StatusOK)
}

func (c *Controller) GetCurrentOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := riderID(r)
	if !ok {
		unauthorized(w)
		return
	}

	order, apiErr := c.service.GetCurrentOrder(r.Context(), id)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	// активного заказа нет
	if order == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, order, http.StatusOK)
}

func (c *Controller) MarkPickedUp(w http.ResponseWriter, r *http.Request) {
	id, ok := riderID(r)
	if !ok {
		unauthorized(w)
		return
	}

	order, apiErr := c.service.MarkPickedUp(r.Context(), id)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, order, http.StatusOK)
}

func (c *Controller) MarkArrived(w http.ResponseWriter, r *http.Request) {
	id, ok := riderID(r)
	if !ok {
		unauthorized(w)
		return
	}

	order, apiErr := c.service.MarkArrived(r.Context(), id)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, order, http.StatusOK)
}

func (c *Controller) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	id, ok := riderID(r)
	if !ok {
		unauthorized(w)
		return
	}

	code, err := readOTPCode(r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if apiErr := c.service.VerifyOTP(r.Context(), id, code); apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) ToggleAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := riderID(r)
	if !ok {
		unauthorized(w)
		return
	}

	available, apiErr := c.service.ToggleAvailability(r.Context(), id)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, model.AvailabilityDTO{Availability: available}, http.StatusOK)
}

func (c *Controller) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := riderID(r)
	if !ok {
		unauthorized(w)
		return
	}

	body, err := readBody[model.LocationDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if apiErr := c.service.UpdateLocation(r.Context(), id, body); apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) GetEarnings(w http.ResponseWriter, r *http.Request) {
	id, ok := riderID(r)
	if !ok {
		unauthorized(w)
		return
	}

	earnings, apiErr := c.service.GetEarnings(r.Context(), id)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, earnings, http.StatusOK)
}

func (c *Controller) GetEarningsHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := riderID(r)
	if !ok {
		unauthorized(w)
		return
	}

	history, apiErr := c.service.GetEarningsHistory(r.Context(), id)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, history, http.StatusOK)
}
