package service

import (
	"math"
	"net/http"
	"time"

	"github.com/ibeloyar/courierdesk/internal/model"
)

const (
	minPassLen  = 4
	maxPassLen  = 64
	minLoginLen = 3
	maxLoginLen = 64
)

func validateLoginDTO(input model.LoginDTO) error {
	if err := validateLogin(input.Login); err != nil {
		return err
	}

	if err := validatePassword(input.Password); err != nil {
		return err
	}

	return nil
}

func validateRegisterDTO(input model.RegisterDTO) error {
	if err := validateLogin(input.Login); err != nil {
		return err
	}

	if err := validatePassword(input.Password); err != nil {
		return err
	}

	return nil
}

func validateLogin(login string) error {
	if len(login) < minLoginLen || len(login) > maxLoginLen {
		return model.ErrInvalidLoginOrPassword
	}

	return nil
}

func validatePassword(password string) error {
	if len(password) < minPassLen || len(password) > maxPassLen {
		return model.ErrInvalidLoginOrPassword
	}

	return nil
}

func validateAssignment(a model.Assignment) *model.APIError {
	if err := a.Validate(); err != nil {
		return &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrAssignmentInvalidMessage,
		}
	}

	return nil
}

// normalizeAssignment - срочность по умолчанию normal, время - момент добавления
func normalizeAssignment(a model.Assignment) model.Assignment {
	if a.Urgency == "" {
		a.Urgency = model.UrgencyNormal
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now()
	}

	return a
}

func validateLocation(input model.LocationDTO) *model.APIError {
	if math.IsNaN(input.Lat) || math.IsNaN(input.Lng) ||
		input.Lat < -90 || input.Lat > 90 ||
		input.Lng < -180 || input.Lng > 180 {
		return &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrInvalidLocationMessage,
		}
	}

	return nil
}
