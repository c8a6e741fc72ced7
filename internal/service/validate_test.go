package service

import (
	"math"
	"net/http"
	"strings"
	"testing"

	"github.com/ibeloyar/courierdesk/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLoginDTO_Valid(t *testing.T) {
	err := validateLoginDTO(model.LoginDTO{
		Login:    "rider123",
		Password: "pass1234",
	})
	require.NoError(t, err)
}

func TestValidateLoginDTO_ShortLogin(t *testing.T) {
	err := validateLoginDTO(model.LoginDTO{
		Login:    "ab",
		Password: "pass1234",
	})
	require.ErrorIs(t, err, model.ErrInvalidLoginOrPassword)
}

func TestValidateRegisterDTO_Valid(t *testing.T) {
	err := validateRegisterDTO(model.RegisterDTO{
		Login:    "rider123",
		Password: "pass1234",
	})
	require.NoError(t, err)
}

func TestValidateRegisterDTO_ShortPassword(t *testing.T) {
	err := validateRegisterDTO(model.RegisterDTO{
		Login:    "rider123",
		Password: "123",
	})
	require.ErrorIs(t, err, model.ErrInvalidLoginOrPassword)
}

func TestValidateLogin_Valid(t *testing.T) {
	tests := []string{
		"abc",
		"rider123",
		strings.Repeat("x", 64),
	}
	for _, login := range tests {
		t.Run(login, func(t *testing.T) {
			err := validateLogin(login)
			require.NoError(t, err)
		})
	}
}

func TestValidateLogin_Invalid(t *testing.T) {
	tests := []string{
		"",
		"ab",
		strings.Repeat("x", 65),
	}
	for _, login := range tests {
		t.Run(login, func(t *testing.T) {
			err := validateLogin(login)
			require.ErrorIs(t, err, model.ErrInvalidLoginOrPassword)
		})
	}
}

func TestValidatePassword_Valid(t *testing.T) {
	tests := []string{
		"pass",
		"password123",
		strings.Repeat("x", 64),
	}
	for _, pwd := range tests {
		t.Run(pwd, func(t *testing.T) {
			err := validatePassword(pwd)
			require.NoError(t, err)
		})
	}
}

func TestValidatePassword_Invalid(t *testing.T) {
	tests := []string{
		"",
		"123",
		strings.Repeat("x", 65),
	}
	for _, pwd := range tests {
		t.Run(pwd, func(t *testing.T) {
			err := validatePassword(pwd)
			require.ErrorIs(t, err, model.ErrInvalidLoginOrPassword)
		})
	}
}

func TestValidateAssignment(t *testing.T) {
	valid := model.Assignment{ID: "job_1", Items: 2, Payout: 45.50, Urgency: model.UrgencyHigh}

	tests := []struct {
		name    string
		mutate  func(a *model.Assignment)
		wantErr bool
	}{
		{name: "valid", mutate: func(*model.Assignment) {}},
		{name: "empty urgency", mutate: func(a *model.Assignment) { a.Urgency = "" }},
		{name: "zero payout", mutate: func(a *model.Assignment) { a.Payout = 0 }},
		{name: "empty id", mutate: func(a *model.Assignment) { a.ID = "  " }, wantErr: true},
		{name: "zero items", mutate: func(a *model.Assignment) { a.Items = 0 }, wantErr: true},
		{name: "negative payout", mutate: func(a *model.Assignment) { a.Payout = -1 }, wantErr: true},
		{name: "nan payout", mutate: func(a *model.Assignment) { a.Payout = math.NaN() }, wantErr: true},
		{name: "unknown urgency", mutate: func(a *model.Assignment) { a.Urgency = "asap" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid
			tt.mutate(&a)

			apiErr := validateAssignment(a)
			if !tt.wantErr {
				assert.Nil(t, apiErr)
				return
			}

			require.NotNil(t, apiErr)
			assert.Equal(t, http.StatusBadRequest, apiErr.Code)
			assert.Equal(t, model.ErrAssignmentInvalidMessage, apiErr.Message)
		})
	}
}

func TestNormalizeAssignment(t *testing.T) {
	a := normalizeAssignment(model.Assignment{ID: "job_1"})

	assert.Equal(t, model.UrgencyNormal, a.Urgency)
	assert.False(t, a.Timestamp.IsZero())

	b := normalizeAssignment(model.Assignment{ID: "job_2", Urgency: model.UrgencyLow})
	assert.Equal(t, model.UrgencyLow, b.Urgency)
}

func TestValidateLocation(t *testing.T) {
	tests := []struct {
		name    string
		input   model.LocationDTO
		wantErr bool
	}{
		{name: "valid", input: model.LocationDTO{Lat: 55.75, Lng: 37.61}},
		{name: "bounds", input: model.LocationDTO{Lat: -90, Lng: 180}},
		{name: "lat too big", input: model.LocationDTO{Lat: 91, Lng: 0}, wantErr: true},
		{name: "lng too small", input: model.LocationDTO{Lat: 0, Lng: -181}, wantErr: true},
		{name: "nan", input: model.LocationDTO{Lat: math.NaN(), Lng: 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := validateLocation(tt.input)
			if tt.wantErr {
				require.NotNil(t, apiErr)
				assert.Equal(t, http.StatusBadRequest, apiErr.Code)
				return
			}
			assert.Nil(t, apiErr)
		})
	}
}
