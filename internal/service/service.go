package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ibeloyar/courierdesk/internal/delivery"
	"github.com/ibeloyar/courierdesk/internal/model"
	"github.com/ibeloyar/courierdesk/internal/repository/password"
	"github.com/ibeloyar/courierdesk/pgk/auth"
)

type StorageRepo interface {
	CreateRider(ctx context.Context, rider model.Rider) (int64, error)
	GetRiderByLogin(ctx context.Context, login string) (*model.Rider, error)
	GetCompletedDeliveries(ctx context.Context, riderID int64) ([]model.CompletedDelivery, error)
}

type PasswordRepo interface {
	HashPassword(password string) (string, error)
	CheckPasswordHash(password, hash string) bool
}

type SessionHub interface {
	Session(ctx context.Context, riderID int64) (*delivery.Session, error)
}

type Service struct {
	storage  StorageRepo
	password PasswordRepo
	hub      SessionHub

	tokenSecret string
	tokenExp    time.Duration
}

func New(s StorageRepo, h SessionHub, passCost int, tokenExp time.Duration, tokenSecret string) *Service {
	return &Service{
		storage:  s,
		password: password.New(passCost),
		hub:      h,

		tokenExp:    tokenExp,
		tokenSecret: tokenSecret,
	}
}

func internalError() *model.APIError {
	return &model.APIError{
		Code:    http.StatusInternalServerError,
		Message: model.ErrInternalServerMessage,
	}
}

// toAPIError переводит ошибки сессии в HTTP-коды
func toAPIError(err error) *model.APIError {
	switch {
	case errors.Is(err, model.ErrAssignmentNotFound):
		return &model.APIError{Code: http.StatusNotFound, Message: model.ErrAssignmentNotFoundMessage}
	case errors.Is(err, model.ErrNoActiveOrder):
		return &model.APIError{Code: http.StatusConflict, Message: model.ErrNoActiveOrderMessage}
	case errors.Is(err, model.ErrOrderAlreadyActive):
		return &model.APIError{Code: http.StatusConflict, Message: model.ErrOrderAlreadyActiveMessage}
	case errors.Is(err, model.ErrInvalidTransition):
		return &model.APIError{Code: http.StatusConflict, Message: err.Error()}
	default:
		return internalError()
	}
}

func (s *Service) token(rider model.Rider) (string, *model.APIError) {
	token, err := auth.GenerateBearerToken(model.TokenInfo{
		ID:    rider.ID,
		Login: rider.Login,
	}, s.tokenExp, s.tokenSecret)
	if err != nil {
		return "", internalError()
	}

	return token, nil
}

func (s *Service) Login(ctx context.Context, input model.LoginDTO) (string, *model.APIError) {
	if err := validateLoginDTO(input); err != nil {
		return "", &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	rider, err := s.storage.GetRiderByLogin(ctx, input.Login)
	if err != nil {
		return "", internalError()
	}
	if rider == nil {
		return "", &model.APIError{
			Code:    http.StatusUnauthorized,
			Message: model.ErrInvalidLoginOrPasswordMessage,
		}
	}

	if !s.password.CheckPasswordHash(input.Password, rider.Password) {
		return "", &model.APIError{
			Code:    http.StatusUnauthorized,
			Message: model.ErrInvalidLoginOrPasswordMessage,
		}
	}

	return s.token(*rider)
}

func (s *Service) Register(ctx context.Context, input model.RegisterDTO) (string, *model.APIError) {
	if err := validateRegisterDTO(input); err != nil {
		return "", &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	passwordHash, err := s.password.HashPassword(input.Password)
	if err != nil {
		return "", internalError()
	}

	id, err := s.storage.CreateRider(ctx, model.Rider{
		Login:    input.Login,
		Password: passwordHash,
	})
	if err != nil {
		if errors.Is(err, model.ErrRiderAlreadyExist) {
			return "", &model.APIError{
				Code:    http.StatusConflict,
				Message: model.ErrRiderAlreadyExistMessage,
			}
		}
		return "", internalError()
	}

	return s.token(model.Rider{ID: id, Login: input.Login})
}

func (s *Service) session(ctx context.Context, riderID int64) (*delivery.Session, *model.APIError) {
	session, err := s.hub.Session(ctx, riderID)
	if err != nil {
		return nil, internalError()
	}

	return session, nil
}

func (s *Service) GetState(ctx context.Context, riderID int64) (*model.RiderState, *model.APIError) {
	session, apiErr := s.session(ctx, riderID)
	if apiErr != nil {
		return nil, apiErr
	}

	state := session.Snapshot()
	return &state, nil
}

func (s *Service) GetAssignments(ctx context.Context, riderID int64) ([]model.Assignment, *model.APIError) {
	session, apiErr := s.session(ctx, riderID)
	if apiErr != nil {
		return nil, apiErr
	}

	return session.Assignments(), nil
}

func (s *Service) AddAssignment(ctx context.Context, riderID int64, input model.Assignment) *model.APIError {
	if apiErr := validateAssignment(input); apiErr != nil {
		return apiErr
	}

	session, apiErr := s.session(ctx, riderID)
	if apiErr != nil {
		return apiErr
	}

	if err := session.AddAssignment(normalizeAssignment(input)); err != nil {
		return toAPIError(err)
	}

	return nil
}

func (s *Service) SetAssignments(ctx context.Context, riderID int64, input []model.Assignment) *model.APIError {
	list := make([]model.Assignment, 0, len(input))
	for _, a := range input {
		if apiErr := validateAssignment(a); apiErr != nil {
			return apiErr
		}
		list = append(list, normalizeAssignment(a))
	}

	session, apiErr := s.session(ctx, riderID)
	if apiErr != nil {
		return apiErr
	}

	if err := session.SetAssignments(list); err != nil {
		return toAPIError(err)
	}

	return nil
}

func (s *Service) AcceptAssignment(ctx context.Context, riderID int64, assignmentID string) (*model.ActiveOrder, *model.APIError) {
	session, apiErr := s.session(ctx, riderID)
	if apiErr != nil {
		return nil, apiErr
	}

	order, err := session.AcceptAssignment(assignmentID)
	if err != nil {
		return nil, toAPIError(err)
	}

	return &order, nil
}

// GetCurrentOrder - nil, nil если активного заказа нет
func (s *Service) GetCurrentOrder(ctx context.Context, riderID int64) (*model.ActiveOrder, *model.APIError) {
	session, apiErr := s.session(ctx, riderID)
	if apiErr != nil {
		return nil, apiErr
	}

	order, ok := session.CurrentOrder()
	if !ok {
		return nil, nil
	}

	return &order, nil
}

func (s *Service) MarkPickedUp(ctx context.Context, riderID int64) (*model.ActiveOrder, *model.APIError) {
	session, apiErr := s.session(ctx, riderID)
	if apiErr != nil {
		return nil, apiErr
	}

	order, err := session.MarkPickedUp()
	if err != nil {
		return nil, toAPIError(err)
	}

	return &order, nil
}

func (s *Service) MarkArrived(ctx context.Context, riderID int64) (*model.ActiveOrder, *model.APIError) {
	session, apiErr := s.session(ctx, riderID)
	if apiErr != nil {
		return nil, apiErr
	}

	order, err := session.MarkArrived()
	if err != nil {
		return nil, toAPIError(err)
	}

	return &order, nil
}

func (s *Service) VerifyOTP(ctx context.Context, riderID int64, code string) *model.APIError {
	session, apiErr := s.session(ctx, riderID)
	if apiErr != nil {
		return apiErr
	}

	ok, err := session.VerifyOTP(ctx, code)
	if err != nil {
		return toAPIError(err)
	}

	if !ok {
		return &model.APIError{
			Code:    http.StatusUnprocessableEntity,
			Message: model.ErrInvalidOTPMessage,
		}
	}

	return nil
}

func (s *Service) ToggleAvailability(ctx context.Context, riderID int64) (bool, *model.APIError) {
	session, apiErr := s.session(ctx, riderID)
	if apiErr != nil {
		return false, apiErr
	}

	available, err := session.ToggleAvailability()
	if err != nil {
		return available, toAPIError(err)
	}

	return available, nil
}

func (s *Service) UpdateLocation(ctx context.Context, riderID int64, input model.LocationDTO) *model.APIError {
	if apiErr := validateLocation(input); apiErr != nil {
		return apiErr
	}

	session, apiErr := s.session(ctx, riderID)
	if apiErr != nil {
		return apiErr
	}

	if err := session.UpdateLocation(input.Lat, input.Lng); err != nil {
		return toAPIError(err)
	}

	return nil
}

func (s *Service) GetEarnings(ctx context.Context, riderID int64) (*model.Earnings, *model.APIError) {
	session, apiErr := s.session(ctx, riderID)
	if apiErr != nil {
		return nil, apiErr
	}

	earnings := session.Earnings()
	return &earnings, nil
}

func (s *Service) GetEarningsHistory(ctx context.Context, riderID int64) ([]model.CompletedDelivery, *model.APIError) {
	history, err := s.storage.GetCompletedDeliveries(ctx, riderID)
	if err != nil {
		return nil, internalError()
	}

	if len(history) == 0 {
		return nil, &model.APIError{
			Code:    http.StatusNoContent,
			Message: model.ErrNoDeliveriesMessage,
		}
	}

	return history, nil
}
