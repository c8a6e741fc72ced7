package http

import (
	"context"
	"net/http"

	"github.com/ibeloyar/courierdesk/internal/model"
	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, input model.RegisterDTO) (string, *model.APIError)
	Login(ctx context.Context, input model.LoginDTO) (string, *model.APIError)

	GetState(ctx context.Context, riderID int64) (*model.RiderState, *model.APIError)
	GetAssignments(ctx context.Context, riderID int64) ([]model.Assignment, *model.APIError)
	AddAssignment(ctx context.Context, riderID int64, input model.Assignment) *model.APIError
	SetAssignments(ctx context.Context, riderID int64, input []model.Assignment) *model.APIError
	AcceptAssignment(ctx context.Context, riderID int64, assignmentID string) (*model.ActiveOrder, *model.APIError)
	GetCurrentOrder(ctx context.Context, riderID int64) (*model.ActiveOrder, *model.APIError)
	MarkPickedUp(ctx context.Context, riderID int64) (*model.ActiveOrder, *model.APIError)
	MarkArrived(ctx context.Context, riderID int64) (*model.ActiveOrder, *model.APIError)
	VerifyOTP(ctx context.Context, riderID int64, code string) *model.APIError
	ToggleAvailability(ctx context.Context, riderID int64) (bool, *model.APIError)
	UpdateLocation(ctx context.Context, riderID int64, input model.LocationDTO) *model.APIError
	GetEarnings(ctx context.Context, riderID int64) (*model.Earnings, *model.APIError)
	GetEarningsHistory(ctx context.Context, riderID int64) ([]model.CompletedDelivery, *model.APIError)
}

type Controller struct {
	service Service
	lg      *zap.SugaredLogger
}

func New(s Service, lg *zap.SugaredLogger) *Controller {
	if lg == nil {
		lg = zap.NewNop().Sugar()
	}

	return &Controller{
		lg:      lg,
		service: s,
	}
}

func (c *Controller) Register(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.RegisterDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	bearerToken, apiErr := c.service.Register(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.Header().Set("Authorization", bearerToken)
	w.WriteHeader(http.StatusOK)
}

func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.LoginDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	bearerToken, apiErr := c.service.Login(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.Header().Set("Authorization", bearerToken)
	w.WriteHeader(http.StatusOK)
}
