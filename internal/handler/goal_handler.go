package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mbrell/centsible/centsible-backend/internal/domain"
	"github.com/mbrell/centsible/centsible-backend/internal/service"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// GoalHandler handles saving-goal HTTP requests
type GoalHandler struct {
	ledgerService  *service.LedgerService
	metricsService *service.MetricsService
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(ledgerService *service.LedgerService, metricsService *service.MetricsService) *GoalHandler {
	return &GoalHandler{
		ledgerService:  ledgerService,
		metricsService: metricsService,
	}
}

// UpsertGoalRequest represents the create-or-edit goal request body. An id
// matching an existing goal edits it in place; otherwise a new goal is
// created.
type UpsertGoalRequest struct {
	ID      string  `json:"id,omitempty"`
	Name    string  `json:"name"`
	Target  string  `json:"target"`
	Current *string `json:"current,omitempty"`
	Color   string  `json:"color,omitempty"`
}

// ContributeRequest represents the contribution request body
type ContributeRequest struct {
	Amount string `json:"amount"`
}

// GoalResponse represents a saving goal in API responses
type GoalResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Target   string `json:"target"`
	Current  string `json:"current"`
	Color    string `json:"color"`
	Progress int    `json:"progress"`
}

// GoalListResponse wraps the goal collection
type GoalListResponse struct {
	Data []GoalResponse `json:"data"`
}

func (h *GoalHandler) toGoalResponse(g *domain.SavingGoal) GoalResponse {
	return GoalResponse{
		ID:       g.ID,
		Name:     g.Name,
		Target:   g.Target.StringFixed(2),
		Current:  g.Current.StringFixed(2),
		Color:    g.Color,
		Progress: h.metricsService.GoalProgress(g),
	}
}

// GetGoals lists all saving goals with their progress.
func (h *GoalHandler) GetGoals(c echo.Context) error {
	goals := h.ledgerService.Goals()

	resp := GoalListResponse{Data: make([]GoalResponse, len(goals))}
	for i, g := range goals {
		resp.Data[i] = h.toGoalResponse(g)
	}
	return c.JSON(http.StatusOK, resp)
}

// UpsertGoal creates a new goal or edits an existing one.
func (h *GoalHandler) UpsertGoal(c echo.Context) error {
	var req UpsertGoalRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	target, err := decimal.NewFromString(req.Target)
	if err != nil {
		return NewValidationError(c, "Invalid target", []ValidationError{
			{Field: "target", Message: "Must be a valid decimal number"},
		})
	}

	// A missing or unparsable saved amount defaults to zero rather than
	// failing the whole upsert.
	current := decimal.Zero
	if req.Current != nil {
		if parsed, err := decimal.NewFromString(*req.Current); err == nil {
			current = parsed
		}
	}

	goal, err := h.ledgerService.UpsertGoal(c.Request().Context(), service.UpsertGoalInput{
		ID:      req.ID,
		Name:    req.Name,
		Target:  target,
		Current: current,
		Color:   req.Color,
	})
	if err != nil {
		if domain.IsValidationError(err) {
			return NewValidationError(c, "Validation failed", validationFields(err))
		}
		log.Error().Err(err).Msg("Failed to upsert goal")
		return NewInternalError(c, "Failed to save goal")
	}

	status := http.StatusCreated
	if req.ID != "" && goal.ID == req.ID {
		status = http.StatusOK
	}
	return c.JSON(status, h.toGoalResponse(goal))
}

// DeleteGoal removes a goal; deleting an unknown id succeeds.
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	id := c.Param("id")
	if err := h.ledgerService.DeleteGoal(c.Request().Context(), id); err != nil {
		log.Error().Err(err).Str("goal_id", id).Msg("Failed to delete goal")
		return NewInternalError(c, "Failed to delete goal")
	}
	return c.NoContent(http.StatusNoContent)
}

// Contribute adds an amount to a goal's saved total, clamped at its target.
func (h *GoalHandler) Contribute(c echo.Context) error {
	id := c.Param("id")

	var req ContributeRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	goal, err := h.ledgerService.ContributeToGoal(c.Request().Context(), id, amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrGoalNotFound):
			return NewNotFoundError(c, "Goal not found")
		case domain.IsValidationError(err):
			return NewValidationError(c, "Validation failed", validationFields(err))
		default:
			log.Error().Err(err).Str("goal_id", id).Msg("Failed to contribute to goal")
			return NewInternalError(c, "Failed to contribute to goal")
		}
	}

	return c.JSON(http.StatusOK, h.toGoalResponse(goal))
}
