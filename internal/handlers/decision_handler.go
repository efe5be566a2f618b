package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"preflop-decision-api/internal/services"
	"preflop-decision-api/pkg/lambda"
)

// DecisionHandler handles pre-flop decision requests
type DecisionHandler struct {
	decisionService services.DecisionService
}

// NewDecisionHandler creates a new decision handler
func NewDecisionHandler(decisionService services.DecisionService) *DecisionHandler {
	return &DecisionHandler{
		decisionService: decisionService,
	}
}

// @Summary Get a pre-flop decision
// @Description Ask the model for a pre-flop action given the table, seat, hand and action so far
// @Tags decisions
// @Produce json
// @Param players query string true "Number of players at the table"
// @Param position query string true "Hero seat, e.g. BTN"
// @Param hand query string true "Hole cards, e.g. AKo"
// @Param situation query string true "Action faced, e.g. facing open"
// @Param limpers query string false "Number of limpers"
// @Param openSize query string false "Open size in big blinds"
// @Param openPos query string false "Seat of the opener"
// @Param openCallers query string false "Callers of the open"
// @Param threeBetSize query string false "3-bet size in big blinds"
// @Param threeBetIP query string false "Whether the 3-bettor is in position"
// @Param threeBetCallers query string false "Callers of the 3-bet"
// @Param style query string false "Opponent style" Enums(aggressive, passive, standard) default(standard)
// @Param bluffing query string false "Opponent bluffing frequency" Enums(high, normal, low) default(normal)
// @Success 200 {object} models.Decision
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} DetailedErrorResponse
// @Failure 502 {object} DetailedErrorResponse
// @Router /api/decide [get]
func (h *DecisionHandler) Decide(c *gin.Context) {
	status, body := h.decide(c.Request.Context(), c.Request.URL.Query())
	c.JSON(status, body)
}

// HandleDecide handles decision requests for Lambda
func (h *DecisionHandler) HandleDecide(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	status, body := h.decide(ctx, req.Query())
	return lambda.JSONResponse(status, body)
}

func (h *DecisionHandler) decide(ctx context.Context, values url.Values) (int, interface{}) {
	decision, err := h.decisionService.Decide(ctx, services.ParseScenario(values))
	if err != nil {
		return errorResponse(err)
	}
	return http.StatusOK, decision
}
