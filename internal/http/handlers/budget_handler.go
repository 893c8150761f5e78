// README: Budget estimate handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/modules/budget"
	"tripmate/internal/types"
)

type BudgetHandler struct {
	users UserService
}

func NewBudgetHandler(users UserService) *BudgetHandler {
	return &BudgetHandler{users: users}
}

type budgetReq struct {
	UserID          string `json:"user_id"`
	Days            int    `json:"days"`
	Travelers       int    `json:"travelers"`
	DestinationType string `json:"destination_type"`
	Accommodation   string `json:"accommodation"`
	DailyStyle      string `json:"daily_style"`
}

// Estimate handles POST /api/budget.
func (h *BudgetHandler) Estimate(c *gin.Context) {
	var req budgetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.UserID == "" {
		writeError(c, http.StatusBadRequest, "missing user_id")
		return
	}
	if req.DestinationType == "" {
		req.DestinationType = "city"
	}
	if req.Accommodation == "" {
		req.Accommodation = "budget"
	}
	if req.DailyStyle == "" {
		req.DailyStyle = "thrifty"
	}
	if _, err := h.users.EnsureUser(c.Request.Context(), types.ID(req.UserID)); err != nil {
		writeServiceError(c, err)
		return
	}
	out, err := budget.Estimate(budget.Input{
		Days:            req.Days,
		Travelers:       req.Travelers,
		DestinationType: req.DestinationType,
		Accommodation:   req.Accommodation,
		DailyStyle:      req.DailyStyle,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, out)
}
