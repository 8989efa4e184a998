package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AdminHandler serves operator routes
type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
	logger       coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(adminUseCase usecase.AdminUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		logger:       logger,
	}
}

// Grant handles POST /api/v1/admin/credit
func (h *AdminHandler) Grant(c *gin.Context) {
	adminID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.GrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.adminUseCase.Grant(c.Request.Context(), adminID, req.Email, req.Amount, req.Reason)
	if err != nil {
		respondError(c, h.logger, "admin_grant", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGrantResponse(result))
}

// Stats handles GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminUseCase.Stats(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "admin_stats", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStatsResponse(stats))
}
