package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles account-related HTTP requests
type UserHandler struct {
	userUseCase  usecase.UserUseCase
	bonusUseCase usecase.BonusUseCase
	logger       coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	bonusUseCase usecase.BonusUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase:  userUseCase,
		bonusUseCase: bonusUseCase,
		logger:       logger,
	}
}

// Me handles GET /api/v1/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	user, err := h.userUseCase.Profile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "profile", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProfileResponse(user))
}

// SetNotifications handles POST /api/v1/me/notifications
func (h *UserHandler) SetNotifications(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.NotificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	user, err := h.userUseCase.SetNotifications(c.Request.Context(), userID, *req.Enabled)
	if err != nil {
		respondError(c, h.logger, "set_notifications", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProfileResponse(user))
}

// ClaimBonus handles POST /api/v1/messaging/claim
func (h *UserHandler) ClaimBonus(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.bonusUseCase.Claim(c.Request.Context(), userID, req.MessagingID)
	if err != nil {
		respondError(c, h.logger, "claim_bonus", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewClaimResponse(result))
}
