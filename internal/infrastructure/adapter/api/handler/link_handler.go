package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// LinkHandler handles link purchase and management requests
type LinkHandler struct {
	linkUseCase usecase.LinkUseCase
	logger      coreport.Logger
}

// NewLinkHandler creates a new link handler instance
func NewLinkHandler(linkUseCase usecase.LinkUseCase, logger coreport.Logger) *LinkHandler {
	return &LinkHandler{
		linkUseCase: linkUseCase,
		logger:      logger,
	}
}

// Create handles POST /api/v1/links
func (h *LinkHandler) Create(c *gin.Context) {
	ownerID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	linkType, err := entity.ParseLinkType(req.Type)
	if err != nil {
		respondError(c, h.logger, "create_link", err)
		return
	}
	content, err := entity.DecodeContent(linkType, req.Content)
	if err != nil {
		respondError(c, h.logger, "create_link", err)
		return
	}

	platforms := req.PlatformCount
	if linkType.IsSocial() && platforms == 0 {
		platforms = entity.MinPlatforms
	}

	result, err := h.linkUseCase.Create(c.Request.Context(), ownerID, usecase.CreateLinkRequest{
		Name:          req.Name,
		Duration:      string(req.Duration),
		PlatformCount: platforms,
		Content:       content,
	})
	if err != nil {
		respondError(c, h.logger, "create_link", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewLinkPurchaseResponse(result))
}

// List handles GET /api/v1/links
func (h *LinkHandler) List(c *gin.Context) {
	ownerID, ok := requireUser(c)
	if !ok {
		return
	}

	views, err := h.linkUseCase.List(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, h.logger, "list_links", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": dto.NewLinkListResponse(views)})
}

// Get handles GET /api/v1/links/:id
func (h *LinkHandler) Get(c *gin.Context) {
	ownerID, ok := requireUser(c)
	if !ok {
		return
	}

	view, err := h.linkUseCase.Get(c.Request.Context(), c.Param("id"), ownerID)
	if err != nil {
		respondError(c, h.logger, "get_link", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewLinkResponse(view))
}

// Update handles PUT /api/v1/links/:id
func (h *LinkHandler) Update(c *gin.Context) {
	ownerID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	// The stored type selects the content variant to decode
	current, err := h.linkUseCase.Get(c.Request.Context(), c.Param("id"), ownerID)
	if err != nil {
		respondError(c, h.logger, "update_link", err)
		return
	}
	content, err := entity.DecodeContent(current.Link.Type, req.Content)
	if err != nil {
		respondError(c, h.logger, "update_link", err)
		return
	}

	view, err := h.linkUseCase.UpdateContent(c.Request.Context(), current.Link.ID, ownerID, req.Name, content)
	if err != nil {
		respondError(c, h.logger, "update_link", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewLinkResponse(view))
}

// Extend handles POST /api/v1/links/:id/extend
func (h *LinkHandler) Extend(c *gin.Context) {
	ownerID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.ExtendLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.linkUseCase.Extend(c.Request.Context(), c.Param("id"), ownerID, req.Weeks)
	if err != nil {
		respondError(c, h.logger, "extend_link", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewLinkPurchaseResponse(result))
}

// Delete handles DELETE /api/v1/links/:id
func (h *LinkHandler) Delete(c *gin.Context) {
	ownerID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.linkUseCase.Delete(c.Request.Context(), c.Param("id"), ownerID); err != nil {
		respondError(c, h.logger, "delete_link", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetPublic handles GET /api/v1/public/links/:publicId
func (h *LinkHandler) GetPublic(c *gin.Context) {
	view, err := h.linkUseCase.GetPublic(c.Request.Context(), c.Param("publicId"))
	if err != nil {
		respondError(c, h.logger, "get_public_link", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPublicLinkResponse(view))
}
