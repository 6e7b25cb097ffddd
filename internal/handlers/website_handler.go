package handlers

import (
	"net/http"

	"smmehub_backend/internal/middleware"
	"smmehub_backend/internal/services"
	"smmehub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type WebsiteHandler struct {
	*BaseHandler
	websiteService services.WebsiteService
}

func NewWebsiteHandler(base *BaseHandler, websiteService services.WebsiteService) *WebsiteHandler {
	return &WebsiteHandler{
		BaseHandler:    base,
		websiteService: websiteService,
	}
}

func (h *WebsiteHandler) RegisterRoutes(r *gin.RouterGroup) {
	website := r.Group("/website")
	website.Use(middleware.AuthMiddleware())
	{
		website.POST("/generate", h.Generate)
		website.GET("/draft", h.GetDraft)
		website.POST("/publish", h.Publish)
	}
}

// RegisterPublicRoutes mounts the published-site lookup outside the API
// prefix so published URLs stay short.
func (h *WebsiteHandler) RegisterPublicRoutes(r *gin.Engine) {
	r.GET("/site/:slug", h.GetPublishedSite)
}

func (h *WebsiteHandler) Generate(c *gin.Context) {
	// The body is optional; an empty POST generates with default styling.
	var req dto.GenerateWebsiteRequest
	if c.Request.ContentLength > 0 && !h.BindAndValidateJSON(c, &req) {
		return
	}

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	draft, err := h.websiteService.Generate(c.Request.Context(), userID, req.Style)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *WebsiteHandler) GetDraft(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	draft, err := h.websiteService.Get(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *WebsiteHandler) Publish(c *gin.Context) {
	var req dto.PublishWebsiteRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	draft, err := h.websiteService.Publish(userID, req.Slug)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"draft": draft,
		"url":   "/site/" + req.Slug,
	})
}

func (h *WebsiteHandler) GetPublishedSite(c *gin.Context) {
	site, err := h.websiteService.GetPublished(c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, site)
}
