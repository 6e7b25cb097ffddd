package handlers

import (
	"net/http"

	"smmehub_backend/internal/middleware"
	"smmehub_backend/internal/services"
	"smmehub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SocialHandler struct {
	*BaseHandler
	socialService services.SocialService
}

func NewSocialHandler(base *BaseHandler, socialService services.SocialService) *SocialHandler {
	return &SocialHandler{
		BaseHandler:   base,
		socialService: socialService,
	}
}

func (h *SocialHandler) RegisterRoutes(r *gin.RouterGroup) {
	social := r.Group("/social")
	social.Use(middleware.AuthMiddleware())
	{
		social.POST("/generate", h.Generate)
		social.GET("/posts", h.ListPosts)
	}
}

func (h *SocialHandler) Generate(c *gin.Context) {
	// The body is optional; an empty POST generates with defaults.
	var req dto.GenerateSocialPostsRequest
	if c.Request.ContentLength > 0 && !h.BindAndValidateJSON(c, &req) {
		return
	}

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	posts, err := h.socialService.Generate(c.Request.Context(), userID, req.Topic)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"posts": posts})
}

func (h *SocialHandler) ListPosts(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	posts, err := h.socialService.List(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}
