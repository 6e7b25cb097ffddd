package handlers

import (
	"net/http"

	"smmehub_backend/internal/middleware"
	"smmehub_backend/internal/models"
	"smmehub_backend/internal/services"
	"smmehub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type TenderHandler struct {
	*BaseHandler
	tenderService services.TenderService
}

func NewTenderHandler(base *BaseHandler, tenderService services.TenderService) *TenderHandler {
	return &TenderHandler{
		BaseHandler:   base,
		tenderService: tenderService,
	}
}

func (h *TenderHandler) RegisterRoutes(r *gin.RouterGroup) {
	tenders := r.Group("/tenders")
	tenders.Use(middleware.AuthMiddleware())
	{
		tenders.GET("", h.List)
		tenders.GET("/:id", h.Get)
		tenders.POST("/:id/bids", h.SubmitBid)
		tenders.GET("/:id/bids/me", h.GetMyBid)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		admin.GET("/tenders", h.List)
		admin.POST("/tenders", h.Create)
		admin.PATCH("/tenders/:id", h.Update)
		admin.GET("/tenders/:id/bids", h.ListBids)
		admin.PATCH("/bids/:id", h.UpdateBidStatus)
	}
}

func (h *TenderHandler) List(c *gin.Context) {
	tenders, err := h.tenderService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tenders": tenders})
}

func (h *TenderHandler) Get(c *gin.Context) {
	tender, err := h.tenderService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tender)
}

func (h *TenderHandler) Create(c *gin.Context) {
	var req dto.CreateTenderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	tender, err := h.tenderService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tender)
}

func (h *TenderHandler) Update(c *gin.Context) {
	var req dto.UpdateTenderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	tender, err := h.tenderService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tender)
}

func (h *TenderHandler) SubmitBid(c *gin.Context) {
	var req dto.SubmitBidRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	bid, err := h.tenderService.SubmitBid(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bid)
}

func (h *TenderHandler) GetMyBid(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	bid, err := h.tenderService.GetMyBid(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bid)
}

func (h *TenderHandler) ListBids(c *gin.Context) {
	bids, err := h.tenderService.ListBids(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bids": bids})
}

func (h *TenderHandler) UpdateBidStatus(c *gin.Context) {
	var req dto.UpdateBidStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	bid, err := h.tenderService.UpdateBidStatus(c.Param("id"), models.BidStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bid)
}
