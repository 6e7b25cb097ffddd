package handlers

import (
	"net/http"

	"smmehub_backend/internal/middleware"
	"smmehub_backend/internal/services"
	"smmehub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type VoucherHandler struct {
	*BaseHandler
	voucherService services.VoucherService
}

func NewVoucherHandler(base *BaseHandler, voucherService services.VoucherService) *VoucherHandler {
	return &VoucherHandler{
		BaseHandler:    base,
		voucherService: voucherService,
	}
}

func (h *VoucherHandler) RegisterRoutes(r *gin.RouterGroup) {
	vouchers := r.Group("/vouchers")
	vouchers.Use(middleware.AuthMiddleware())
	{
		vouchers.POST("/redeem", h.Redeem)
	}

	admin := r.Group("/admin/vouchers")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		admin.POST("/generate", h.Generate)
		admin.GET("", h.List)
	}
}

func (h *VoucherHandler) Redeem(c *gin.Context) {
	var req dto.RedeemVoucherRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	voucher, profile, err := h.voucherService.Redeem(c.Request.Context(), userID, req.Code)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"voucher": voucher,
		"profile": profile,
	})
}

func (h *VoucherHandler) Generate(c *gin.Context) {
	var req dto.GenerateVouchersRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	vouchers, err := h.voucherService.Generate(c.Request.Context(), req.Count)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"vouchers": vouchers})
}

func (h *VoucherHandler) List(c *gin.Context) {
	vouchers, err := h.voucherService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vouchers": vouchers})
}
