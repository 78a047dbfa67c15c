package controllers

import (
	"net/http"

	"github.com/FookNaRak/ITFoodFlow/pkg/resp"
	"github.com/FookNaRak/ITFoodFlow/services"

	"github.com/gin-gonic/gin"
)

type ShopController struct{ Svc *services.ShopService }

func NewShopController(s *services.ShopService) *ShopController { return &ShopController{Svc: s} }

// GET /api/shops
func (h *ShopController) List(c *gin.Context) {
	shops, err := h.Svc.List()
	if err != nil {
		resp.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, shops)
}
