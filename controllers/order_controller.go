package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/FookNaRak/ITFoodFlow/pkg/resp"
	"github.com/FookNaRak/ITFoodFlow/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// GET /api/orders/:userID
func (h *OrderController) ListForUser(c *gin.Context) {
	userID, _ := strconv.Atoi(c.Param("userID"))

	orders, err := h.Svc.ListForUser(uint(userID))
	if err != nil {
		resp.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GET /api/tracking/:userID
func (h *OrderController) Track(c *gin.Context) {
	userID, _ := strconv.Atoi(c.Param("userID"))

	rows, err := h.Svc.Track(uint(userID))
	if err != nil {
		resp.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	// user ที่ไม่มี order ได้ [] ไม่ใช่ error
	c.JSON(http.StatusOK, rows)
}

// POST /api/orders — checkout ตะกร้าของ user
func (h *OrderController) Checkout(c *gin.Context) {
	var req struct {
		UserID uint `json:"userID" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	orderIDs, err := h.Svc.Checkout(req.UserID)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			resp.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		resp.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"orderIDs": orderIDs})
}
