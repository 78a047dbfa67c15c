package controllers

import (
	"net/http"
	"strconv"

	"github.com/FookNaRak/ITFoodFlow/pkg/resp"
	"github.com/FookNaRak/ITFoodFlow/services"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart-items
func (h *CartController) Items(c *gin.Context) {
	rows, err := h.Svc.ListWithMenu()
	if err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	resp.Success(c, rows)
}

// GET /all-cart-info
func (h *CartController) AllInfo(c *gin.Context) {
	rows, err := h.Svc.ListRaw()
	if err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	resp.Success(c, rows)
}

// POST /add-to-cart
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.Svc.Add(&req)
	if err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if res.Updated {
		resp.Message(c, "Cart updated successfully")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item added to cart successfully", "cartID": res.CartID})
}

// DELETE /menu/:menuID — ลบรายการของเมนูนั้นออกจากตะกร้า (ทุก user)
func (h *CartController) RemoveMenu(c *gin.Context) {
	menuID, _ := strconv.Atoi(c.Param("menuID"))

	if err := h.Svc.RemoveMenu(uint(menuID)); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	resp.Message(c, "Item deleted successfully")
}
