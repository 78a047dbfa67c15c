package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/FookNaRak/ITFoodFlow/pkg/resp"
	"github.com/FookNaRak/ITFoodFlow/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /menu-items?shopID= (default ร้าน 1 ตามหน้าร้านเดิม)
func (h *MenuController) Storefront(c *gin.Context) {
	shopID, err := strconv.Atoi(c.DefaultQuery("shopID", "1"))
	if err != nil || shopID <= 0 {
		resp.Error(c, http.StatusBadRequest, "invalid shopID")
		return
	}

	items, err := h.Svc.ListForShop(uint(shopID))
	if err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	resp.Success(c, items)
}

// GET /api/menu
func (h *MenuController) List(c *gin.Context) {
	menus, err := h.Svc.ListAll()
	if err != nil {
		resp.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, menus)
}

// GET /api/menu/:menuID
func (h *MenuController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("menuID"))

	menu, err := h.Svc.Get(uint(id))
	if err != nil {
		// แถวหายหรืออ่านพลาด ตอบ 404 เหมือนกัน
		resp.Error(c, http.StatusNotFound, "Menu not found")
		return
	}
	c.JSON(http.StatusOK, menu)
}

// GET /api/menu/:menuID/image — ส่งรูปดิบ
func (h *MenuController) Image(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("menuID"))

	image, err := h.Svc.Image(uint(id))
	if err != nil || len(image) == 0 {
		resp.Error(c, http.StatusNotFound, "Image not found")
		return
	}
	c.Data(http.StatusOK, "image/png", image)
}

// POST /api/menu (multipart, field image)
func (h *MenuController) Create(c *gin.Context) {
	shopID, err := strconv.Atoi(c.PostForm("shopID"))
	if err != nil || shopID <= 0 {
		resp.Error(c, http.StatusBadRequest, "invalid shopID")
		return
	}
	menuName := c.PostForm("menuName")
	if menuName == "" {
		resp.Error(c, http.StatusBadRequest, "menuName is required")
		return
	}
	menuPrice, err := strconv.ParseFloat(c.PostForm("menuPrice"), 64)
	if err != nil || menuPrice < 0 {
		resp.Error(c, http.StatusBadRequest, "invalid menuPrice")
		return
	}

	var image []byte
	if file, err := c.FormFile("image"); err == nil {
		f, err := file.Open()
		if err != nil {
			resp.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		defer f.Close()
		image, err = io.ReadAll(f)
		if err != nil {
			resp.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	menuID, err := h.Svc.Create(uint(shopID), menuName, menuPrice, image)
	if err != nil {
		resp.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"menuID": menuID})
}

// DELETE /api/menu/:menuID — สำเร็จเสมอแม้ id ไม่มีอยู่
func (h *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("menuID"))

	if err := h.Svc.Delete(uint(id)); err != nil {
		resp.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	resp.Message(c, "Menu deleted successfully")
}
