package controllers

import (
	"io"
	"net/http"

	"github.com/FookNaRak/ITFoodFlow/pkg/resp"
	"github.com/FookNaRak/ITFoodFlow/services"

	"github.com/gin-gonic/gin"
)

type SignupController struct{ Svc *services.SignupService }

func NewSignupController(s *services.SignupService) *SignupController {
	return &SignupController{Svc: s}
}

// POST /signup (multipart, field shopPicture)
func (h *SignupController) Shop(c *gin.Context) {
	var req struct {
		ShopName           string `form:"shopName" binding:"required"`
		ShopOwnerFirstName string `form:"shopOwnerFirstName" binding:"required"`
		ShopOwnerLastName  string `form:"shopOwnerLastName" binding:"required"`
		ShopEmail          string `form:"shopEmail" binding:"required,email"`
		ShopOwnerTel       string `form:"shopOwnerTel"`
		Password           string `form:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBind(&req); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var picture []byte
	if file, err := c.FormFile("shopPicture"); err == nil {
		f, err := file.Open()
		if err != nil {
			resp.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		defer f.Close()
		picture, err = io.ReadAll(f)
		if err != nil {
			resp.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	shopID, err := h.Svc.RegisterShop(&services.ShopSignupIn{
		ShopName:           req.ShopName,
		ShopOwnerFirstName: req.ShopOwnerFirstName,
		ShopOwnerLastName:  req.ShopOwnerLastName,
		ShopEmail:          req.ShopEmail,
		ShopOwnerTel:       req.ShopOwnerTel,
		Password:           req.Password,
		ShopPicture:        picture,
	})
	if err != nil {
		resp.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"shopID": shopID})
}

// POST /signup/customer
func (h *SignupController) Customer(c *gin.Context) {
	var req struct {
		CustomerFirstName string `form:"customerFirstName" json:"customerFirstName" binding:"required"`
		CustomerLastName  string `form:"customerLastName" json:"customerLastName" binding:"required"`
		Email             string `form:"email" json:"email" binding:"required,email"`
		Password          string `form:"password" json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBind(&req); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, err := h.Svc.RegisterCustomer(req.CustomerFirstName, req.CustomerLastName, req.Email, req.Password)
	if err != nil {
		resp.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"userID": userID})
}
