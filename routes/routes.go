package routes

import (
	"net/http"
	"path/filepath"

	"github.com/FookNaRak/ITFoodFlow/configs"
	"github.com/FookNaRak/ITFoodFlow/controllers"
	"github.com/FookNaRak/ITFoodFlow/repository"
	"github.com/FookNaRak/ITFoodFlow/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	cartRepo := repository.NewCartRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	shopRepo := repository.NewShopRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	cartSvc := services.NewCartService(db, cartRepo)
	menuSvc := services.NewMenuService(menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo)
	shopSvc := services.NewShopService(shopRepo)
	signupSvc := services.NewSignupService(db, userRepo, shopRepo)

	// Controllers
	cartCtrl := controllers.NewCartController(cartSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	shopCtrl := controllers.NewShopController(shopSvc)
	signupCtrl := controllers.NewSignupController(signupSvc)

	// หน้าเว็บจาก public
	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/restaurant") })
	pages := map[string]string{
		"/cart":         "cart.html",
		"/payment":      "payment.html",
		"/restaurant":   "TRestHt.html",
		"/confirmation": "confirmation.html",
	}
	for route, file := range pages {
		page := filepath.Join(cfg.PublicDir, file)
		r.GET(route, func(c *gin.Context) { c.File(page) })
	}
	r.Static("/public", cfg.PublicDir)

	// Storefront / cart (รูปแบบตอบกลับ message/data)
	r.GET("/menu-items", menuCtrl.Storefront)
	r.GET("/cart-items", cartCtrl.Items)
	r.GET("/all-cart-info", cartCtrl.AllInfo)
	r.POST("/add-to-cart", cartCtrl.Add)
	r.DELETE("/menu/:menuID", cartCtrl.RemoveMenu)

	// Signup
	r.POST("/signup", signupCtrl.Shop)
	r.POST("/signup/customer", signupCtrl.Customer)

	// API
	api := r.Group("/api")
	{
		api.GET("/menu", menuCtrl.List)
		api.POST("/menu", menuCtrl.Create)
		api.GET("/menu/:menuID", menuCtrl.Get)
		api.GET("/menu/:menuID/image", menuCtrl.Image)
		api.DELETE("/menu/:menuID", menuCtrl.Delete)

		api.GET("/shops", shopCtrl.List)

		api.POST("/orders", orderCtrl.Checkout)
		api.GET("/orders/:userID", orderCtrl.ListForUser)
		api.GET("/tracking/:userID", orderCtrl.Track)
	}
}
