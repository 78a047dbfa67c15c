package main

import (
	"log"

	"github.com/FookNaRak/ITFoodFlow/configs"
	"github.com/FookNaRak/ITFoodFlow/middlewares"
	"github.com/FookNaRak/ITFoodFlow/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedDefaultShop(); err != nil {
		log.Fatalf("seed default shop failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running at http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
