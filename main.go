package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kenanpereira24-max/FULL-STACK-PROJECT-BACKEND/handlers"
	"github.com/kenanpereira24-max/FULL-STACK-PROJECT-BACKEND/initializers"
	"github.com/kenanpereira24-max/FULL-STACK-PROJECT-BACKEND/routes"
)

const defaultPort = "8080"

func main() {
	initializers.LoadEnv()

	db, err := initializers.ConnectToDatabase()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	drv, err := initializers.InitDrive(context.Background())
	if err != nil {
		log.Printf("⚠️  Drive init failed, uploads disabled: %v", err)
		drv = nil
	} else if drv == nil {
		log.Println("⚠️  Drive credentials not configured, uploads disabled")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	router := gin.Default()
	// Frontend is deployed on a different origin, so CORS stays wide open.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	routes.Register(router, handlers.New(db, drv))

	log.Printf("Backend live on %s", port)
	log.Fatal(router.Run(":" + port))
}
