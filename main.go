package main

import (
	"fmt"
	"log"
	"os"

	"shopconnect-backend/config"
	"shopconnect-backend/models"
	"shopconnect-backend/routes"
	"shopconnect-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Bill{},
		&models.Product{},
		&models.FestivalEvent{},
		&models.MessageLog{},
	)
}

func main() {
	shop := config.LoadShopConfig()

	registry := services.NewRegistry(config.DB)
	calendar := services.NewFestivalCalendar(config.DB)
	composer := services.NewComposer(shop.Name)
	dispatcher := services.NewDispatcher(config.DB, services.NewTwilioSender(), shop.DispatchDelay)

	if err := calendar.Seed(); err != nil {
		log.Printf("Failed to seed festival calendar: %v", err)
	}

	scheduler := services.NewScheduler(registry, calendar, composer, dispatcher)
	scheduler.Start()
	defer scheduler.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(routes.Deps{
		Registry:   registry,
		Calendar:   calendar,
		Composer:   composer,
		Dispatcher: dispatcher,
	})
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
