package routes

import (
	"shopconnect-backend/config"
	"shopconnect-backend/controllers"
	"shopconnect-backend/services"
	"shopconnect-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps carries the wired services into the router
type Deps struct {
	Registry   *services.Registry
	Calendar   *services.FestivalCalendar
	Composer   *services.Composer
	Dispatcher *services.Dispatcher
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	customerCtl := &controllers.CustomerController{Registry: deps.Registry}
	billCtl := &controllers.BillController{Registry: deps.Registry, Composer: deps.Composer, Dispatcher: deps.Dispatcher}
	festivalCtl := &controllers.FestivalController{Calendar: deps.Calendar}
	messageCtl := &controllers.MessageController{
		Registry:   deps.Registry,
		Composer:   deps.Composer,
		Dispatcher: deps.Dispatcher,
	}
	dashboardCtl := &controllers.DashboardController{
		Registry:   deps.Registry,
		Calendar:   deps.Calendar,
		Dispatcher: deps.Dispatcher,
	}
	reportCtl := &controllers.ReportController{Registry: deps.Registry}

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)

		profile := auth.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("", controllers.UpdateProfile)
			profile.PUT("/password", controllers.ChangePassword)
		}
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", customerCtl.CreateCustomer)
			customers.GET("", customerCtl.GetCustomers)
			customers.GET("/stats", customerCtl.GetStats)
			customers.GET("/export", customerCtl.ExportCustomers)
			customers.POST("/import", customerCtl.ImportCustomers)
			customers.GET("/cohorts/recent", customerCtl.GetRecent)
			customers.GET("/cohorts/inactive", customerCtl.GetInactive)
			customers.GET("/cohorts/birthdays", customerCtl.GetBirthdays)
			customers.GET("/cohorts/anniversaries", customerCtl.GetAnniversaries)
			customers.GET("/cohorts/top", customerCtl.GetTopSpenders)
			customers.GET("/:phone", customerCtl.GetCustomer)
			customers.PUT("/:phone", customerCtl.UpdateCustomer)
			customers.DELETE("/:phone", customerCtl.DeleteCustomer)
		}

		// Bill routes
		bills := api.Group("/bills")
		{
			bills.POST("", billCtl.RecordPurchase)
			bills.GET("", billCtl.GetBills)
			bills.GET("/unpaid", billCtl.GetUnpaidBills)
			bills.GET("/summary/:phone", billCtl.GetBillSummary)
		}

		// Product routes
		products := api.Group("/products")
		{
			products.POST("", controllers.CreateProduct)
			products.GET("", controllers.GetProducts)
			products.GET("/new-arrivals", controllers.GetNewArrivals)
			products.GET("/:id", controllers.GetProduct)
			products.PUT("/:id", controllers.UpdateProduct)
		}

		// Festival routes
		festivals := api.Group("/festivals")
		{
			festivals.GET("/today", festivalCtl.GetToday)
			festivals.GET("/upcoming", festivalCtl.GetUpcoming)
			festivals.POST("", festivalCtl.AddFestival)
		}

		// Message routes
		messages := api.Group("/messages")
		{
			messages.POST("/send", messageCtl.SendMessage)
			messages.POST("/festival", messageCtl.SendFestival)
			messages.POST("/birthdays", messageCtl.SendBirthdayGreetings)
			messages.POST("/anniversaries", messageCtl.SendAnniversaryGreetings)
			messages.POST("/offer", messageCtl.SendOffer)
			messages.POST("/new-arrivals", messageCtl.SendNewArrivals)
			messages.POST("/bill-reminders", messageCtl.SendBillReminders)
			messages.GET("/history", messageCtl.GetHistory)
			messages.GET("/stats", messageCtl.GetMessageStats)
		}

		// Reports routes
		api.GET("/reports", reportCtl.GetReportAnalytics)

		// Dashboard routes
		api.GET("/dashboard", dashboardCtl.GetDashboardOverview)
	}

	return r
}
