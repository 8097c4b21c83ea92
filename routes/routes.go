package routes

import (
	"vigia/client"
	"vigia/config"
	"vigia/controllers"
	"vigia/interfaces"
	"vigia/middleware"
	"vigia/services"
	"vigia/websocket"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Version reported by the health endpoint.
const Version = "1.0.0"

// SetupRoutes wires the fleet client, services, controllers and
// middleware into a ready gin engine.
func SetupRoutes(cfg *config.Config, redisClient *redis.Client, hub *websocket.Hub) (*gin.Engine, *Services) {
	router := gin.New()
	router.Use(gin.Recovery())

	fleetAPI := client.NewFleetClient(cfg.FleetAPIURL, cfg.FleetAPITimeout)

	svcs := initializeServices(fleetAPI)
	ctrls := initializeControllers(svcs, redisClient, hub)

	setupGlobalMiddleware(router, cfg, redisClient)
	setupAPIRoutes(router, ctrls)
	setupWebSocketRoutes(router, ctrls)

	return router, svcs
}

// Services holds the service layer, shared with the refresh worker.
type Services struct {
	Dashboard *services.DashboardService
	Alert     *services.AlertService
	Trip      *services.TripService
	Driver    *services.DriverService
	Vehicle   *services.VehicleService
}

func initializeServices(api interfaces.FleetAPI) *Services {
	tripService := services.NewTripService(api)

	return &Services{
		Dashboard: services.NewDashboardService(api),
		Alert:     services.NewAlertService(api),
		Trip:      tripService,
		Driver:    services.NewDriverService(api, tripService),
		Vehicle:   services.NewVehicleService(api),
	}
}

// Controllers initialization
type Controllers struct {
	Health    *controllers.HealthController
	Dashboard *controllers.DashboardController
	Alert     *controllers.AlertController
	Driver    *controllers.DriverController
	Trip      *controllers.TripController
	Vehicle   *controllers.VehicleController
	WebSocket *controllers.WebSocketController
}

func initializeControllers(svcs *Services, redisClient *redis.Client, hub *websocket.Hub) *Controllers {
	return &Controllers{
		Health:    controllers.NewHealthController(redisClient, Version),
		Dashboard: controllers.NewDashboardController(svcs.Dashboard),
		Alert:     controllers.NewAlertController(svcs.Alert),
		Driver:    controllers.NewDriverController(svcs.Driver),
		Trip:      controllers.NewTripController(svcs.Trip),
		Vehicle:   controllers.NewVehicleController(svcs.Vehicle),
		WebSocket: controllers.NewWebSocketController(hub),
	}
}

func setupGlobalMiddleware(router *gin.Engine, cfg *config.Config, redisClient *redis.Client) {
	router.Use(middleware.DefaultLoggerMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Environment))

	if redisClient != nil {
		router.Use(middleware.RateLimitMiddleware(redisClient, cfg.RateLimitRequest, cfg.RateLimitWindow))
	}
}

func setupAPIRoutes(router *gin.Engine, ctrls *Controllers) {
	router.GET("/health", ctrls.Health.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Dashboard
		v1.GET("/dashboard", ctrls.Dashboard.GetSnapshot)
		v1.POST("/dashboard/refresh", ctrls.Dashboard.RefreshSnapshot)
		v1.GET("/dashboard/live", ctrls.WebSocket.HandleConnection)

		// Alerts
		alerts := v1.Group("/alerts")
		{
			alerts.GET("", ctrls.Alert.GetFeed)
			alerts.GET("/points", ctrls.Alert.GetMap)
			alerts.GET("/stats", ctrls.Alert.GetStatistics)
			alerts.GET("/types", ctrls.Alert.GetTypes)
			alerts.POST("/:id/dismiss", ctrls.Alert.DismissAlert)
		}

		// Drivers
		drivers := v1.Group("/drivers")
		{
			drivers.GET("", ctrls.Driver.GetDrivers)
			drivers.GET("/monitoring", ctrls.Driver.GetDriverRows)
			drivers.GET("/:id", ctrls.Driver.GetDriver)
			drivers.POST("", ctrls.Driver.CreateDriver)
			drivers.PUT("/:id", ctrls.Driver.UpdateDriver)
			drivers.DELETE("/:id", ctrls.Driver.DeleteDriver)
		}

		// Trips
		trips := v1.Group("/trips")
		{
			trips.GET("", ctrls.Trip.GetTrips)
			trips.GET("/active", ctrls.Trip.GetActiveTrips)
			trips.GET("/driver/:driverId/active", ctrls.Trip.GetActiveTripForDriver)
			trips.GET("/:id", ctrls.Trip.GetTrip)
			trips.GET("/:id/stats", ctrls.Trip.GetTripStats)
			trips.GET("/:id/alerts", ctrls.Trip.GetTripAlerts)
			trips.POST("", ctrls.Trip.StartTrip)
			trips.POST("/:id/end", ctrls.Trip.EndTrip)
		}

		// Vehicles
		vehicles := v1.Group("/vehicles")
		{
			vehicles.GET("", ctrls.Vehicle.GetVehicles)
			vehicles.POST("", ctrls.Vehicle.CreateVehicle)
		}
	}
}

func setupWebSocketRoutes(router *gin.Engine, ctrls *Controllers) {
	router.GET("/ws", ctrls.WebSocket.HandleConnection)
	router.GET("/ws/stats", ctrls.WebSocket.GetHubStats)
}
