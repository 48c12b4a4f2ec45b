package routes

import (
	"hotelops/constants"
	"hotelops/controllers"
	middlewares "hotelops/middleware"
	"hotelops/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
)

type Options struct {
	JWTSecret string
	DB        controllers.Pinger
	Redis     *redis.Client
}

func SetupRoutes(router *gin.Engine, app *services.Container, m *melody.Melody, opts Options) {
	reservationController := controllers.NewReservationController(app.Facade, app.Reservations)
	roomController := controllers.NewRoomController(controllers.RoomControllerOptions{
		Facade:       app.Facade,
		Rooms:        app.Rooms,
		Reservations: app.Reservations,
		Availability: app.Availability,
		Redis:        opts.Redis,
		Logger:       app.Logger,
	})
	maintenanceController := controllers.NewMaintenanceController(app.Facade, app.Maintenance)
	customerController := controllers.NewCustomerController(app.Customers)
	healthController := controllers.NewHealthController(opts.DB, opts.Redis)

	frontDesk := middlewares.AuthMiddleware(opts.JWTSecret, constants.RoleAdmin, constants.RoleManager, constants.RoleReceptionist)
	managers := middlewares.AuthMiddleware(opts.JWTSecret, constants.RoleAdmin, constants.RoleManager)
	housekeeping := middlewares.AuthMiddleware(opts.JWTSecret, constants.RoleAdmin, constants.RoleManager, constants.RoleReceptionist, constants.RoleHousekeeping)

	router.GET("/ping", healthController.Ping)
	router.GET("/health", healthController.Health)

	router.POST("/reservations", frontDesk, reservationController.CreateReservation)
	router.GET("/reservations", reservationController.GetReservations)
	router.GET("/reservations/:id", reservationController.GetReservationDetail)
	router.PUT("/reservations/:id", frontDesk, reservationController.UpdateReservation)
	router.POST("/reservations/:id/check-in", frontDesk, reservationController.CheckIn)
	router.POST("/reservations/:id/check-out", frontDesk, reservationController.CheckOut)
	router.POST("/reservations/:id/cancel", frontDesk, reservationController.CancelReservation)

	router.GET("/rooms", roomController.GetAllRooms)
	router.GET("/rooms/available", roomController.GetAvailableRooms)
	router.GET("/rooms/board", roomController.GetRoomBoard)
	router.POST("/rooms", managers, roomController.CreateRoom)
	router.GET("/rooms/:id", roomController.GetRoomDetail)
	router.PUT("/rooms/:id", managers, roomController.UpdateRoom)
	router.DELETE("/rooms/:id", managers, roomController.DeleteRoom)
	router.GET("/rooms/:id/calendar", roomController.GetRoomCalendar)
	router.GET("/rooms/:id/reservations", roomController.GetRoomReservations)

	router.POST("/rooms/:id/maintenance-issues", housekeeping, maintenanceController.ReportIssue)
	router.GET("/rooms/:id/maintenance-issues", maintenanceController.GetRoomIssues)
	router.POST("/rooms/:id/maintenance-issues/:issueId/resolve", housekeeping, maintenanceController.ResolveIssue)
	router.GET("/maintenance-issues/overdue", maintenanceController.GetOverdueIssues)

	router.POST("/customers", frontDesk, customerController.CreateCustomer)
	router.GET("/customers", customerController.GetCustomers)
	router.GET("/customers/:id", customerController.GetCustomerDetail)

	if m != nil {
		router.GET("/ws", func(c *gin.Context) {
			if err := m.HandleRequest(c.Writer, c.Request); err != nil {
				app.Logger.Error("websocket: %v", err)
			}
		})
	}
}
