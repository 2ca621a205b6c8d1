package echoServer

import (
	"github.com/EstevanMarcatti/DISKFINAL2/app/echoServer/controller/auth"
	"github.com/EstevanMarcatti/DISKFINAL2/app/echoServer/controller/client"
	"github.com/EstevanMarcatti/DISKFINAL2/app/echoServer/controller/dashboard"
	"github.com/EstevanMarcatti/DISKFINAL2/app/echoServer/controller/dumpster"
	"github.com/EstevanMarcatti/DISKFINAL2/app/echoServer/controller/finance"
	"github.com/EstevanMarcatti/DISKFINAL2/app/echoServer/controller/landfill"
	"github.com/EstevanMarcatti/DISKFINAL2/app/echoServer/controller/rental"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth      *auth.Controller
	Client    *client.Controller
	Dumpster  *dumpster.Controller
	Rental    *rental.Controller
	Finance   *finance.Controller
	Dashboard *dashboard.Controller
	Landfill  *landfill.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	e.POST("/api/login", c.Auth.Login)

	api := e.Group("/api")
	api.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization:Bearer ",
	}))

	// Clients
	api.POST("/clients", c.Client.Create)
	api.GET("/clients", c.Client.List)
	api.GET("/clients/:id", c.Client.Get)
	api.PUT("/clients/:id", c.Client.Update)
	api.DELETE("/clients/:id", c.Client.Delete)
	api.GET("/clients/:id/stats", c.Client.Stats)

	// Dumpster types
	api.GET("/dumpster-types", c.Dumpster.List)
	api.PUT("/dumpster-types/:size", c.Dumpster.UpdatePrice)

	// Rental notes. Fixed paths are registered before the :id routes.
	api.POST("/rental-notes", c.Rental.Create)
	api.GET("/rental-notes", c.Rental.List)
	api.GET("/rental-notes/with-status", c.Rental.ListWithColor)
	api.GET("/rental-notes/active", c.Rental.Active)
	api.GET("/rental-notes/retrieved", c.Rental.Retrieved)
	api.GET("/rental-notes/overdue", c.Rental.Overdue)
	api.GET("/rental-notes/expired", c.Rental.Expired)
	api.PUT("/rental-notes/:id/retrieve", c.Rental.Retrieve)
	api.PUT("/rental-notes/:id/pay", c.Rental.Pay)
	api.PUT("/rental-notes/:id/coordinates", c.Rental.Coordinates)
	api.PUT("/rental-notes/:id/geocode", c.Rental.Geocode)
	api.DELETE("/rental-notes/:id", c.Rental.Delete)

	// Payments & receivables
	api.POST("/payments", c.Finance.CreatePayment)
	api.GET("/payments", c.Finance.ListPayments)
	api.POST("/receivables", c.Finance.CreateReceivable)
	api.GET("/receivables", c.Finance.ListReceivables)

	// Landfills
	api.POST("/landfills", c.Landfill.Create)
	api.GET("/landfills", c.Landfill.List)

	// Views
	api.GET("/dashboard/stats", c.Dashboard.Stats)
	api.GET("/financial/monthly-summary", c.Finance.MonthlySummary)
	api.POST("/reports/detailed", c.Finance.DetailedReport)
}
