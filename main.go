// Package main dumpster rental API.
//
// @title           Dumpster Rental API
// @version         1.0
// @description     Rental note tracking for a dumpster logistics business (clients, rentals, payments, receivables, reports).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/EstevanMarcatti/DISKFINAL2/app/echoServer"
	authctrl "github.com/EstevanMarcatti/DISKFINAL2/app/echoServer/controller/auth"
	clientctrl "github.com/EstevanMarcatti/DISKFINAL2/app/echoServer/controller/client"
	dashboardctrl "github.com/EstevanMarcatti/DISKFINAL2/app/echoServer/controller/dashboard"
	dumpsterctrl "github.com/EstevanMarcatti/DISKFINAL2/app/echoServer/controller/dumpster"
	financectrl "github.com/EstevanMarcatti/DISKFINAL2/app/echoServer/controller/finance"
	landfillctrl "github.com/EstevanMarcatti/DISKFINAL2/app/echoServer/controller/landfill"
	rentalctrl "github.com/EstevanMarcatti/DISKFINAL2/app/echoServer/controller/rental"
	"github.com/EstevanMarcatti/DISKFINAL2/app/echoServer/validation"
	"github.com/EstevanMarcatti/DISKFINAL2/config"
	clientrepo "github.com/EstevanMarcatti/DISKFINAL2/repository/client"
	dumpsterrepo "github.com/EstevanMarcatti/DISKFINAL2/repository/dumpster"
	financerepo "github.com/EstevanMarcatti/DISKFINAL2/repository/finance"
	geocoderepo "github.com/EstevanMarcatti/DISKFINAL2/repository/geocode"
	landfillrepo "github.com/EstevanMarcatti/DISKFINAL2/repository/landfill"
	rentalrepo "github.com/EstevanMarcatti/DISKFINAL2/repository/rental"
	authsvc "github.com/EstevanMarcatti/DISKFINAL2/service/auth"
	clientsvc "github.com/EstevanMarcatti/DISKFINAL2/service/client"
	dashboardsvc "github.com/EstevanMarcatti/DISKFINAL2/service/dashboard"
	dumpstersvc "github.com/EstevanMarcatti/DISKFINAL2/service/dumpster"
	financesvc "github.com/EstevanMarcatti/DISKFINAL2/service/finance"
	landfillsvc "github.com/EstevanMarcatti/DISKFINAL2/service/landfill"
	rentalsvc "github.com/EstevanMarcatti/DISKFINAL2/service/rental"
	"github.com/EstevanMarcatti/DISKFINAL2/util/database"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	// repos
	cr := clientrepo.New(db.Pool)
	dr := dumpsterrepo.New(db.Pool)
	rr := rentalrepo.New(db.Pool)
	fr := financerepo.New(db.Pool)
	lr := landfillrepo.New(db.Pool)
	gr := geocoderepo.NewHTTP(cfg.GeocodeBaseURL)

	// services
	as := authsvc.New(cfg.AdminUser, cfg.AdminPasswordHash, cfg.JWTSecret)
	cs := clientsvc.New(cr, rr)
	ds := dumpstersvc.New(dr)
	rs := rentalsvc.New(rr, cr, fr, gr)
	fs := financesvc.New(fr, rr)
	dbs := dashboardsvc.New(cr, rr, fr)
	ls := landfillsvc.New(lr)

	// seed the three size tiers before serving
	if err := ds.EnsureDefaults(ctx); err != nil {
		log.Error("dumpster type seed failed", "err", err)
		os.Exit(1)
	}

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	clientC := &clientctrl.Controller{Svc: cs, V: v, Log: log}
	dumpsterC := &dumpsterctrl.Controller{Svc: ds, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, V: v, Log: log}
	financeC := &financectrl.Controller{Svc: fs, V: v, Log: log}
	dashboardC := &dashboardctrl.Controller{Svc: dbs, Log: log}
	landfillC := &landfillctrl.Controller{Svc: ls, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:      authC,
		Client:    clientC,
		Dumpster:  dumpsterC,
		Rental:    rentalC,
		Finance:   financeC,
		Dashboard: dashboardC,
		Landfill:  landfillC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
