package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/congrega/attendance-backend/internal/config"
	appHTTP "github.com/congrega/attendance-backend/internal/handler/http"
	"github.com/congrega/attendance-backend/internal/pkg/database"
	"github.com/congrega/attendance-backend/internal/pkg/jwt"
	"github.com/congrega/attendance-backend/internal/pkg/sheetcache"
	"github.com/congrega/attendance-backend/internal/repository/mongodb"
	"github.com/congrega/attendance-backend/internal/repository/sheets"
	attendanceService "github.com/congrega/attendance-backend/internal/service/attendance"
	serviceAuth "github.com/congrega/attendance-backend/internal/service/auth"
	dashboardService "github.com/congrega/attendance-backend/internal/service/dashboard"
	memberService "github.com/congrega/attendance-backend/internal/service/member"
	reportService "github.com/congrega/attendance-backend/internal/service/report"
	visitorService "github.com/congrega/attendance-backend/internal/service/visitor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()

	mongoClient, err := database.NewMongoDB(ctx, cfg.Mongo.URL)
	if err != nil {
		fmt.Println("Error connecting to credential database:", err)
		return
	}
	defer func() {
		if err := mongoClient.Disconnect(ctx); err != nil {
			log.Println("Error disconnecting from credential database:", err)
		}
	}()
	db := mongoClient.Database(cfg.Mongo.Name)

	store, err := sheets.NewClient(ctx, cfg.Sheets.CredentialsFile, cfg.Sheets.SpreadsheetID, cfg.Sheets.Timeout)
	if err != nil {
		fmt.Println("Error connecting to row store:", err)
		return
	}

	// One cache instance shared by every repository; the row store API
	// throttles requests, so all collections read through it.
	cache := sheetcache.New(cfg.Cache.TTL)

	userRepo := mongodb.NewUserRepository(db)
	memberRepo := sheets.NewMemberRepository(store, cache)
	visitorRepo := sheets.NewVisitorRepository(store, cache)
	attendanceRepo := sheets.NewAttendanceRepository(store, cache)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)
	memberSvc := memberService.NewMemberService(memberRepo)
	visitorSvc := visitorService.NewVisitorService(visitorRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	reportSvc := reportService.NewReportService(attendanceRepo)
	dashboardSvc := dashboardService.NewDashboardService(memberRepo, visitorRepo, attendanceRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	memberHandler := appHTTP.NewMemberHandler(memberSvc)
	visitorHandler := appHTTP.NewVisitorHandler(visitorSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	cacheHandler := appHTTP.NewCacheHandler(cache)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		memberHandler,
		visitorHandler,
		attendanceHandler,
		reportHandler,
		dashboardHandler,
		cacheHandler,
		cfg.App.CORSOrigins,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
