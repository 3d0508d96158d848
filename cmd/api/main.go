package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/guardia-security/guardia-backend-go/internal/config"
	appHTTP "github.com/guardia-security/guardia-backend-go/internal/handler/http"
	"github.com/guardia-security/guardia-backend-go/internal/pkg/database"
	"github.com/guardia-security/guardia-backend-go/internal/pkg/jwt"
	"github.com/guardia-security/guardia-backend-go/internal/repository/postgresql"
	agentService "github.com/guardia-security/guardia-backend-go/internal/service/agent"
	attendanceService "github.com/guardia-security/guardia-backend-go/internal/service/attendance"
	authService "github.com/guardia-security/guardia-backend-go/internal/service/auth"
	clientService "github.com/guardia-security/guardia-backend-go/internal/service/client"
	correctionService "github.com/guardia-security/guardia-backend-go/internal/service/correction"
	invoiceService "github.com/guardia-security/guardia-backend-go/internal/service/invoice"
	payrollService "github.com/guardia-security/guardia-backend-go/internal/service/payroll"
	shiftService "github.com/guardia-security/guardia-backend-go/internal/service/shift"
	siteService "github.com/guardia-security/guardia-backend-go/internal/service/site"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	agentRepo := postgresql.NewAgentRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	siteRepo := postgresql.NewSiteRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	correctionRepo := postgresql.NewCorrectionRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	invoiceRepo := postgresql.NewInvoiceRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenExpirationTime, cfg.JWT.RefreshTokenExpirationTime)

	authSvc := authService.NewAuthService(userRepo, jwtSvc)
	agentSvc := agentService.NewAgentService(agentRepo)
	clientSvc := clientService.NewClientService(clientRepo)
	siteSvc := siteService.NewSiteService(siteRepo, clientRepo)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo, agentRepo, siteRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, agentRepo, siteRepo, shiftRepo, correctionRepo)
	correctionSvc := correctionService.NewCorrectionService(db, correctionRepo, attendanceRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, agentRepo, attendanceRepo)
	invoiceSvc := invoiceService.NewInvoiceService(db, invoiceRepo, clientRepo, siteRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Agent:      appHTTP.NewAgentHandler(agentSvc),
		Client:     appHTTP.NewClientHandler(clientSvc),
		Site:       appHTTP.NewSiteHandler(siteSvc),
		Shift:      appHTTP.NewShiftHandler(shiftSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Correction: appHTTP.NewCorrectionHandler(correctionSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Invoice:    appHTTP.NewInvoiceHandler(invoiceSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtSvc, handlers)

	addr := ":" + cfg.App.Port
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
