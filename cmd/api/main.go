package main

import (
	"fmt"
	"net/http"

	"github.com/leavetrack/leavetrack-backend-go/internal/config"
	appHTTP "github.com/leavetrack/leavetrack-backend-go/internal/handler/http"
	"github.com/leavetrack/leavetrack-backend-go/internal/pkg/database"
	"github.com/leavetrack/leavetrack-backend-go/internal/pkg/jwt"
	"github.com/leavetrack/leavetrack-backend-go/internal/repository/postgresql"
	authService "github.com/leavetrack/leavetrack-backend-go/internal/service/auth"
	departmentService "github.com/leavetrack/leavetrack-backend-go/internal/service/department"
	employeeService "github.com/leavetrack/leavetrack-backend-go/internal/service/employee"
	leaveService "github.com/leavetrack/leavetrack-backend-go/internal/service/leave"
	policyService "github.com/leavetrack/leavetrack-backend-go/internal/service/policy"
	reportService "github.com/leavetrack/leavetrack-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	balanceRepo := postgresql.NewBalanceRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	policyRepo := postgresql.NewPolicyRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	requestSvc := leaveService.NewRequestService(db, employeeRepo, leaveRequestRepo, balanceRepo)
	visibilitySvc := leaveService.NewVisibilityService(employeeRepo, leaveRequestRepo)
	balanceSvc := leaveService.NewBalanceService(employeeRepo, balanceRepo)
	reportSvc := reportService.NewService(employeeRepo, departmentRepo, leaveRequestRepo)
	authSvc := authService.NewService(db, employeeRepo, balanceRepo, jwtService)
	employeeSvc := employeeService.NewService(db, employeeRepo, balanceRepo)
	departmentSvc := departmentService.NewService(departmentRepo)
	policySvc := policyService.NewService(policyRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	leaveHandler := appHTTP.NewLeaveHandler(requestSvc, visibilitySvc, balanceSvc, reportSvc)
	managerHandler := appHTTP.NewManagerHandler(requestSvc, visibilitySvc, balanceSvc, reportSvc)
	adminHandler := appHTTP.NewAdminHandler(employeeSvc, departmentSvc, policySvc, balanceSvc, reportSvc)
	userHandler := appHTTP.NewUserHandler(employeeSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		leaveHandler,
		managerHandler,
		adminHandler,
		userHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
