package main

import (
	"fmt"
	"net/http"

	"github.com/sakthi-mills/hr-backend-go/internal/config"
	appHTTP "github.com/sakthi-mills/hr-backend-go/internal/handler/http"
	"github.com/sakthi-mills/hr-backend-go/internal/pkg/database"
	"github.com/sakthi-mills/hr-backend-go/internal/pkg/jwt"
	"github.com/sakthi-mills/hr-backend-go/internal/repository/postgresql"
	assetService "github.com/sakthi-mills/hr-backend-go/internal/service/asset"
	assignmentService "github.com/sakthi-mills/hr-backend-go/internal/service/assignment"
	authService "github.com/sakthi-mills/hr-backend-go/internal/service/auth"
	employeeService "github.com/sakthi-mills/hr-backend-go/internal/service/employee"
	payrollService "github.com/sakthi-mills/hr-backend-go/internal/service/payroll"
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
	assetRepo := postgresql.NewAssetRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	assetSvc := assetService.NewAssetService(db, assetRepo)
	assignmentSvc := assignmentService.NewAssignmentService(db, assignmentRepo, assetRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, assignmentRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	assetHandler := appHTTP.NewAssetHandler(assetSvc, assignmentSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.FrontendURL,
		cfg.App.Env,
		authHandler,
		employeeHandler,
		assetHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
