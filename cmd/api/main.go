package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/corehr/hrms-backend-go/internal/config"
	appHTTP "github.com/corehr/hrms-backend-go/internal/handler/http"
	"github.com/corehr/hrms-backend-go/internal/pkg/database"
	"github.com/corehr/hrms-backend-go/internal/pkg/jwt"
	"github.com/corehr/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/corehr/hrms-backend-go/internal/service/attendance"
	authService "github.com/corehr/hrms-backend-go/internal/service/auth"
	employeeService "github.com/corehr/hrms-backend-go/internal/service/employee"
	masterService "github.com/corehr/hrms-backend-go/internal/service/master"
	payrollService "github.com/corehr/hrms-backend-go/internal/service/payroll"
	taxdeclService "github.com/corehr/hrms-backend-go/internal/service/taxdecl"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	accountRepo := postgresql.NewAccountRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	taxDeclRepo := postgresql.NewTaxDeclarationRepository(db)
	masterRepo := postgresql.NewMasterEntryRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)

	authSvc := authService.NewAuthService(accountRepo, profileRepo, jwtService)
	employeeSvc := employeeService.NewProfileService(db, accountRepo, profileRepo)
	attendanceSvc := attendanceService.NewRecordService(db, attendanceRepo, profileRepo)
	payrollSvc := payrollService.NewRecordService(db, payrollRepo, profileRepo)
	taxDeclSvc := taxdeclService.NewDeclarationService(db, taxDeclRepo)
	masterSvc := masterService.NewEntryService(masterRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		TaxDecl:    appHTTP.NewTaxDeclarationHandler(taxDeclSvc),
		Master:     appHTTP.NewMasterHandler(masterSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
