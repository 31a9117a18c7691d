package main

import (
	"fmt"
	"net/http"

	"github.com/schoolsuite/payroll-backend-go/internal/config"
	appHTTP "github.com/schoolsuite/payroll-backend-go/internal/handler/http"
	"github.com/schoolsuite/payroll-backend-go/internal/pkg/cron"
	"github.com/schoolsuite/payroll-backend-go/internal/pkg/database"
	"github.com/schoolsuite/payroll-backend-go/internal/repository/postgresql"
	payrollService "github.com/schoolsuite/payroll-backend-go/internal/service/payroll"
	reportService "github.com/schoolsuite/payroll-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, attendanceRepo)
	reportSvc := reportService.NewReportService(payrollRepo)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeRepo, attendanceRepo)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	if cfg.Payroll.AutoProcessEnabled {
		scheduler := cron.NewScheduler()
		cron.NewPayrollJobs(payrollSvc).RegisterJobs(scheduler, cfg.Payroll.AutoProcessInterval)
		scheduler.Start()
		defer scheduler.Stop()
	}

	router := appHTTP.NewRouter(
		cfg.App.Env,
		payrollHandler,
		employeeHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
