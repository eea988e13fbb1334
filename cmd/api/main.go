package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/salarydesk/salary-backend-go/internal/config"
	appHTTP "github.com/salarydesk/salary-backend-go/internal/handler/http"
	"github.com/salarydesk/salary-backend-go/internal/pkg/cron"
	"github.com/salarydesk/salary-backend-go/internal/pkg/database"
	"github.com/salarydesk/salary-backend-go/internal/pkg/jwt"
	"github.com/salarydesk/salary-backend-go/internal/repository/postgresql"
	advanceService "github.com/salarydesk/salary-backend-go/internal/service/advance"
	attendanceService "github.com/salarydesk/salary-backend-go/internal/service/attendance"
	authService "github.com/salarydesk/salary-backend-go/internal/service/auth"
	billService "github.com/salarydesk/salary-backend-go/internal/service/bill"
	employeeService "github.com/salarydesk/salary-backend-go/internal/service/employee"
	notificationService "github.com/salarydesk/salary-backend-go/internal/service/notification"
	offDayService "github.com/salarydesk/salary-backend-go/internal/service/offday"
	paymentService "github.com/salarydesk/salary-backend-go/internal/service/payment"
	salaryService "github.com/salarydesk/salary-backend-go/internal/service/salary"
	"github.com/salarydesk/salary-backend-go/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	if err := database.Migrate(db, migrations.FS, "."); err != nil {
		log.Fatal("Error applying migrations: ", err)
	}

	txManager := postgresql.NewTxManager(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	billRepo := postgresql.NewBillRepository(db)
	offDayRepo := postgresql.NewOffDayRepository(db)
	paymentRepo := postgresql.NewSalaryPaymentRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	userAuthRepo := postgresql.NewUserAuthRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	notificationSvc := notificationService.NewNotificationService(notificationRepo)
	salarySvc := salaryService.NewSalaryService(txManager, employeeRepo, billRepo, advanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(employeeRepo, offDayRepo)
	advanceSvc := advanceService.NewAdvanceService(txManager, cfg.Overdraft.Advances, advanceRepo, employeeRepo, billRepo, notificationSvc)
	billSvc := billService.NewBillService(txManager, cfg.Overdraft.Bills, billRepo, employeeRepo, advanceRepo)
	offDaySvc := offDayService.NewOffDayService(offDayRepo, employeeRepo)
	paymentSvc := paymentService.NewPaymentService(txManager, paymentRepo, employeeRepo, billRepo, advanceRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	authSvc := authService.NewAuthService(jwtService, userAuthRepo, employeeRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Advance:      appHTTP.NewAdvanceHandler(advanceSvc),
		Bill:         appHTTP.NewBillHandler(billSvc),
		OffDay:       appHTTP.NewOffDayHandler(offDaySvc),
		Payment:      appHTTP.NewPaymentHandler(paymentSvc),
		Salary:       appHTTP.NewSalaryHandler(salarySvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
	})

	if cfg.Scheduler.Enabled {
		scheduler := cron.NewScheduler()
		payrollJobs := cron.NewPayrollJobs(salarySvc, attendanceSvc, advanceRepo, employeeRepo, notificationSvc)
		payrollJobs.RegisterJobs(scheduler, cfg.Scheduler.AttendanceSweep)
		scheduler.Start()
		defer scheduler.Stop()
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
