package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/naumur/presence-backend-go/internal/config"
	appHTTP "github.com/naumur/presence-backend-go/internal/handler/http"
	"github.com/naumur/presence-backend-go/internal/pkg/backup"
	"github.com/naumur/presence-backend-go/internal/pkg/cron"
	"github.com/naumur/presence-backend-go/internal/pkg/database"
	"github.com/naumur/presence-backend-go/internal/pkg/jwt"
	"github.com/naumur/presence-backend-go/internal/pkg/storage"
	"github.com/naumur/presence-backend-go/internal/repository/postgresql"
	attendanceService "github.com/naumur/presence-backend-go/internal/service/attendance"
	auditService "github.com/naumur/presence-backend-go/internal/service/audit"
	authService "github.com/naumur/presence-backend-go/internal/service/auth"
	departmentService "github.com/naumur/presence-backend-go/internal/service/department"
	employeeService "github.com/naumur/presence-backend-go/internal/service/employee"
	justificationService "github.com/naumur/presence-backend-go/internal/service/justification"
	presenceService "github.com/naumur/presence-backend-go/internal/service/presence"
	reportService "github.com/naumur/presence-backend-go/internal/service/report"
	systemService "github.com/naumur/presence-backend-go/internal/service/system"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	presenceRepo := postgresql.NewPresenceRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)
	justificationRepo := postgresql.NewJustificationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, cfg.JWT.SessionExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	recorder := auditService.NewRecorder(auditRepo)
	presenceSvc := presenceService.NewPresenceService(presenceRepo, cfg.Presence.HeartbeatInterval, cfg.Presence.OnlineTTL)
	authSvc := authService.NewAuthService(db, userRepo, presenceRepo, JWTService, recorder)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo, recorder)
	employeeSvc := employeeService.NewEmployeeService(userRepo, departmentRepo, fileStorage, recorder)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	justificationSvc := justificationService.NewJustificationService(justificationRepo, userRepo, fileStorage, recorder)
	reportSvc := reportService.NewReportService(attendanceRepo, userRepo, departmentRepo, presenceSvc, recorder)
	systemSvc := systemService.NewSystemService(backup.NewRunner(cfg.DatabaseURL(), cfg.Backup.Dir), recorder)

	scheduler := cron.NewScheduler()
	systemSvc.RegisterJobs(scheduler, cfg.Backup.Interval)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		Config:        cfg,
		JWTService:    JWTService,
		PresenceSvc:   presenceSvc,
		Auth:          appHTTP.NewAuthHandler(authSvc, JWTService),
		Attendance:    appHTTP.NewAttendanceHandler(attendanceSvc),
		Employee:      appHTTP.NewEmployeeHandler(employeeSvc),
		Department:    appHTTP.NewDepartmentHandler(departmentSvc),
		Justification: appHTTP.NewJustificationHandler(justificationSvc),
		Report:        appHTTP.NewReportHandler(reportSvc),
		System:        appHTTP.NewSystemHandler(systemSvc, recorder, presenceSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: addr, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	_ = server.Close()
}
