package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cmlabs-hris/hrms-backend-go/internal/config"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/leave"
	appHTTP "github.com/cmlabs-hris/hrms-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/logger"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/transaction"
	"github.com/cmlabs-hris/hrms-backend-go/internal/repository/memory"
	"github.com/cmlabs-hris/hrms-backend-go/internal/repository/postgresql"
	departmentService "github.com/cmlabs-hris/hrms-backend-go/internal/service/department"
	employeeService "github.com/cmlabs-hris/hrms-backend-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/hrms-backend-go/internal/service/leave"
)

// store bundles the repositories of one driver.
type store struct {
	txManager     transaction.Manager
	departments   department.DepartmentRepository
	employees     employee.EmployeeRepository
	leaveBalances leave.LeaveBalanceRepository
	pinger        appHTTP.Pinger
	close         func()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(os.Stdout, logger.Options{
		App:     cfg.App.Name,
		Version: cfg.App.Version,
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
	})
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close()

	departmentSvc := departmentService.NewDepartmentService(st.txManager, st.departments)
	employeeSvc := employeeService.NewEmployeeService(st.txManager, st.employees, st.departments)
	leaveBalanceSvc := leaveService.NewLeaveBalanceService(st.txManager, st.leaveBalances)

	router := appHTTP.NewRouter(
		log,
		cfg.CORS.AllowedOrigins,
		appHTTP.NewDepartmentHandler(departmentSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewLeaveBalanceHandler(leaveBalanceSvc),
		appHTTP.NewHealthHandler(st.pinger),
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server starting", slog.String("addr", server.Addr), slog.String("storage", cfg.Storage.Driver))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", slog.Duration("timeout", cfg.App.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*store, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		log.Warn("using in-memory storage; data is lost on exit")
		mem := memory.NewStore()
		return &store{
			txManager:     transaction.Passthrough,
			departments:   mem.Departments(),
			employees:     mem.Employees(),
			leaveBalances: mem.LeaveBalances(),
			pinger:        mem,
			close:         func() {},
		}, nil

	default:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
			MaxConns: cfg.Database.MaxConns,
			MinConns: cfg.Database.MinConns,
		})
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}

		if cfg.Database.AutoMigrate {
			if err := database.EnsureSchema(ctx, db); err != nil {
				db.Close()
				return nil, err
			}
			log.Info("database schema ensured")
		}

		return &store{
			txManager:     postgresql.NewTxManager(db),
			departments:   postgresql.NewDepartmentRepository(db),
			employees:     postgresql.NewEmployeeRepository(db),
			leaveBalances: postgresql.NewLeaveBalanceRepository(db),
			pinger:        db,
			close:         db.Close,
		}, nil
	}
}
