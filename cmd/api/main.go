package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bizdesk/tardiness-backend-go/internal/config"
	appHTTP "github.com/bizdesk/tardiness-backend-go/internal/handler/http"
	"github.com/bizdesk/tardiness-backend-go/internal/pkg/database"
	"github.com/bizdesk/tardiness-backend-go/internal/repository/postgresql"
	reportYearService "github.com/bizdesk/tardiness-backend-go/internal/service/reportyear"
	tardinessService "github.com/bizdesk/tardiness-backend-go/internal/service/tardiness"
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

	tardinessRepo := postgresql.NewTardinessRepository(db)
	reportYearRepo := postgresql.NewReportYearRepository(db)

	tardinessSvc := tardinessService.NewTardinessService(tardinessRepo, cfg.Tardiness.EditQuietWindow, nil)
	reportYearSvc := reportYearService.NewReportYearService(reportYearRepo)

	tardinessHandler := appHTTP.NewTardinessHandler(tardinessSvc)
	reportYearHandler := appHTTP.NewReportYearHandler(reportYearSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		cfg.App.FrontendURL,
		tardinessHandler,
		reportYearHandler,
	)

	// Drain pending debounced corrections on shutdown.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		tardinessSvc.Flush()
		db.Close()
		os.Exit(0)
	}()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
