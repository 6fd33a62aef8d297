package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"prep-dashboard/internal/ai"
	"prep-dashboard/internal/api"
	"prep-dashboard/internal/bot"
	"prep-dashboard/internal/config"
	"prep-dashboard/internal/repository"
	"prep-dashboard/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	taskRepo := repository.NewTaskRepository(db)
	recRepo := repository.NewRecommendationRepository(db)

	chat := ai.NewChatClient(ai.ChatConfig{
		APIKey:       cfg.AIAPIKey,
		BaseURL:      cfg.AIBaseURL,
		Model:        cfg.AIModel,
		SessionID:    service.ChatSessionID,
		SystemPrompt: service.ChatSystemPrompt,
	})

	taskSvc := service.NewTaskService(taskRepo)
	progressSvc := service.NewProgressService(taskRepo, cfg.CurrentWeek)
	recSvc := service.NewRecommendationService(taskRepo, recRepo, chat)

	gin.SetMode(gin.ReleaseMode)
	server := api.NewServer(taskSvc, progressSvc, recSvc)
	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.Router(cfg.CORSOrigins),
	}

	if cfg.ReportsEnabled() {
		reportSvc := service.NewReportService(progressSvc)
		notifier, err := bot.New(cfg.TelegramToken, cfg.TelegramChatID, reportSvc)
		if err != nil {
			log.Fatalf("notifier: %v", err)
		}

		scheduler := service.NewSchedulerService(time.Local)
		job := func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := notifier.SendDailyReport(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("[error] report: %v", err)
			}
		}
		if cfg.ReportTime != "" {
			if _, err := scheduler.ScheduleDaily(cfg.ReportTime, job); err != nil {
				log.Fatalf("schedule reports: %v", err)
			}
		} else {
			if _, err := scheduler.ScheduleInterval(cfg.ReportInterval, job); err != nil {
				log.Fatalf("schedule reports: %v", err)
			}
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()
	log.Printf("[info] dashboard API listening on :%s", cfg.Port)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("[error] shutdown: %v", err)
	}
	log.Println("Shutdown complete.")
}
