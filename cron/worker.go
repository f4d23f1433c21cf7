package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"courtcredits/config"
	"courtcredits/models"
	"courtcredits/services/dispatch"
	"courtcredits/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Reloader re-reads the catalog source and publishes it.
type Reloader interface {
	Reload() (uint64, error)
}

// RedisOpt returns the connection options of the action queue.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitActionWorker runs the action worker and the catalog reload scheduler in background.
// The returned function stops both.
func InitActionWorker(d dispatch.Dispatcher, reloader Reloader, logger *zap.Logger) func() {
	redisOpts := RedisOpt()

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				tasks.QueueActions: 3,
				"default":          1,
			},
		},
	)
	mux := NewActionMux(d, reloader, logger)

	go func() {
		logger.Info("[ActionWorker] starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("[ActionWorker] failed to start worker",
					zap.Int("attempt", attempts), zap.Int("max", maxAttempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("[ActionWorker] max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	// Each process registers its own entry and reloads whichever store runs the task, so the
	// scheduled reload assumes one instance per queue. Leave CatalogReloadCron empty when
	// scaling out and call POST /api/admin/catalog/reload on each instance instead.
	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	scheduled := false
	spec := config.AppConfig.CatalogReloadCron
	if spec != "" {
		if _, err := scheduler.Register(spec, tasks.NewCatalogReloadTask(), asynq.Queue(tasks.QueueActions)); err != nil {
			logger.Error("[ActionWorker] invalid catalog reload schedule", zap.String("spec", spec), zap.Error(err))
		} else {
			scheduled = true
			go func() {
				if err := scheduler.Run(); err != nil {
					logger.Error("[ActionWorker] scheduler stopped", zap.Error(err))
				}
			}()
		}
	}

	return func() {
		if scheduled {
			scheduler.Shutdown()
		}
		srv.Shutdown()
	}
}

// NewActionMux routes queued tasks to the dispatcher and the catalog reloader.
func NewActionMux(d dispatch.Dispatcher, reloader Reloader, logger *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeCreditPurchase, handle(logger, d.PurchaseCredits))
	mux.HandleFunc(tasks.TypeCourtBooking, handle(logger, d.BookCourt))
	mux.HandleFunc(tasks.TypeStudentMessage, handle(logger, d.MessageStudent))
	mux.HandleFunc(tasks.TypeCalendarEvent, handle(logger, d.AddCalendarEvent))
	mux.HandleFunc(tasks.TypeCatalogReload, func(ctx context.Context, task *asynq.Task) error {
		version, err := reloader.Reload()
		if err != nil {
			return err
		}
		logger.Info("[CatalogReload] catalog published", zap.Uint64("version", version))
		return nil
	})
	return mux
}

// payload is the set of task payloads the worker decodes.
type payload interface {
	models.CreditPurchasePayload | models.CourtBookingPayload |
		models.StudentMessagePayload | models.CalendarEventPayload
}

func handle[P payload](logger *zap.Logger, fn func(context.Context, P) error) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p P
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("[ActionHandler] invalid payload", zap.String("type", task.Type()), zap.Error(err))
			// Malformed payloads never succeed on retry.
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}
		if err := fn(ctx, p); err != nil {
			logger.Error("[ActionHandler] dispatch failed", zap.String("type", task.Type()), zap.Error(err))
			return err
		}
		return nil
	}
}
