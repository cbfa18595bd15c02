package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"ysgtransport/config"
	"ysgtransport/services/reminder"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeReminderSweep = "reminder:sweep"

// InitSweepWorker runs the async sweep worker in background: an asynq server
// consuming sweep tasks plus a periodic scheduler enqueuing one every few
// minutes. Reminders then fire even when no external cron hits the trigger
// endpoint. Callers must not invoke this when REDIS_ADDR is unset.
func InitSweepWorker(engine reminder.Engine) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			// One sweep at a time; the engine's per-ride loop is sequential
			// and overlapping sweeps only produce skipped outcomes.
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSweep, handleSweepTask(engine))

	// Start Redis health monitor
	go monitorRedisConnection()

	go runScheduler(redisOpts)

	// Start async worker with retry logic
	go func() {
		log.Println("[SweepWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SweepWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SweepWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// runScheduler enqueues a sweep task on a fixed interval.
func runScheduler(redisOpts asynq.RedisClientOpt) {
	interval := config.AppConfig.ReminderSweepIntervalMin
	if interval <= 0 {
		interval = 5
	}

	scheduler := asynq.NewScheduler(redisOpts, nil)
	cronspec := fmt.Sprintf("@every %dm", interval)
	if _, err := scheduler.Register(cronspec, asynq.NewTask(TypeReminderSweep, nil)); err != nil {
		log.Printf("[SweepWorker] ❌ Failed to register sweep schedule: %v", err)
		return
	}

	log.Printf("[SweepWorker] ⏰ Sweep scheduled every %dm", interval)
	if err := scheduler.Run(); err != nil {
		log.Printf("[SweepWorker] ❌ Scheduler stopped: %v", err)
	}
}

func handleSweepTask(engine reminder.Engine) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		outcomes := engine.Run(ctx)

		var sent, skipped, failed int
		for _, o := range outcomes {
			switch o.Result {
			case reminder.OutcomeSent:
				sent++
			case reminder.OutcomeSkipped:
				skipped++
			case reminder.OutcomeFailed:
				failed++
			}
		}

		log.Printf("[SweepWorker] ✅ Sweep done: %d sent, %d skipped, %d failed", sent, skipped, failed)
		// Per-ride failures stay inside the sweep; the unset flags make the
		// next sweep retry them. The task itself always succeeds.
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[SweepWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
