package scheduler

import (
	"context"
	"fmt"

	"bankwise_support_backend/internal/email"
	"bankwise_support_backend/internal/sms"
	"bankwise_support_backend/platform/config"
	"bankwise_support_backend/platform/logger"

	"github.com/hibiken/asynq"
)

// Worker consumes delivery tasks and hands them to the channel senders.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	sms    *sms.Service
	email  email.Sender
	log    *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, smsService *sms.Service, emailSender email.Sender, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL)
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server: server,
		mux:    mux,
		sms:    smsService,
		email:  emailSender,
		log:    log,
	}

	mux.HandleFunc(TaskSMSDeliver, w.handleSMSDeliver)
	mux.HandleFunc(TaskEmailDeliver, w.handleEmailDeliver)

	return w, nil
}

func (w *Worker) handleSMSDeliver(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseSMSDeliverPayload(task)
	if err != nil {
		return err
	}
	if w.sms == nil {
		return nil
	}

	_, err = w.sms.Send(ctx, payload.To, payload.Message)
	return err
}

func (w *Worker) handleEmailDeliver(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseEmailDeliverPayload(task)
	if err != nil {
		return err
	}
	if w.email == nil {
		return nil
	}

	return w.email.Send(ctx, payload.To, payload.Subject, payload.Body)
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("delivery worker stopped", "error", err)
	}
}
