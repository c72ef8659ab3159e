package queue

import (
	"context"
	"encoding/json"
	"time"

	notifUsecase "declatogo-backend/internal/usecase/notification"

	"github.com/hibiken/asynq"
)

// TaskSendRecoveryEmail is consumed by cmd/worker.
const TaskSendRecoveryEmail = "email:document_recovered"

// EmailEnqueuer pushes recovery emails onto the redis-backed queue so SMTP
// latency never sits on the declaration write path. One attempt only —
// delivery failures are logged by the worker, not retried.
type EmailEnqueuer struct{ client *asynq.Client }

func NewEmailEnqueuer(redisAddr string, redisDB int) *EmailEnqueuer {
	return &EmailEnqueuer{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr, DB: redisDB}),
	}
}

func (e *EmailEnqueuer) Enqueue(ctx context.Context, job notifUsecase.EmailJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}
	task := asynq.NewTask(TaskSendRecoveryEmail, payload)
	_, err = e.client.EnqueueContext(ctx, task,
		asynq.MaxRetry(0),
		asynq.Timeout(30*time.Second),
	)
	return err
}

func (e *EmailEnqueuer) Close() error { return e.client.Close() }
