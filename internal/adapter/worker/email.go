package worker

import (
	"context"
	"encoding/json"
	"log"

	"declatogo-backend/internal/adapter/queue"
	notifUsecase "declatogo-backend/internal/usecase/notification"

	"github.com/hibiken/asynq"
)

func (w *WorkerHandler) RegisterEmailHandlers() {
	w.mux.HandleFunc(queue.TaskSendRecoveryEmail, w.handleSendRecoveryEmail)
}

// handleSendRecoveryEmail is the single delivery attempt. A failure is
// logged and the task dropped (MaxRetry 0 at enqueue time) — the match and
// its in-app notification already committed, and that is the guarantee
// that matters.
func (w *WorkerHandler) handleSendRecoveryEmail(ctx context.Context, task *asynq.Task) error {
	var job notifUsecase.EmailJob
	if err := json.Unmarshal(task.Payload(), &job); err != nil {
		log.Printf("worker: malformed email payload: %v", err)
		return nil
	}

	if err := w.mail.Send(job.To, job.Subject(), job.PlainBody(), job.HTMLBody()); err != nil {
		log.Printf("worker: send %s email to %s for %s failed: %v", job.Kind, job.To, job.OwnReceipt, err)
		return nil
	}
	log.Printf("worker: %s email sent to %s for %s", job.Kind, job.To, job.OwnReceipt)
	return nil
}
