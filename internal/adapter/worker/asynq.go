package worker

import (
	"declatogo-backend/internal/adapter/mailer"

	"github.com/hibiken/asynq"
)

type WorkerHandler struct {
	mux  *asynq.ServeMux
	mail mailer.Sender
}

func NewWorkerHandler(mux *asynq.ServeMux, mail mailer.Sender) *WorkerHandler {
	return &WorkerHandler{mux: mux, mail: mail}
}

func (w *WorkerHandler) RegisterHandlers() {
	w.RegisterEmailHandlers()
}
