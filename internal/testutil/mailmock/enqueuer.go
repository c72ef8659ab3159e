package mailmock

import (
	"context"
	"sync"

	notifUsecase "declatogo-backend/internal/usecase/notification"
)

var _ notifUsecase.EmailEnqueuer = (*Enqueuer)(nil)

// Enqueuer records enqueued jobs; set Err to simulate a broken channel.
type Enqueuer struct {
	mu   sync.Mutex
	Jobs []notifUsecase.EmailJob
	Err  error
}

func (m *Enqueuer) Enqueue(ctx context.Context, job notifUsecase.EmailJob) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	m.Jobs = append(m.Jobs, job)
	m.mu.Unlock()
	return nil
}

func (m *Enqueuer) SentTo(addr string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, j := range m.Jobs {
		if j.To == addr {
			n++
		}
	}
	return n
}
