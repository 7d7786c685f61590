package mail

import (
	"context"
	"sync"

	"github.com/quanticedge/profile-portal/internal/domain"
)

// Recorder is a Notifier that captures sent notifications in memory.
// Used by tests and as a stand-in when no SMTP relay is configured.
type Recorder struct {
	mu          sync.Mutex
	Welcomes    []string
	AdminAlerts []string
	Err         error
}

func (r *Recorder) SendWelcome(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.Welcomes = append(r.Welcomes, user.Email)
	return nil
}

func (r *Recorder) SendAdminAlert(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.AdminAlerts = append(r.AdminAlerts, user.Email)
	return nil
}

// Sent returns how many notifications of both kinds were recorded.
func (r *Recorder) Sent() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Welcomes) + len(r.AdminAlerts)
}
