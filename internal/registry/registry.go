package registry

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/autoweb/autoweb/internal/browser"
	"github.com/autoweb/autoweb/internal/common/clock"
	"github.com/autoweb/autoweb/pkg/config"
	"github.com/autoweb/autoweb/pkg/event"
	evmodels "github.com/autoweb/autoweb/pkg/event/models"
	"github.com/autoweb/autoweb/pkg/models"
)

var (
	ErrRegistryShutdown = errors.New("instance registry is shutdown")

	genInstanceID = uuid.NewString
)

type Config interface {
	config.BrowserConfig
	config.RegistryConfig
}

// SessionRegistry tracks live browser sessions by instance id.
type SessionRegistry interface {
	Create(ctx context.Context, instanceID string, headless *bool) (*Session, error)
	Get(instanceID string) (*Session, error)
	Close(ctx context.Context, instanceID string) error
	List() []*Session
	Active() int
}

type LocalRegistry struct {
	factory  browser.Factory
	cfg      Config
	broker   event.EventBroker
	now      clock.NowFunc
	sessions map[string]*Session
	shutdown bool
	mtx      sync.RWMutex
	l        *zap.SugaredLogger
}

func NewLocalRegistry(
	factory browser.Factory,
	cfg Config,
	broker event.EventBroker,
	now clock.NowFunc,
	l *zap.Logger,
) *LocalRegistry {
	return &LocalRegistry{
		factory:  factory,
		cfg:      cfg,
		broker:   broker,
		now:      now,
		sessions: make(map[string]*Session),
		l:        l.Sugar(),
	}
}

func (r *LocalRegistry) Create(ctx context.Context, instanceID string, headless *bool) (*Session, error) {
	if instanceID == "" {
		instanceID = genInstanceID()
	}

	if err := r.check(instanceID); err != nil {
		return nil, err
	}

	hl := r.cfg.Headless()
	if headless != nil {
		hl = *headless
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.CreateTimeout())
	defer cancel()

	start := time.Now()
	drv, err := r.factory.Launch(ctx, browser.Options{Headless: hl})
	if err != nil {
		r.broker.Publish(evmodels.NewSessionCreatedEvent(evmodels.SessionCreated{
			InstanceID: instanceID,
			Headless:   hl,
			Error:      err,
		}))
		return nil, models.WrapTimeoutErr(err, "failed to launch browser instance")
	}

	sess := NewSession(instanceID, hl, drv, r.now())
	if err := r.add(sess); err != nil {
		if cErr := drv.Close(context.Background()); cErr != nil {
			r.l.Warnw("failed to close orphaned browser instance", zap.Error(cErr))
		}
		return nil, err
	}

	r.broker.Publish(evmodels.NewSessionCreatedEvent(evmodels.SessionCreated{
		InstanceID:    instanceID,
		Headless:      hl,
		StartDuration: time.Since(start),
	}))
	r.l.With(
		zap.String("instance_id", instanceID),
		zap.Bool("headless", hl),
	).Infof("browser instance is ready in %v", time.Since(start))

	return sess, nil
}

func (r *LocalRegistry) Get(instanceID string) (*Session, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	sess, ok := r.sessions[instanceID]
	if !ok {
		return nil, models.NewNotFoundError(errors.Errorf("instance %s doesn't exist", instanceID))
	}
	return sess, nil
}

func (r *LocalRegistry) Close(ctx context.Context, instanceID string) error {
	r.mtx.Lock()
	sess, ok := r.sessions[instanceID]
	if ok {
		delete(r.sessions, instanceID)
	}
	r.mtx.Unlock()

	if !ok {
		return models.NewNotFoundError(errors.Errorf("instance %s doesn't exist", instanceID))
	}

	if err := sess.Driver().Close(ctx); err != nil {
		r.l.Warnw("failed to close browser instance", zap.String("instance_id", instanceID), zap.Error(err))
	}

	r.broker.Publish(evmodels.NewSessionClosedEvent(evmodels.SessionClosed{
		InstanceID:      instanceID,
		SessionDuration: r.now().Sub(sess.Created()),
	}))
	r.l.Infow("browser instance has been closed", zap.String("instance_id", instanceID))
	return nil
}

func (r *LocalRegistry) List() []*Session {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	res := make([]*Session, 0, len(r.sessions))
	for _, sess := range r.sessions {
		res = append(res, sess)
	}
	return res
}

func (r *LocalRegistry) Active() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return len(r.sessions)
}

func (r *LocalRegistry) Shutdown(ctx context.Context) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.shutdown = true

	r.l.Infof("instance registry is shutting down, closing %d browser instances", len(r.sessions))

	done := make(chan struct{})
	var wg sync.WaitGroup
	for id, sess := range r.sessions {
		wg.Add(1)
		go func(sess *Session) {
			defer wg.Done()
			if err := sess.Driver().Close(ctx); err != nil {
				r.l.Warnw("failed to close browser instance", zap.String("instance_id", sess.ID()), zap.Error(err))
			}
		}(sess)
		delete(r.sessions, id)
	}

	go func() {
		defer close(done)
		wg.Wait()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
	}
	return nil
}

// check fails fast before paying for a browser launch, add re-validates
// under the same lock before publishing the session.
func (r *LocalRegistry) check(instanceID string) error {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.validateLocked(instanceID)
}

func (r *LocalRegistry) add(sess *Session) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if err := r.validateLocked(sess.ID()); err != nil {
		return err
	}

	r.sessions[sess.ID()] = sess
	return nil
}

func (r *LocalRegistry) validateLocked(instanceID string) error {
	if r.shutdown {
		return models.NewServiceUnavailableError(ErrRegistryShutdown)
	}
	if _, ok := r.sessions[instanceID]; ok {
		return models.NewConflictError(errors.Errorf("instance %s already exists", instanceID))
	}
	if limit := r.cfg.MaxSessions(); limit > 0 && len(r.sessions) >= limit {
		return models.NewQuotaExceededError(errors.Errorf("active instance limit reached (%d)", limit))
	}
	return nil
}
