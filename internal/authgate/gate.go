// Package authgate admits only authenticated sessions to the console. A Gate
// resolves the session once, then follows sign-out notifications for the
// rest of its lifetime.
package authgate

import (
	"context"
	"sync"

	"github.com/indocarisinternational/admin-caris/internal/auth"

	"go.uber.org/zap"
)

type State string

const (
	StateChecking        State = "checking"
	StateAuthenticated   State = "authenticated"
	StateUnauthenticated State = "unauthenticated"
)

type Subscription interface {
	Events() <-chan auth.SessionEvent
	Close() error
}

// Source is the slice of the auth service a gate depends on.
type Source interface {
	CurrentSession(ctx context.Context, token string) (auth.SessionResponse, error)
	Subscribe(ctx context.Context, userID string) (Subscription, error)
}

type serviceSource struct {
	svc auth.Service
}

func FromService(svc auth.Service) Source {
	return serviceSource{svc: svc}
}

func (s serviceSource) CurrentSession(ctx context.Context, token string) (auth.SessionResponse, error) {
	return s.svc.CurrentSession(ctx, token)
}

func (s serviceSource) Subscribe(ctx context.Context, userID string) (Subscription, error) {
	sub, err := s.svc.Subscribe(ctx, userID)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

type Gate struct {
	source Source
	logger *zap.Logger

	mu      sync.Mutex
	state   State
	session auth.SessionResponse
	sub     Subscription
	changes chan State
	done    chan struct{}
	closed  bool
}

func New(source Source, logger ...*zap.Logger) *Gate {
	l := zap.L().Named("authgate")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("authgate")
	}
	return &Gate{
		source:  source,
		logger:  l,
		state:   StateChecking,
		changes: make(chan State, 1),
		done:    make(chan struct{}),
	}
}

// Check resolves token into a session. It only acts while the gate is
// Checking; afterwards it reports the settled state. The returned error is the
// lookup failure behind an Unauthenticated result, if any.
func (g *Gate) Check(ctx context.Context, token string) (State, error) {
	g.mu.Lock()
	if g.state != StateChecking || g.closed {
		state := g.state
		g.mu.Unlock()
		return state, nil
	}
	g.mu.Unlock()

	sess, err := g.source.CurrentSession(ctx, token)

	g.mu.Lock()
	defer g.mu.Unlock()
	if err != nil {
		g.state = StateUnauthenticated
		return g.state, err
	}
	g.state = StateAuthenticated
	g.session = sess
	return g.state, nil
}

// Watch subscribes to the session's notifications. A sign-out of this
// session moves the gate to Unauthenticated and is reported on Changes.
func (g *Gate) Watch(ctx context.Context) error {
	g.mu.Lock()
	if g.state != StateAuthenticated || g.closed || g.sub != nil {
		g.mu.Unlock()
		return nil
	}
	userID := g.session.User.ID
	g.mu.Unlock()

	sub, err := g.source.Subscribe(ctx, userID)
	if err != nil {
		return err
	}

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return sub.Close()
	}
	g.sub = sub
	g.mu.Unlock()

	go g.watch(sub)
	return nil
}

func (g *Gate) watch(sub Subscription) {
	for {
		select {
		case ev, ok := <-sub.Events():
			if !ok {
				return
			}
			if ev.Type == auth.EventSignedOut && ev.SessionID == g.sessionID() {
				g.logger.Info("session ended elsewhere",
					zap.String("user_id", ev.UserID),
					zap.String("session_id", ev.SessionID),
				)
				g.transition(StateUnauthenticated)
				return
			}
		case <-g.done:
			return
		}
	}
}

func (g *Gate) sessionID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.SessionID
}

func (g *Gate) transition(to State) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed || g.state != StateAuthenticated {
		return
	}
	g.state = to
	select {
	case g.changes <- to:
	default:
	}
}

func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Gate) Session() (auth.SessionResponse, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session, g.state == StateAuthenticated
}

// Changes delivers state transitions that happen after Watch.
func (g *Gate) Changes() <-chan State {
	return g.changes
}

// Close unsubscribes. The gate keeps its last state.
func (g *Gate) Close() error {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return nil
	}
	g.closed = true
	close(g.done)
	sub := g.sub
	g.mu.Unlock()

	if sub != nil {
		return sub.Close()
	}
	return nil
}
