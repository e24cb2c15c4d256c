package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	autherrors "github.com/indocarisinternational/admin-caris/internal/auth/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	sessionKeyPrefix = "session:"
	verifyKeyPrefix  = "auth:verify:"
	channelPrefix    = "auth:session:"
)

type session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type verification struct {
	UserID     string `json:"user_id"`
	RedirectTo string `json:"redirect_to"`
}

func SessionKey(sid string) string {
	return sessionKeyPrefix + sid
}

func SessionChannel(userID string) string {
	return channelPrefix + userID
}

func verifyKey(token string) string {
	return verifyKeyPrefix + token
}

func putJSON(ctx context.Context, rdb *redis.Client, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, data, ttl).Err()
}

// getJSON decodes key into v; a missing key yields notFound.
func getJSON(ctx context.Context, rdb *redis.Client, key string, v any, notFound error) error {
	raw, err := rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return notFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

func (s *service) loadSession(ctx context.Context, sid string) (session, error) {
	var sess session
	err := getJSON(ctx, s.rdb, SessionKey(sid), &sess, autherrors.ErrSessionNotFound)
	return sess, err
}

func (s *service) publish(ctx context.Context, ev SessionEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	if err := s.rdb.Publish(ctx, SessionChannel(ev.UserID), data).Err(); err != nil {
		s.logger.Warn("publish session event failed",
			zap.String("type", ev.Type),
			zap.String("user_id", ev.UserID),
			zap.Error(err),
		)
	}
}

// Subscription delivers the session events of one user until Close.
type Subscription struct {
	ps     *redis.PubSub
	events chan SessionEvent
	done   chan struct{}
}

func newSubscription(ps *redis.PubSub, logger *zap.Logger) *Subscription {
	sub := &Subscription{
		ps:     ps,
		events: make(chan SessionEvent, 4),
		done:   make(chan struct{}),
	}
	go func() {
		defer close(sub.events)
		for msg := range ps.Channel() {
			var ev SessionEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				logger.Warn("malformed session event", zap.String("channel", msg.Channel), zap.Error(err))
				continue
			}
			select {
			case sub.events <- ev:
			case <-sub.done:
				return
			}
		}
	}()
	return sub
}

func (s *Subscription) Events() <-chan SessionEvent {
	return s.events
}

func (s *Subscription) Close() error {
	select {
	case <-s.done:
		return nil
	default:
		close(s.done)
	}
	return s.ps.Close()
}
