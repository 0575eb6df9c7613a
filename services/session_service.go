package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront/logger"
)

// SessionStore tracks who is logged in and since when. A valid JWT without a
// live session record is rejected, which is what makes logout an actual
// revocation.
type SessionStore interface {
	Create(ctx context.Context, userID int, remember bool) error
	Validate(ctx context.Context, userID int) (bool, error)
	Destroy(ctx context.Context, userID int) error
}

type SessionService struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionService builds a Redis-backed session store. A nil client
// disables session tracking entirely; Validate then always passes, leaving
// JWT expiry as the only timeout.
func NewSessionService(client *redis.Client, ttl time.Duration) *SessionService {
	if client == nil {
		logger.Log.Warn().Msg("session store disabled, falling back to JWT expiry only")
	}
	return &SessionService{client: client, ttl: ttl}
}

func sessionKey(userID int) string {
	return fmt.Sprintf("session:%d", userID)
}

func (s *SessionService) Create(ctx context.Context, userID int, remember bool) error {
	if s.client == nil {
		return nil
	}

	err := s.client.HSet(ctx, sessionKey(userID), map[string]interface{}{
		"login_time": time.Now().Unix(),
		"remember":   strconv.FormatBool(remember),
	}).Err()
	if err != nil {
		return err
	}

	// Remember-me sessions live until logout; others expire with the TTL.
	if remember {
		return s.client.Persist(ctx, sessionKey(userID)).Err()
	}
	return s.client.Expire(ctx, sessionKey(userID), s.ttl).Err()
}

func (s *SessionService) Validate(ctx context.Context, userID int) (bool, error) {
	if s.client == nil {
		return true, nil
	}

	fields, err := s.client.HGetAll(ctx, sessionKey(userID)).Result()
	if err != nil {
		return false, err
	}
	if len(fields) == 0 {
		return false, nil
	}

	loginUnix, err := strconv.ParseInt(fields["login_time"], 10, 64)
	if err != nil {
		return false, nil
	}
	remember := fields["remember"] == "true"

	return sessionValid(time.Unix(loginUnix, 0), remember, time.Now(), s.ttl), nil
}

func (s *SessionService) Destroy(ctx context.Context, userID int) error {
	if s.client == nil {
		return nil
	}
	return s.client.Del(ctx, sessionKey(userID)).Err()
}

// sessionValid applies the session rule: a record is valid when remember-me
// was set, or when less than the TTL has passed since login.
func sessionValid(loginTime time.Time, remember bool, now time.Time, ttl time.Duration) bool {
	if remember {
		return true
	}
	return now.Sub(loginTime) < ttl
}
