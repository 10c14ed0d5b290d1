package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"hotel-reservation/models"

	"github.com/go-redis/redis/v8"
)

// SessionStore keeps login sessions keyed by token.
type SessionStore interface {
	Save(ctx context.Context, session models.Session) error
	Get(ctx context.Context, token string) (models.Session, error)
	Delete(ctx context.Context, token string) error
}

// MemorySessionStore is the default store; sessions vanish with the process.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	now      func() time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]models.Session),
		now:      time.Now,
	}
}

func (m *MemorySessionStore) Save(_ context.Context, session models.Session) error {
	if !session.ExpiresAt.IsZero() && !m.now().Before(session.ExpiresAt) {
		return ErrSessionExpired
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.Token] = session
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, token string) (models.Session, error) {
	m.mu.RLock()
	session, ok := m.sessions[token]
	m.mu.RUnlock()
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	if !session.ExpiresAt.IsZero() && m.now().After(session.ExpiresAt) {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return models.Session{}, ErrSessionNotFound
	}
	return session, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

const redisSessionPrefix = "hotel:session:"

// RedisSessionStore shares sessions between service instances. Expiry is
// left to Redis key TTLs.
type RedisSessionStore struct {
	Client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

func (r *RedisSessionStore) Save(ctx context.Context, session models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	ttl := time.Until(session.ExpiresAt)
	if session.ExpiresAt.IsZero() {
		ttl = 0
	} else if ttl <= 0 {
		return ErrSessionExpired
	}
	if err := r.Client.Set(ctx, redisSessionPrefix+session.Token, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *RedisSessionStore) Get(ctx context.Context, token string) (models.Session, error) {
	var session models.Session
	val, err := r.Client.Get(ctx, redisSessionPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return session, ErrSessionNotFound
		}
		return session, fmt.Errorf("failed to load session: %w", err)
	}
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return session, fmt.Errorf("failed to decode session: %w", err)
	}
	return session, nil
}

func (r *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return r.Client.Del(ctx, redisSessionPrefix+token).Err()
}
