package session

import (
	"context"
	"encoding/json"
	"time"

	"gymgain/internal/pkg/config"
	"gymgain/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errs.New("session not found")

const keyPrefix = "session:"

// Flash is a one-shot message surfaced on the next page render.
type Flash struct {
	Kind    string `json:"kind"` // "success" or "error"
	Message string `json:"message"`
}

// DraftExercise is one entry of an unsaved routine kept in the session while
// the member is still composing it.
type DraftExercise struct {
	ExerciseID   int64  `json:"exercise_id"`
	ExerciseName string `json:"exercise_name"`
	Sets         int32  `json:"sets"`
	Reps         int32  `json:"reps"`
}

type RoutineDraft struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Exercises   []DraftExercise `json:"exercises"`
}

// Session is the server-side state behind the cookie: a snapshot of the
// member plus transient UI state. The balance here is a display cache;
// commands return the authoritative value and the handler writes it back.
type Session struct {
	ID           string        `json:"id"`
	UserID       uuid.UUID     `json:"user_id"`
	Username     string        `json:"username"`
	TokenBalance int32         `json:"token_balance"`
	Tier         string        `json:"tier"`
	Flash        *Flash        `json:"flash,omitempty"`
	TempRoutine  *RoutineDraft `json:"temp_routine,omitempty"`
}

func (s *Session) SetFlash(kind, message string) {
	s.Flash = &Flash{Kind: kind, Message: message}
}

// PopFlash returns the pending flash and clears it.
func (s *Session) PopFlash() *Flash {
	f := s.Flash
	s.Flash = nil
	return f
}

type Store interface {
	Create(ctx context.Context, sess *Session) (string, error)
	Get(ctx context.Context, id string) (*Session, error)
	// Save rewrites the session and refreshes its TTL.
	Save(ctx context.Context, sess *Session) error
	Delete(ctx context.Context, id string) error
}

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, cfg config.SessionConfig) *RedisStore {
	return &RedisStore{client: client, ttl: cfg.TTL}
}

func (s *RedisStore) Create(ctx context.Context, sess *Session) (string, error) {
	sess.ID = uuid.NewString()
	if err := s.write(ctx, sess); err != nil {
		return "", err
	}
	return sess.ID, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, errs.Wrap(err, "failed to read session")
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, errs.Wrap(err, "failed to decode session")
	}
	return &sess, nil
}

func (s *RedisStore) Save(ctx context.Context, sess *Session) error {
	return s.write(ctx, sess)
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return errs.Wrap(err, "failed to delete session")
	}
	return nil
}

func (s *RedisStore) write(ctx context.Context, sess *Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return errs.Wrap(err, "failed to encode session")
	}
	if err := s.client.Set(ctx, keyPrefix+sess.ID, raw, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to store session")
	}
	return nil
}
