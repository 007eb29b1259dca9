package bootstrap

import (
	"gymgain/internal/infra/session"
	"gymgain/internal/pkg/config"
	"gymgain/internal/pkg/sessiontoken"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionTokenService,
		fx.Annotate(
			NewSessionStore,
			fx.As(new(session.Store)),
		),
	),
)

func NewSessionTokenService(cfg config.Config) *sessiontoken.Service {
	return sessiontoken.NewService(cfg.Session.Secret, cfg.Session.TTL)
}

func NewSessionStore(client *redis.Client, cfg config.Config) *session.RedisStore {
	return session.NewRedisStore(client, cfg.Session)
}
