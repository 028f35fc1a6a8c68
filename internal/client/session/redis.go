package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Logout events are published as "logout <origin>", where origin is the
// instance id of the store that cleared the session.
const logoutEvent = "logout"

// RedisStore keeps the session record in Redis so that several consoles
// can share one login. Clearing the session is announced on a pub/sub
// channel; see WatchLogout.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	origin string
}

func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "nauticalflow:session"
	}
	return &RedisStore{client: client, prefix: prefix, origin: uuid.NewString()}
}

func (s *RedisStore) key(name string) string {
	return s.prefix + ":" + name
}

func (s *RedisStore) channel() string {
	return s.key("events")
}

func (s *RedisStore) get(ctx context.Context, name string) (string, error) {
	v, err := s.client.Get(ctx, s.key(name)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", name, err)
	}
	return v, nil
}

func (s *RedisStore) GetToken(ctx context.Context) (string, error) {
	return s.get(ctx, "token")
}

func (s *RedisStore) GetDisplayName(ctx context.Context) (string, error) {
	return s.get(ctx, "display_name")
}

func (s *RedisStore) SetSession(ctx context.Context, token, displayName string) error {
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, s.key("token"), token, 0)
		p.Set(ctx, s.key("display_name"), displayName, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (s *RedisStore) ClearSession(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key("token"), s.key("display_name")).Err(); err != nil {
		return fmt.Errorf("redis clear session: %w", err)
	}
	if err := s.client.Publish(ctx, s.channel(), logoutEvent+" "+s.origin).Err(); err != nil {
		return fmt.Errorf("redis publish logout: %w", err)
	}
	return nil
}

func (s *RedisStore) SetLogoutReason(ctx context.Context, reason LogoutReason) error {
	var err error
	if reason == ReasonNone {
		err = s.client.Del(ctx, s.key("logout_reason")).Err()
	} else {
		err = s.client.Set(ctx, s.key("logout_reason"), string(reason), 0).Err()
	}
	if err != nil {
		return fmt.Errorf("redis set logout reason: %w", err)
	}
	return nil
}

func (s *RedisStore) TakeLogoutReason(ctx context.Context) (LogoutReason, error) {
	v, err := s.client.GetDel(ctx, s.key("logout_reason")).Result()
	if errors.Is(err, redis.Nil) {
		return ReasonNone, nil
	}
	if err != nil {
		return ReasonNone, fmt.Errorf("redis take logout reason: %w", err)
	}
	return parseReason(v), nil
}

// WatchLogout calls onLogout every time another console sharing this
// store clears the session. Clears made through s itself are skipped. It
// blocks until ctx is done or the subscription breaks.
func (s *RedisStore) WatchLogout(ctx context.Context, onLogout func()) error {
	sub := s.client.Subscribe(ctx, s.channel())
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("redis subscribe: %w", err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			event, origin, _ := strings.Cut(msg.Payload, " ")
			if event == logoutEvent && origin != s.origin {
				onLogout()
			}
		}
	}
}
