package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/taskdeck/task-api/internal/core/domain"
	"github.com/taskdeck/task-api/internal/core/ports"
)

const cacheTTL = 60 * time.Second

// UserCache is a read-through cache in front of the user store, used on the
// per-request identity-resolution path so that every authenticated request
// does not hit the database. Entries never contain the password hash and
// expire after a short TTL; login always reads the store directly.
//
// A Redis outage degrades to plain store reads, it never fails the request.
type UserCache struct {
	client *redis.Client
	next   ports.UserReader
	log    zerolog.Logger
}

func NewUserCache(client *redis.Client, next ports.UserReader, log zerolog.Logger) *UserCache {
	return &UserCache{client: client, next: next, log: log}
}

func (c *UserCache) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	key := c.key(email)

	raw, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var user domain.User
		if err := json.Unmarshal([]byte(raw), &user); err == nil {
			return &user, nil
		}
		// Unreadable entry: drop it and fall through to the store.
		_ = c.client.Del(ctx, key).Err()
	} else if !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Msg("user cache read failed")
	}

	user, err := c.next.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	cached := *user
	cached.PasswordHash = ""
	if data, err := json.Marshal(&cached); err == nil {
		if err := c.client.Set(ctx, key, data, cacheTTL).Err(); err != nil {
			c.log.Warn().Err(err).Msg("user cache write failed")
		}
	}

	return user, nil
}

func (c *UserCache) key(email string) string {
	return fmt.Sprintf("user:email:%s", email)
}
