package redisstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"vicqa-tradehub/internal/domain/cart"
	"vicqa-tradehub/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "cart:"

// CartStore keeps carts in Redis as a JSON array of {productId, quantity}
// lines, keyed by the cart token and refreshed with a sliding TTL on every
// save. It serves both the write-side CartStore and the read-side CartReader
// ports.
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCartStore(client *redis.Client, ttl time.Duration) *CartStore {
	return &CartStore{client: client, ttl: ttl}
}

func cartKey(token uuid.UUID) string {
	return cartKeyPrefix + token.String()
}

// Load returns the persisted cart, or an empty cart when the token has no
// entry. A payload that no longer decodes (pre-migration snapshot format)
// is treated as an empty cart rather than an error, so a stale key never
// locks a shopper out.
func (s *CartStore) Load(ctx context.Context, token uuid.UUID) (*cart.Cart, error) {
	raw, err := s.client.Get(ctx, cartKey(token)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return cart.NewCart(token), nil
		}
		return nil, infra.WrapRepoErr("failed to load cart", err, infra.KindStoreUnavailable)
	}

	var lines []cart.Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		slog.Warn("discarding unreadable cart payload", "token", token, "error", err)
		return cart.NewCart(token), nil
	}
	return cart.ReconstructCart(token, lines), nil
}

func (s *CartStore) Save(ctx context.Context, c *cart.Cart) error {
	key := cartKey(c.Token())

	if c.IsEmpty() {
		if err := s.client.Del(ctx, key).Err(); err != nil {
			return infra.WrapRepoErr("failed to clear cart", err, infra.KindStoreUnavailable)
		}
		return nil
	}

	raw, err := json.Marshal(c.Lines())
	if err != nil {
		return infra.WrapRepoErr("failed to encode cart", err, infra.KindStoreUnavailable)
	}
	if err := s.client.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to save cart", err, infra.KindStoreUnavailable)
	}
	return nil
}
