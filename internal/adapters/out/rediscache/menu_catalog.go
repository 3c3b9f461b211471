package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hotelpos/internal/core/domain/model/kernel"
	"hotelpos/internal/core/domain/model/menu"
	"hotelpos/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	menuKeyPrefix = "hotelpos:menu:available:"
	menuIndexKey  = "hotelpos:menu:keys"
	allCategories = "*"

	DefaultMenuTTL = 5 * time.Minute
)

// MenuCatalog caches the orderable menu per category. Reads fall through to
// the wrapped catalog on a miss or when Redis is unavailable, so a cache
// outage slows order entry down without breaking it.
type MenuCatalog struct {
	client *redis.Client
	source ports.MenuCatalog
	ttl    time.Duration
	logger *slog.Logger
}

func NewMenuCatalog(client *redis.Client, source ports.MenuCatalog, ttl time.Duration, logger *slog.Logger) *MenuCatalog {
	if ttl <= 0 {
		ttl = DefaultMenuTTL
	}
	return &MenuCatalog{
		client: client,
		source: source,
		ttl:    ttl,
		logger: logger.With("component", "menu_cache"),
	}
}

type cachedMenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
	Available   bool   `json:"available"`
	ImageURL    string `json:"image_url,omitempty"`
}

func (c *MenuCatalog) ListAvailable(ctx context.Context, category string) ([]*menu.MenuItem, error) {
	key := menuKey(category)

	payload, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		items, decodeErr := decodeMenu(payload)
		if decodeErr == nil {
			return items, nil
		}
		c.logger.Warn("discarding unreadable menu cache entry", "key", key, "error", decodeErr)
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warn("menu cache read failed", "key", key, "error", err)
	}

	items, err := c.source.ListAvailable(ctx, category)
	if err != nil {
		return nil, err
	}

	if err = c.store(ctx, key, items); err != nil {
		c.logger.Warn("menu cache write failed", "key", key, "error", err)
	}

	return items, nil
}

// Invalidate drops every cached listing. The index set tracks which category
// keys exist so no key scan is needed.
func (c *MenuCatalog) Invalidate(ctx context.Context) error {
	keys, err := c.client.SMembers(ctx, menuIndexKey).Result()
	if err != nil {
		return fmt.Errorf("list cached menu keys: %w", err)
	}

	keys = append(keys, menuIndexKey)
	if err = c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("drop cached menu: %w", err)
	}
	return nil
}

func (c *MenuCatalog) store(ctx context.Context, key string, items []*menu.MenuItem) error {
	payload, err := encodeMenu(items)
	if err != nil {
		return err
	}

	pipe := c.client.TxPipeline()
	pipe.Set(ctx, key, payload, c.ttl)
	pipe.SAdd(ctx, menuIndexKey, key)
	pipe.Expire(ctx, menuIndexKey, c.ttl)

	_, err = pipe.Exec(ctx)
	return err
}

func menuKey(category string) string {
	if category == "" {
		return menuKeyPrefix + allCategories
	}
	return menuKeyPrefix + category
}

func encodeMenu(items []*menu.MenuItem) ([]byte, error) {
	cached := make([]cachedMenuItem, 0, len(items))
	for _, item := range items {
		cached = append(cached, cachedMenuItem{
			ID:          item.ID().String(),
			Name:        item.Name(),
			Description: item.Description(),
			Category:    item.Category(),
			Price:       item.Price().Int64(),
			Available:   item.IsAvailable(),
			ImageURL:    item.ImageURL(),
		})
	}
	return json.Marshal(cached)
}

func decodeMenu(payload []byte) ([]*menu.MenuItem, error) {
	var cached []cachedMenuItem
	if err := json.Unmarshal(payload, &cached); err != nil {
		return nil, err
	}

	items := make([]*menu.MenuItem, 0, len(cached))
	for _, c := range cached {
		id, err := kernel.UUIDFromString(c.ID)
		if err != nil {
			return nil, err
		}
		item, err := menu.RestoreMenuItem(id, c.Name, c.Description, c.Category, kernel.Money(c.Price), c.Available, c.ImageURL)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
