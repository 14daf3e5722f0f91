package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Line is one cart entry. Name and price are snapshots taken when the
// item was added, so later catalog edits do not change an open cart.
type Line struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

//go:generate mockgen -source=cart_store.go -destination=../mock/cart/cart_store_mock.go -package=mock
type Store interface {
	Load(ctx context.Context, userID string) ([]Line, error)
	Save(ctx context.Context, userID string, lines []Line) error
	Clear(ctx context.Context, userID string) error
}

type redisStore struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewStore(rdb *redis.Client, logger *zap.Logger) Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &redisStore{rdb: rdb, logger: logger.Named("cart.store")}
}

func cartKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}

// Load returns the stored lines. A corrupt payload is treated as an
// empty cart rather than an error, so a bad write can never lock a
// user out of shopping.
func (s *redisStore) Load(ctx context.Context, userID string) ([]Line, error) {
	raw, err := s.rdb.Get(ctx, cartKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return []Line{}, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		s.logger.Warn("discarding corrupt cart payload",
			zap.String("user_id", userID),
			zap.Error(err))
		return []Line{}, nil
	}
	return lines, nil
}

func (s *redisStore) Save(ctx context.Context, userID string, lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, cartKey(userID), payload, 0).Err()
}

func (s *redisStore) Clear(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, cartKey(userID)).Err()
}
