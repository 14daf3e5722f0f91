package customorder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

//go:generate mockgen -source=customorder_store.go -destination=../mock/customorder/customorder_store_mock.go -package=mock
type DraftStore interface {
	// Load returns the user's draft, or (zero, false) when none exists.
	Load(ctx context.Context, userID string) (Draft, bool, error)
	Save(ctx context.Context, userID string, d Draft) error
	Discard(ctx context.Context, userID string) error
}

type redisDraftStore struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewDraftStore(rdb *redis.Client, logger *zap.Logger) DraftStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &redisDraftStore{rdb: rdb, logger: logger.Named("customorder.store")}
}

func draftKey(userID string) string {
	return fmt.Sprintf("custom-order:%s", userID)
}

func (s *redisDraftStore) Load(ctx context.Context, userID string) (Draft, bool, error) {
	raw, err := s.rdb.Get(ctx, draftKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return Draft{}, false, nil
	}
	if err != nil {
		return Draft{}, false, err
	}

	var d Draft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		s.logger.Warn("discarding corrupt draft payload",
			zap.String("user_id", userID),
			zap.Error(err))
		return Draft{}, false, nil
	}
	return d, true, nil
}

func (s *redisDraftStore) Save(ctx context.Context, userID string, d Draft) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, draftKey(userID), payload, 0).Err()
}

func (s *redisDraftStore) Discard(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, draftKey(userID)).Err()
}
