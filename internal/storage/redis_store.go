package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"hacker-menu/internal/model"

	"github.com/redis/go-redis/v9"
)

// RedisStore caches fetched listings so that restarts and several readers
// do not hammer the API.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func listKey(list string) string {
	return fmt.Sprintf("hn:list:%s", list)
}

// emptyKey marks a cached batch with no posts; Redis drops empty lists.
func emptyKey(list string) string {
	return fmt.Sprintf("hn:list:%s:empty", list)
}

func itemKey(id int) string {
	return fmt.Sprintf("hn:item:%d", id)
}

// SaveBatch stores posts and the ordered id list for list, all expiring after ttl.
func (s *RedisStore) SaveBatch(ctx context.Context, list string, posts []model.Post, ttl time.Duration) error {
	pipe := s.rdb.TxPipeline()
	ids := make([]any, 0, len(posts))
	for _, p := range posts {
		b, err := json.Marshal(p)
		if err != nil {
			return err
		}
		pipe.Set(ctx, itemKey(p.ID), b, ttl)
		ids = append(ids, p.ID)
	}
	key := listKey(list)
	pipe.Del(ctx, key)
	if len(ids) > 0 {
		pipe.Del(ctx, emptyKey(list))
		pipe.RPush(ctx, key, ids...)
		pipe.Expire(ctx, key, ttl)
	} else {
		pipe.Set(ctx, emptyKey(list), 1, ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("storage: save %s: %w", list, err)
	}
	return nil
}

// LoadBatch returns the cached posts for list. ok is false on a miss,
// including when any item of the list has expired.
func (s *RedisStore) LoadBatch(ctx context.Context, list string) (posts []model.Post, ok bool, err error) {
	raw, err := s.rdb.LRange(ctx, listKey(list), 0, -1).Result()
	if err != nil {
		return nil, false, fmt.Errorf("storage: load %s: %w", list, err)
	}
	if len(raw) == 0 {
		exists, err := s.rdb.Exists(ctx, emptyKey(list)).Result()
		if err != nil || exists == 0 {
			return nil, false, err
		}
	}
	keys := make([]string, len(raw))
	for i, r := range raw {
		id, err := strconv.Atoi(r)
		if err != nil {
			return nil, false, fmt.Errorf("storage: bad id %q in %s: %w", r, list, err)
		}
		keys[i] = itemKey(id)
	}
	posts = make([]model.Post, 0, len(keys))
	if len(keys) == 0 {
		return posts, true, nil
	}
	vals, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, false, fmt.Errorf("storage: load items: %w", err)
	}
	for _, v := range vals {
		str, isStr := v.(string)
		if !isStr {
			return nil, false, nil
		}
		var p model.Post
		if err := json.Unmarshal([]byte(str), &p); err != nil {
			return nil, false, fmt.Errorf("storage: decode item: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, true, nil
}

// GetItem returns a cached post, ok=false on a miss.
func (s *RedisStore) GetItem(ctx context.Context, id int) (model.Post, bool, error) {
	b, err := s.rdb.Get(ctx, itemKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Post{}, false, nil
	}
	if err != nil {
		return model.Post{}, false, err
	}
	var p model.Post
	if err := json.Unmarshal(b, &p); err != nil {
		return model.Post{}, false, err
	}
	return p, true, nil
}

// ClearList drops the cached id list for list. Items expire on their own.
func (s *RedisStore) ClearList(ctx context.Context, list string) error {
	if err := s.rdb.Del(ctx, listKey(list), emptyKey(list)).Err(); err != nil {
		return fmt.Errorf("storage: clear %s: %w", list, err)
	}
	return nil
}
