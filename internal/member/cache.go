package member

import (
	"context"

	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/cache"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/logger"
)

const usernameKeyPrefix = "member:username:"

// existenceCache remembers usernames known to be taken.
// Usernames never change and members are never deleted, so only positives are stored.
// A nil cache disables it.
type existenceCache struct {
	cache cache.Cache
}

func newExistenceCache(c cache.Cache) *existenceCache {
	return &existenceCache{cache: c}
}

func (e *existenceCache) hasUsername(ctx context.Context, username string) bool {
	if e.cache == nil {
		return false
	}

	_, ok, err := e.cache.Get(ctx, usernameKeyPrefix+username)
	if err != nil {
		logger.FromContext(ctx).Warn("아이디 캐시 조회 실패", "username", logger.MaskUsername(username), "error", err)
		return false
	}
	return ok
}

func (e *existenceCache) markUsername(ctx context.Context, username string) {
	if e.cache == nil {
		return
	}

	if err := e.cache.Set(ctx, usernameKeyPrefix+username, "1", 0); err != nil {
		logger.FromContext(ctx).Warn("아이디 캐시 저장 실패", "username", logger.MaskUsername(username), "error", err)
	}
}
