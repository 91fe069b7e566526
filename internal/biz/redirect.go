package biz

import (
	"context"
	"time"

	"go-shortlink/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// ProviderSet is biz providers.
var ProviderSet = wire.NewSet(NewRedirectUsecase)

// Per-call bounds for the remote tiers. A timed-out cache call counts
// as a cache error, a timed-out store call as store unavailability.
const (
	cacheTimeout = 500 * time.Millisecond
	storeTimeout = 2 * time.Second
	clickTimeout = 5 * time.Second
)

// RedirectUsecase resolves short codes using a cache-aside strategy
// over the link cache and the persistent store, and owns the
// click-increment side effect.
type RedirectUsecase struct {
	repo  domain.LinkRepository
	cache domain.LinkCache
	log   *log.Helper
}

// NewRedirectUsecase creates a new redirect usecase.
func NewRedirectUsecase(repo domain.LinkRepository, cache domain.LinkCache, logger log.Logger) *RedirectUsecase {
	return &RedirectUsecase{
		repo:  repo,
		cache: cache,
		log:   log.NewHelper(logger),
	}
}

// Resolve maps a short code to its destination URL.
//
// The cache is consulted first. A hit is trusted without re-verifying
// against the store; a link deactivated after being cached may keep
// redirecting until the entry's TTL lapses, which is an accepted,
// bounded staleness window. On a miss or a cache failure the store is
// queried and, on success, the cache is repaired before returning.
//
// Errors returned are domain.ErrLinkNotFound when no active link
// exists, or domain.ErrStoreUnavailable when the store failed and the
// cache could not answer either. The latter is logged here, exactly
// once, as an error; callers must not log it again.
func (uc *RedirectUsecase) Resolve(ctx context.Context, code domain.ShortCode) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, cacheTimeout)
	longURL, hit, err := uc.cache.Get(cctx, code)
	cancel()
	if err != nil {
		// Degradation, not failure: the store remains authoritative.
		uc.log.WithContext(ctx).Warnf("link cache unavailable: %v", err)
	}

	if hit {
		// The cache proved the link is valid enough to redirect; the
		// click still counts against the store, best-effort.
		uc.scheduleClick(code)
		return longURL, nil
	}

	sctx, cancel := context.WithTimeout(ctx, storeTimeout)
	l, err := uc.repo.FindActiveByCode(sctx, code)
	cancel()
	if err != nil {
		uc.log.WithContext(ctx).Errorf("resolve %q failed, store unavailable with no cache entry: %v", code.String(), err)
		return "", domain.ErrStoreUnavailable
	}
	if l == nil {
		return "", domain.ErrLinkNotFound
	}

	if err := uc.cache.Set(ctx, code, l.LongURL()); err != nil {
		uc.log.WithContext(ctx).Warnf("failed to repair link cache: %v", err)
	}

	uc.scheduleClick(code)
	return l.LongURL(), nil
}

// scheduleClick issues the click increment off the critical path.
// Failures are logged and swallowed; they never reach the caller.
func (uc *RedirectUsecase) scheduleClick(code domain.ShortCode) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), clickTimeout)
		defer cancel()

		if err := uc.repo.IncrementClick(ctx, code); err != nil {
			uc.log.Warnf("failed to increment click count for %q: %v", code.String(), err)
		}
	}()
}
