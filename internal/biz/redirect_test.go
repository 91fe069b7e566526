package biz

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go-shortlink/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLinkRepo struct {
	mu        sync.Mutex
	links     map[string]*domain.Link
	findErr   error
	incrErr   error
	findCalls int
	incrCalls map[string]int
}

func newFakeRepo() *fakeLinkRepo {
	return &fakeLinkRepo{
		links:     make(map[string]*domain.Link),
		incrCalls: make(map[string]int),
	}
}

func (f *fakeLinkRepo) Save(ctx context.Context, l *domain.Link) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	l.SetID(int64(len(f.links) + 1))
	f.links[l.ShortCode().String()] = l
	return nil
}

func (f *fakeLinkRepo) FindActiveByCode(ctx context.Context, code domain.ShortCode) (*domain.Link, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	l, ok := f.links[code.String()]
	if !ok || !l.IsActive() {
		return nil, nil
	}
	return l, nil
}

func (f *fakeLinkRepo) IncrementClick(ctx context.Context, code domain.ShortCode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.incrCalls[code.String()]++
	return f.incrErr
}

func (f *fakeLinkRepo) clicks(code string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.incrCalls[code]
}

func (f *fakeLinkRepo) lookups() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.findCalls
}

type fakeLinkCache struct {
	mu      sync.Mutex
	entries map[string]string
	getErr  error
	setErr  error
}

func newFakeCache() *fakeLinkCache {
	return &fakeLinkCache{entries: make(map[string]string)}
}

func (f *fakeLinkCache) Get(ctx context.Context, code domain.ShortCode) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return "", false, f.getErr
	}
	url, ok := f.entries[code.String()]
	return url, ok, nil
}

func (f *fakeLinkCache) Set(ctx context.Context, code domain.ShortCode, longURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[code.String()] = longURL
	return nil
}

func (f *fakeLinkCache) entry(code string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	url, ok := f.entries[code]
	return url, ok
}

// countingLogger counts error-level records so tests can assert the
// "logged exactly once" contract for total resolution failure.
type countingLogger struct {
	mu     sync.Mutex
	errors int
}

func (l *countingLogger) Log(level log.Level, keyvals ...interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level == log.LevelError {
		l.errors++
	}
	return nil
}

func (l *countingLogger) errorCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errors
}

func mustCode(t *testing.T, code string) domain.ShortCode {
	t.Helper()
	sc, err := domain.NewShortCode(code)
	require.NoError(t, err)
	return sc
}

func seedActive(t *testing.T, repo *fakeLinkRepo, code, longURL string) {
	t.Helper()
	require.NoError(t, repo.Save(context.Background(), domain.NewLink(mustCode(t, code), longURL)))
}

func TestResolve_CacheHit(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	cache.entries["aaa"] = "https://example.com"

	uc := NewRedirectUsecase(repo, cache, log.DefaultLogger)

	longURL, err := uc.Resolve(context.Background(), mustCode(t, "aaa"))
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", longURL)

	// The store is only touched for the click increment, never for lookup.
	assert.Zero(t, repo.lookups())
	assert.Eventually(t, func() bool { return repo.clicks("aaa") == 1 },
		time.Second, 10*time.Millisecond)
}

func TestResolve_CacheHit_StoreDown(t *testing.T) {
	repo := newFakeRepo()
	repo.findErr = errors.New("store down")
	repo.incrErr = errors.New("store down")
	cache := newFakeCache()
	cache.entries["aaa"] = "https://example.com"

	logger := &countingLogger{}
	uc := NewRedirectUsecase(repo, cache, logger)

	longURL, err := uc.Resolve(context.Background(), mustCode(t, "aaa"))
	require.NoError(t, err, "a cache hit is trusted even with the store down")
	assert.Equal(t, "https://example.com", longURL)

	// The failed increment is swallowed, never logged as an error.
	assert.Eventually(t, func() bool { return repo.clicks("aaa") == 1 },
		time.Second, 10*time.Millisecond)
	assert.Zero(t, logger.errorCount())
}

func TestResolve_CacheMiss_StoreHit(t *testing.T) {
	repo := newFakeRepo()
	seedActive(t, repo, "aaa", "https://example.com")
	cache := newFakeCache()

	uc := NewRedirectUsecase(repo, cache, log.DefaultLogger)

	longURL, err := uc.Resolve(context.Background(), mustCode(t, "aaa"))
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", longURL)

	// Cache repair happens before Resolve returns.
	repaired, ok := cache.entry("aaa")
	require.True(t, ok)
	assert.Equal(t, "https://example.com", repaired)

	assert.Eventually(t, func() bool { return repo.clicks("aaa") == 1 },
		time.Second, 10*time.Millisecond)
}

func TestResolve_CacheMiss_NoRecord(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()

	uc := NewRedirectUsecase(repo, cache, log.DefaultLogger)

	_, err := uc.Resolve(context.Background(), mustCode(t, "aaa"))
	require.ErrorIs(t, err, domain.ErrLinkNotFound)

	assert.Never(t, func() bool { return repo.clicks("aaa") > 0 },
		100*time.Millisecond, 10*time.Millisecond)
}

func TestResolve_CacheMiss_InactiveLink(t *testing.T) {
	repo := newFakeRepo()
	l := domain.NewLink(mustCode(t, "aaa"), "https://example.com")
	l.Deactivate()
	require.NoError(t, repo.Save(context.Background(), l))
	cache := newFakeCache()

	uc := NewRedirectUsecase(repo, cache, log.DefaultLogger)

	_, err := uc.Resolve(context.Background(), mustCode(t, "aaa"))
	require.ErrorIs(t, err, domain.ErrLinkNotFound)
}

func TestResolve_CacheError_StoreHit(t *testing.T) {
	repo := newFakeRepo()
	seedActive(t, repo, "aaa", "https://example.com")
	cache := newFakeCache()
	cache.getErr = errors.New("cache down")

	logger := &countingLogger{}
	uc := NewRedirectUsecase(repo, cache, logger)

	longURL, err := uc.Resolve(context.Background(), mustCode(t, "aaa"))
	require.NoError(t, err, "cache failure alone never fails resolution")
	assert.Equal(t, "https://example.com", longURL)
	assert.Zero(t, logger.errorCount(), "cache degradation is not an error signal")

	assert.Eventually(t, func() bool { return repo.clicks("aaa") == 1 },
		time.Second, 10*time.Millisecond)
}

func TestResolve_BothTiersDown(t *testing.T) {
	repo := newFakeRepo()
	repo.findErr = errors.New("store down")
	cache := newFakeCache()
	cache.getErr = errors.New("cache down")

	logger := &countingLogger{}
	uc := NewRedirectUsecase(repo, cache, logger)

	_, err := uc.Resolve(context.Background(), mustCode(t, "aaa"))
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)

	assert.Equal(t, 1, logger.errorCount(), "total failure is logged exactly once")
	assert.Never(t, func() bool { return repo.clicks("aaa") > 0 },
		100*time.Millisecond, 10*time.Millisecond)
}

func TestResolve_CacheMiss_StoreDown(t *testing.T) {
	repo := newFakeRepo()
	repo.findErr = errors.New("store down")
	cache := newFakeCache()

	logger := &countingLogger{}
	uc := NewRedirectUsecase(repo, cache, logger)

	_, err := uc.Resolve(context.Background(), mustCode(t, "aaa"))
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Equal(t, 1, logger.errorCount())
}

func TestResolve_CacheRepairFailure(t *testing.T) {
	repo := newFakeRepo()
	seedActive(t, repo, "aaa", "https://example.com")
	cache := newFakeCache()
	cache.setErr = errors.New("cache down")

	uc := NewRedirectUsecase(repo, cache, log.DefaultLogger)

	longURL, err := uc.Resolve(context.Background(), mustCode(t, "aaa"))
	require.NoError(t, err, "failed cache repair is ignored")
	assert.Equal(t, "https://example.com", longURL)
}
