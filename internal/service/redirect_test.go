package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go-shortlink/internal/biz"
	"go-shortlink/internal/conf"
	"go-shortlink/internal/domain"
	"go-shortlink/internal/domain/event"
	"go-shortlink/internal/visit"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	chromeUA    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/74.0.3729.169 Safari/537.36"
	googlebotUA = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

type fakeLinkRepo struct {
	mu        sync.Mutex
	links     map[string]string
	findErr   error
	findCalls int
	incrCalls map[string]int
}

func newFakeRepo() *fakeLinkRepo {
	return &fakeLinkRepo{
		links:     make(map[string]string),
		incrCalls: make(map[string]int),
	}
}

func (f *fakeLinkRepo) Save(ctx context.Context, l *domain.Link) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.links[l.ShortCode().String()] = l.LongURL()
	return nil
}

func (f *fakeLinkRepo) FindActiveByCode(ctx context.Context, code domain.ShortCode) (*domain.Link, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	longURL, ok := f.links[code.String()]
	if !ok {
		return nil, nil
	}
	return domain.NewLink(code, longURL), nil
}

func (f *fakeLinkRepo) IncrementClick(ctx context.Context, code domain.ShortCode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.incrCalls[code.String()]++
	return nil
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
	mu       sync.Mutex
	entries  map[string]string
	getErr   error
	getCalls int
}

func newFakeCache() *fakeLinkCache {
	return &fakeLinkCache{entries: make(map[string]string)}
}

func (f *fakeLinkCache) Get(ctx context.Context, code domain.ShortCode) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.getErr != nil {
		return "", false, f.getErr
	}
	url, ok := f.entries[code.String()]
	return url, ok, nil
}

func (f *fakeLinkCache) Set(ctx context.Context, code domain.ShortCode, longURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[code.String()] = longURL
	return nil
}

func (f *fakeLinkCache) entry(code string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	url, ok := f.entries[code]
	return url, ok
}

func (f *fakeLinkCache) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getCalls
}

type fakeRecorder struct {
	mu     sync.Mutex
	events []event.LinkVisited
	err    error
}

func (f *fakeRecorder) Record(ctx context.Context, e event.LinkVisited) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, e)
	return nil
}

func (f *fakeRecorder) recorded() []event.LinkVisited {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]event.LinkVisited(nil), f.events...)
}

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

type fixture struct {
	svc      *RedirectService
	repo     *fakeLinkRepo
	cache    *fakeLinkCache
	recorder *fakeRecorder
	logger   *countingLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := newFakeRepo()
	cache := newFakeCache()
	recorder := &fakeRecorder{}
	logger := &countingLogger{}

	uc := biz.NewRedirectUsecase(repo, cache, logger)
	svc := NewRedirectService(uc, recorder, visit.SetTracker{}, &conf.Cookie{Name: "visited-links"}, logger)

	return &fixture{svc: svc, repo: repo, cache: cache, recorder: recorder, logger: logger}
}

func (fx *fixture) get(t *testing.T, path, userAgent string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	fx.svc.Redirect(w, req)
	return w
}

func (fx *fixture) expectVisitRecorded(t *testing.T, code, longURL string, n int) {
	t.Helper()
	assert.Eventually(t, func() bool {
		events := fx.recorder.recorded()
		if len(events) != n {
			return false
		}
		last := events[len(events)-1]
		return last.ShortCode == code && last.LongURL == longURL
	}, time.Second, 10*time.Millisecond)
}

func setCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("response carries no %q cookie", name)
	return nil
}

func TestRedirect_InvalidCode(t *testing.T) {
	fx := newFixture(t)

	w := fx.get(t, "/)*", chromeUA)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, fx.cache.calls(), "no cache call for malformed codes")
	assert.Zero(t, fx.repo.lookups(), "no store call for malformed codes")
	assert.Never(t, func() bool { return len(fx.recorder.recorded()) > 0 },
		100*time.Millisecond, 10*time.Millisecond)
}

func TestRedirect_FirstVisitHuman(t *testing.T) {
	fx := newFixture(t)
	fx.cache.entries["aaa"] = "aa"

	// Lookup is case-insensitive: /Aaa resolves aaa.
	w := fx.get(t, "/Aaa", chromeUA)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "aa")
	assert.Empty(t, w.Header().Get("Location"))
	setCookie(t, w, "visited-links")

	assert.Eventually(t, func() bool { return fx.repo.clicks("aaa") == 1 },
		time.Second, 10*time.Millisecond)
	fx.expectVisitRecorded(t, "aaa", "aa", 1)
}

func TestRedirect_SecondVisitHuman(t *testing.T) {
	fx := newFixture(t)
	fx.cache.entries["aaa"] = "aa"

	first := fx.get(t, "/Aaa", chromeUA)
	require.Equal(t, http.StatusOK, first.Code)
	cookie := setCookie(t, first, "visited-links")

	second := fx.get(t, "/aaa", chromeUA, cookie)

	assert.Equal(t, http.StatusFound, second.Code)
	assert.Equal(t, "aa", second.Header().Get("Location"))
	assert.Empty(t, second.Result().Cookies(), "visit state is only written on the transition page")

	assert.Eventually(t, func() bool { return fx.repo.clicks("aaa") == 2 },
		time.Second, 10*time.Millisecond)
}

func TestRedirect_VisitedCookieCoversOtherCodesIndependently(t *testing.T) {
	fx := newFixture(t)
	fx.cache.entries["aaa"] = "aa"
	fx.cache.entries["bbb"] = "bb"

	first := fx.get(t, "/aaa", chromeUA)
	cookie := setCookie(t, first, "visited-links")

	// A different code is still a first visit.
	other := fx.get(t, "/bbb", chromeUA, cookie)
	assert.Equal(t, http.StatusOK, other.Code)
}

func TestRedirect_Crawler(t *testing.T) {
	fx := newFixture(t)
	fx.cache.entries["aaa"] = "aa"

	w := fx.get(t, "/aaa", googlebotUA)

	assert.Equal(t, http.StatusFound, w.Code, "crawlers are never gated behind the transition page")
	assert.Equal(t, "aa", w.Header().Get("Location"))
	assert.Empty(t, w.Result().Cookies())

	assert.Eventually(t, func() bool { return fx.repo.clicks("aaa") == 1 },
		time.Second, 10*time.Millisecond)
	fx.expectVisitRecorded(t, "aaa", "aa", 1)
}

func TestRedirect_CacheMissStoreHit(t *testing.T) {
	fx := newFixture(t)
	fx.repo.links["aaa"] = "aa"

	w := fx.get(t, "/aaa", googlebotUA)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "aa", w.Header().Get("Location"))

	repaired, ok := fx.cache.entry("aaa")
	require.True(t, ok, "store hit repairs the cache")
	assert.Equal(t, "aa", repaired)
}

func TestRedirect_NotFound(t *testing.T) {
	fx := newFixture(t)

	w := fx.get(t, "/aaa", chromeUA)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, fx.logger.errorCount(), "a true not-found is not an error signal")
	assert.Never(t, func() bool { return fx.repo.clicks("aaa") > 0 },
		100*time.Millisecond, 10*time.Millisecond)
}

func TestRedirect_CacheDownStoreHit(t *testing.T) {
	fx := newFixture(t)
	fx.cache.getErr = errors.New("cache down")
	fx.repo.links["aaa"] = "aa"

	w := fx.get(t, "/aaa", chromeUA)

	assert.Equal(t, http.StatusOK, w.Code, "cache failure alone never produces 404")
	assert.Contains(t, w.Body.String(), "aa")
}

func TestRedirect_BothTiersDown(t *testing.T) {
	fx := newFixture(t)
	fx.cache.getErr = errors.New("cache down")
	fx.repo.findErr = errors.New("store down")

	w := fx.get(t, "/aaa", chromeUA)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 1, fx.logger.errorCount(), "total failure is logged exactly once")
	assert.Never(t, func() bool { return fx.repo.clicks("aaa") > 0 },
		100*time.Millisecond, 10*time.Millisecond)
	assert.Never(t, func() bool { return len(fx.recorder.recorded()) > 0 },
		100*time.Millisecond, 10*time.Millisecond)
}

func TestRedirect_AnalyticsFailureIsIsolated(t *testing.T) {
	fx := newFixture(t)
	fx.cache.entries["aaa"] = "aa"
	fx.recorder.err = errors.New("analytics down")

	w := fx.get(t, "/aaa", googlebotUA)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "aa", w.Header().Get("Location"))
}

func TestRedirect_FlagTrackerVariant(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	cache.entries["aaa"] = "aa"
	cache.entries["bbb"] = "bb"

	uc := biz.NewRedirectUsecase(repo, cache, log.DefaultLogger)
	svc := NewRedirectService(uc, &fakeRecorder{}, visit.FlagTracker{}, nil, log.DefaultLogger)
	fx := &fixture{svc: svc, repo: repo, cache: cache}

	first := fx.get(t, "/aaa", chromeUA)
	require.Equal(t, http.StatusOK, first.Code)
	cookie := setCookie(t, first, defaultCookieName)

	// The flag variant marks the whole browser, not the single code.
	other := fx.get(t, "/bbb", chromeUA, cookie)
	assert.Equal(t, http.StatusFound, other.Code)
	assert.Equal(t, "bb", other.Header().Get("Location"))
}

func TestNewVisitTracker(t *testing.T) {
	assert.IsType(t, visit.SetTracker{}, NewVisitTracker(nil))
	assert.IsType(t, visit.SetTracker{}, NewVisitTracker(&conf.Cookie{Variant: "set"}))
	assert.IsType(t, visit.FlagTracker{}, NewVisitTracker(&conf.Cookie{Variant: "flag"}))
}
