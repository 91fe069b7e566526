package service

import (
	"context"
	"html/template"
	"net"
	"net/http"
	"strings"

	"go-shortlink/internal/analytics"
	"go-shortlink/internal/biz"
	"go-shortlink/internal/conf"
	"go-shortlink/internal/domain"
	"go-shortlink/internal/domain/event"
	"go-shortlink/internal/visit"
	"go-shortlink/internal/visitor"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// ProviderSet is service providers.
var ProviderSet = wire.NewSet(NewVisitTracker, NewRedirectService)

const defaultCookieName = "visited-links"

// transitionTmpl is the interstitial shown to humans on their first
// visit to a link. The meta refresh continues to the destination
// client-side; the anchor is the fallback.
var transitionTmpl = template.Must(template.New("transition").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="6;url={{.LongURL}}">
<title>Redirecting&hellip;</title>
</head>
<body>
<p>You are about to visit:</p>
<p><a href="{{.LongURL}}" rel="noreferrer">{{.LongURL}}</a></p>
</body>
</html>
`))

// NewVisitTracker selects the cookie tracker variant from config.
// The set variant is the default; the flag variant is coarser and only
// remembers that the browser passed the transition page once.
func NewVisitTracker(c *conf.Cookie) visit.Tracker {
	if c != nil && c.Variant == "flag" {
		return visit.FlagTracker{}
	}
	return visit.SetTracker{}
}

// RedirectService serves the public redirect endpoint. Per request it
// validates the code, resolves it, classifies the visitor, and issues
// exactly one of 404, 302, or the 200 transition page.
type RedirectService struct {
	uc         *biz.RedirectUsecase
	recorder   analytics.Recorder
	tracker    visit.Tracker
	classify   visitor.ClassifierFunc
	cookieName string
	log        *log.Helper
}

// NewRedirectService creates a new redirect service.
func NewRedirectService(
	uc *biz.RedirectUsecase,
	recorder analytics.Recorder,
	tracker visit.Tracker,
	c *conf.Cookie,
	logger log.Logger,
) *RedirectService {
	cookieName := defaultCookieName
	if c != nil && c.Name != "" {
		cookieName = c.Name
	}

	return &RedirectService{
		uc:         uc,
		recorder:   recorder,
		tracker:    tracker,
		classify:   visitor.Classify,
		cookieName: cookieName,
		log:        log.NewHelper(logger),
	}
}

// Redirect handles GET /{shortCode}.
func (s *RedirectService) Redirect(w http.ResponseWriter, r *http.Request) {
	code, err := domain.NewShortCode(strings.TrimPrefix(r.URL.Path, "/"))
	if err != nil {
		// Malformed codes are an expected case, not an error signal.
		s.notFound(w)
		return
	}

	longURL, err := s.uc.Resolve(r.Context(), code)
	if err != nil {
		// Both ErrLinkNotFound and ErrStoreUnavailable collapse to 404;
		// the latter was already logged as an error by the usecase.
		s.notFound(w)
		return
	}

	s.recordVisit(r, code, longURL)

	if s.classify(r.UserAgent()) == visitor.Agent {
		// Crawlers and unfurlers never see the transition page,
		// whatever their cookie state.
		s.redirect(w, longURL)
		return
	}

	prev := s.cookieValue(r)
	if s.tracker.HasVisited(prev, code.String()) {
		s.redirect(w, longURL)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    s.tracker.MarkVisited(prev, code.String()),
		Path:     "/",
		HttpOnly: true,
	})
	s.renderTransition(w, longURL)
}

// recordVisit fires the analytics event off the critical path. Failures
// are isolated here and never alter the already-decided response.
func (s *RedirectService) recordVisit(r *http.Request, code domain.ShortCode, longURL string) {
	e := event.NewLinkVisited(code.String(), longURL, r.UserAgent(), clientIP(r), r.Referer())
	go func() {
		if err := s.recorder.Record(context.Background(), e); err != nil {
			s.log.Warnf("failed to record visit for %q: %v", code.String(), err)
		}
	}()
}

func (s *RedirectService) cookieValue(r *http.Request) string {
	c, err := r.Cookie(s.cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

func (s *RedirectService) redirect(w http.ResponseWriter, longURL string) {
	// Location is set verbatim; http.Redirect would rewrite relative
	// destinations against the request path.
	w.Header().Set("Location", longURL)
	w.WriteHeader(http.StatusFound)
}

func (s *RedirectService) renderTransition(w http.ResponseWriter, longURL string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := transitionTmpl.Execute(w, struct{ LongURL string }{LongURL: longURL}); err != nil {
		s.log.Warnf("failed to render transition page: %v", err)
	}
}

func (s *RedirectService) notFound(w http.ResponseWriter) {
	http.Error(w, "Short link not found", http.StatusNotFound)
}

// clientIP extracts the originating address, honoring X-Forwarded-For
// when the service runs behind a proxy.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
