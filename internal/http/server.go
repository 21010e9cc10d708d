// Package http exposes the ledger engine as a JSON API. It is a
// presentation adapter: every read recomputes from the engine (with a short
// TTL cache in front), every mutation goes straight through to the store.
package http

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"tally/internal/cache"
	"tally/internal/core"
	"tally/internal/middleware/ratelimit"
	"tally/internal/middleware/security"
	"tally/internal/middleware/trace"
	"tally/internal/services"
)

// Options tunes the adapter. Zero values fall back to defaults.
type Options struct {
	CacheTTL           time.Duration
	CacheMaxEntries    int
	RateLimitPerMinute int
}

type Server struct {
	http.Server

	tracker *services.Tracker

	// Derived read models are cached per period (and type). Keys carry the
	// tracker's mutation version, so a stale summary never outlives a write
	// from any front end; local mutations also purge outright.
	summaryCache   *cache.LRUCache[core.Summary]
	breakdownCache *cache.LRUCache[[]core.CategoryAmount]
	cacheManager   *cache.Manager

	limiter *ratelimit.Limiter
	tracer  *trace.Middleware

	shutdownOnce sync.Once
}

func NewServer(addr string, tracker *services.Tracker, opts Options) *Server {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 30 * time.Second
	}
	if opts.CacheMaxEntries <= 0 {
		opts.CacheMaxEntries = 64
	}

	s := &Server{
		tracker:        tracker,
		summaryCache:   cache.NewLRUCache[core.Summary](opts.CacheMaxEntries, opts.CacheTTL),
		breakdownCache: cache.NewLRUCache[[]core.CategoryAmount](opts.CacheMaxEntries, opts.CacheTTL),
		cacheManager:   cache.NewManager(),
		limiter: ratelimit.NewLimiter(ratelimit.Config{
			RequestsPerMinute: opts.RateLimitPerMinute,
		}),
		tracer: trace.NewMiddleware(clientIP),
	}

	s.cacheManager.Register(s.summaryCache)
	s.cacheManager.Register(s.breakdownCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	mux := http.NewServeMux()
	s.routes(mux)

	s.Server = http.Server{
		Addr:    addr,
		Handler: security.Headers(s.tracer.Handler(s.rateLimited(mux))),
	}
	return s
}

func (s *Server) routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("GET /api/transactions", s.handleListTransactions)
	mux.HandleFunc("POST /api/transactions", s.handleCreateTransaction)
	mux.HandleFunc("PUT /api/transactions/{id}", s.handleUpdateTransaction)
	mux.HandleFunc("DELETE /api/transactions/{id}", s.handleDeleteTransaction)

	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /api/breakdown", s.handleBreakdown)
	mux.HandleFunc("GET /api/categories", s.handleCategories)

	mux.HandleFunc("GET /api/period", s.handleGetPeriod)
	mux.HandleFunc("PUT /api/period", s.handleSetPeriod)
}

func (s *Server) rateLimited(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow(clientIP(r)) {
			writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Shutdown gracefully shuts down the server and its background routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		s.cacheManager.Stop()
		s.limiter.Stop()
		err = s.Server.Shutdown(ctx)
	})
	return err
}

// invalidateReadModels drops all cached summaries and breakdowns. Called
// after every mutation.
func (s *Server) invalidateReadModels() {
	s.summaryCache.Purge()
	s.breakdownCache.Purge()
}

// clientIP extracts the originating client address, honoring proxies.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
