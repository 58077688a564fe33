package server

import (
	"crypto/subtle"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/osse101/MinesocBot_Go/internal/logger"
)

// AuthMiddleware validates the API key on everything outside PublicPaths.
// An empty apiKey disables the check.
func AuthMiddleware(apiKey string, trustedProxies []string, tracker *ClientTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)

			// Use constant time comparison to prevent timing attacks
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				tracker.RecordFailedAuth(r, ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// clientState is what the tracker remembers about one address
type clientState struct {
	limiter *rate.Limiter

	mu         sync.Mutex
	failedAuth int
	rejected   int
}

// ClientTracker rate limits requests per client address and alerts on repeated
// authentication failures. Idle clients age out of the tracker.
type ClientTracker struct {
	mu      sync.Mutex
	clients *expirable.LRU[string, *clientState]
	limit   rate.Limit
	burst   int
}

// NewClientTracker creates a tracker allowing limit requests per second with the given burst
func NewClientTracker(limit rate.Limit, burst int) *ClientTracker {
	return &ClientTracker{
		clients: expirable.NewLRU[string, *clientState](clientTrackerSize, nil, clientTrackerTTL),
		limit:   limit,
		burst:   burst,
	}
}

func (t *ClientTracker) state(ip string) *clientState {
	t.mu.Lock()
	defer t.mu.Unlock()
	if st, ok := t.clients.Get(ip); ok {
		return st
	}
	st := &clientState{limiter: rate.NewLimiter(t.limit, t.burst)}
	t.clients.Add(ip, st)
	return st
}

// RecordFailedAuth records a failed authentication attempt
func (t *ClientTracker) RecordFailedAuth(r *http.Request, ip string) {
	st := t.state(ip)
	st.mu.Lock()
	st.failedAuth++
	count := st.failedAuth
	st.mu.Unlock()

	if count >= FailedAuthAlertAfter {
		logger.FromContext(r.Context()).Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
}

// Allow reports whether the client may make another request now
func (t *ClientTracker) Allow(r *http.Request, ip string) bool {
	st := t.state(ip)
	if st.limiter.Allow() {
		return true
	}

	st.mu.Lock()
	st.rejected++
	rejected := st.rejected
	st.mu.Unlock()

	// Log every highRateLogEvery rejections to avoid log spam
	if rejected%highRateLogEvery == 1 {
		logger.FromContext(r.Context()).Warn(SecurityAlertHighRate, "ip", ip, "rejected", rejected)
	}
	return false
}

// RateLimitMiddleware rejects clients that exceed their request budget
func RateLimitMiddleware(trustedProxies []string, tracker *ClientTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)
			if !tracker.Allow(r, ip) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	isTrusted := false
	for _, proxy := range trustedProxies {
		if proxy == remoteIP {
			isTrusted = true
			break
		}
	}

	if isTrusted {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// X-Forwarded-For: client, proxy1, proxy2
			// The rightmost entry is the hop that reached our trusted proxy.
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
