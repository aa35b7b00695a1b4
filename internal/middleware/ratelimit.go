package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wickes36/golf/internal/cache"
	"github.com/wickes36/golf/internal/config"
	"github.com/wickes36/golf/internal/function"
	"github.com/wickes36/golf/internal/httperror"
)

// RateLimit 는 (호출자, 함수)별 분 단위 고정 윈도 요청 제한 미들웨어다.
// 같은 함수의 /api 경로와 Netlify 경로는 한 윈도를 공유한다.
// 팁 호출이 음성 호출 한도를 깎지 않는다.
func RateLimit(cfg *config.Config) gin.HandlerFunc {
	return newRateLimiter(cfg, time.Now).handle
}

type rateLimiter struct {
	limit   int
	counter *cache.TTLCache[string, int]
	now     func() time.Time
}

func newRateLimiter(cfg *config.Config, now func() time.Time) *rateLimiter {
	limiter := &rateLimiter{now: now}
	cacheSize := 0
	cacheTTL := time.Duration(0)
	if cfg != nil {
		limiter.limit = cfg.HTTPRateLimit.RequestsPerMinute
		cacheSize = cfg.HTTPRateLimit.CacheSize
		cacheTTL = time.Duration(cfg.HTTPRateLimit.CacheTTLSeconds) * time.Second
	}
	limiter.counter = cache.NewTTLCache[string, int](cacheSize, cacheTTL)
	return limiter
}

func (l *rateLimiter) handle(c *gin.Context) {
	if l.limit <= 0 || c.Request.Method == http.MethodOptions || !shouldProtectPath(c.Request.URL.Path) {
		c.Next()
		return
	}

	identity := rateLimitIdentity(c)
	scope := rateLimitScope(c.Request.URL.Path)
	window := l.now().Unix() / 60
	key := fmt.Sprintf("%s|%s|%d", identity, scope, window)

	count, ok := l.counter.Modify(key, func(current int, _ bool) int { return current + 1 })
	if !ok {
		c.Next()
		return
	}

	if count > l.limit {
		details := map[string]any{
			"path":             c.Request.URL.Path,
			"function":         scope,
			"identity":         identity,
			"limit_per_minute": l.limit,
		}
		status, payload := httperror.Response(httperror.NewRateLimitExceeded(details), GetRequestID(c))
		c.Header("Retry-After", fmt.Sprint(60-l.now().Unix()%60))
		c.AbortWithStatusJSON(status, payload)
		return
	}

	c.Next()
}

// rateLimitScope 는 함수 경로를 함수 이름으로 묶는다. 그 밖의 보호 경로는 경로 자체가 범위다.
func rateLimitScope(requestPath string) string {
	if name, ok := function.NameForPath(requestPath); ok {
		return name
	}
	return requestPath
}

// rateLimitIdentity 는 API 키 해시, 없으면 gin 신뢰 프록시 설정을 따르는 클라이언트 IP 다.
func rateLimitIdentity(c *gin.Context) string {
	if key := extractAPIKey(c); key != "" {
		return "key:" + hashKey(key)
	}
	if ip := c.ClientIP(); ip != "" {
		return "ip:" + ip
	}
	return "ip:unknown"
}

func hashKey(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])[:16]
}
