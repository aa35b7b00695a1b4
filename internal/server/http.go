package server

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/wickes36/golf/internal/config"
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 120 * time.Second
	// writeSlack 는 업스트림 타임아웃 뒤 오류 응답을 쓸 여유 시간이다.
	writeSlack = 10 * time.Second
)

// NewHTTPServer 는 HTTP 서버를 생성한다. HTTP2Enabled 면 h2c 로 감싼다.
// 쓰기 타임아웃은 Gemini 타임아웃보다 길게 잡아 500 응답이 잘리지 않게 한다.
func NewHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}

	if timeout := cfg.Gemini.Timeout(); timeout > 0 {
		server.WriteTimeout = timeout + writeSlack
	}

	if cfg.HTTP.HTTP2Enabled {
		server.Handler = h2c.NewHandler(handler, &http2.Server{})
	}

	return server
}
