package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wickes36/golf/internal/function"
	"github.com/wickes36/golf/internal/httperror"
	"github.com/wickes36/golf/internal/middleware"
)

// FunctionHandler 는 function.Handler 를 gin 핸들러로 감싼다.
type FunctionHandler struct {
	fn           function.Handler
	maxBodyBytes int64
}

// NewFunctionHandler 는 함수 핸들러를 생성한다.
func NewFunctionHandler(fn function.Handler, maxBodyBytes int64) *FunctionHandler {
	return &FunctionHandler{fn: fn, maxBodyBytes: maxBodyBytes}
}

// RegisterRoutes 는 함수 경로를 모든 메서드로 등록한다. 405 판단은 함수가 한다.
func (h *FunctionHandler) RegisterRoutes(router gin.IRoutes) {
	for _, path := range function.Routes[h.fn.Name()] {
		router.Any(path, h.Handle)
	}
}

// Handle 은 요청을 function.Request 로 바꿔 호출하고 응답을 그대로 쓴다.
// POST 가 아니면 본문을 읽지 않는다.
func (h *FunctionHandler) Handle(c *gin.Context) {
	var body []byte
	if c.Request.Method == http.MethodPost && c.Request.Body != nil {
		reader := io.Reader(c.Request.Body)
		if h.maxBodyBytes > 0 {
			reader = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
		}

		data, err := io.ReadAll(reader)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				status, payload := httperror.Response(httperror.NewPayloadTooLarge(tooLarge.Limit), middleware.GetRequestID(c))
				c.AbortWithStatusJSON(status, payload)
				return
			}
			_ = c.Error(err)
		}
		body = data
	}

	resp := h.fn.Invoke(c.Request.Context(), function.Request{
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		RequestID: middleware.GetRequestID(c),
		Headers:   flattenHeaders(c.Request.Header),
		Body:      body,
	})

	contentType := ""
	for key, value := range resp.Headers {
		if http.CanonicalHeaderKey(key) == "Content-Type" {
			contentType = value
			continue
		}
		c.Header(key, value)
	}
	c.Data(resp.StatusCode, contentType, resp.Body)
}

func flattenHeaders(header http.Header) map[string]string {
	flat := make(map[string]string, len(header))
	for key := range header {
		flat[key] = header.Get(key)
	}
	return flat
}
