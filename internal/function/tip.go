package function

import (
	"context"
	"log/slog"

	"github.com/wickes36/golf/internal/domain/caddy"
	"github.com/wickes36/golf/internal/httperror"
	"github.com/wickes36/golf/internal/metrics"
)

// TipService 는 팁 생성 use case 다.
type TipService interface {
	Ready() error
	Tip(ctx context.Context, req caddy.TipRequest) (string, error)
}

// Tip 은 홀 레이아웃 JSON 을 받아 {"tip": ...} 을 돌려주는 함수다.
type Tip struct {
	endpoint
	service TipService
}

// NewTip 는 팁 함수를 생성한다.
func NewTip(service TipService, metricsStore *metrics.Store, logger *slog.Logger) *Tip {
	return &Tip{
		endpoint: newEndpoint(NameTip, httperror.PrefixTip, "tip_request_failed", metricsStore, logger),
		service:  service,
	}
}

// Name 은 함수 이름을 반환한다.
func (f *Tip) Name() string { return f.name }

// Invoke 는 요청 하나를 처리한다. API 키가 없으면 본문을 보기 전에 실패한다.
func (f *Tip) Invoke(ctx context.Context, req Request) Response {
	return f.serve(ctx, req, func(ctx context.Context, body []byte) (any, error) {
		if err := f.service.Ready(); err != nil {
			return nil, err
		}
		tipReq, err := caddy.DecodeTipRequest(body)
		if err != nil {
			return nil, err
		}
		tip, err := f.service.Tip(ctx, tipReq)
		if err != nil {
			return nil, err
		}
		return caddy.TipResponse{Tip: tip}, nil
	})
}
