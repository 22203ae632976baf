package upstream

import (
	"context"
	"fmt"

	"github.com/mtallentb/nes-outage-viewer/internal/models"
	"github.com/mtallentb/nes-outage-viewer/internal/service"
	"golang.org/x/time/rate"
)

// RateLimitedSource ограничивает частоту обращений к внешнему API
type RateLimitedSource struct {
	source  service.OutageSource
	limiter *rate.Limiter
}

// NewRateLimitedSource оборачивает источник ограничителем.
// rps может быть дробным (меньше одного запроса в секунду), burst - допустимый всплеск
func NewRateLimitedSource(source service.OutageSource, rps float64, burst int) *RateLimitedSource {
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedSource{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// FetchOutages ждет разрешения ограничителя и передает запрос источнику
func (r *RateLimitedSource) FetchOutages(ctx context.Context) ([]models.OutageEvent, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, &models.FetchError{Err: fmt.Errorf("rate limit wait canceled: %w", err)}
	}
	return r.source.FetchOutages(ctx)
}

var (
	_ service.OutageSource = (*Client)(nil)
	_ service.OutageSource = (*RateLimitedSource)(nil)
)
