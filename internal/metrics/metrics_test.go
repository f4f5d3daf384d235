package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

func TestObserveResolution(t *testing.T) {
	before := testutil.ToFloat64(RateResolutionsTotal.WithLabelValues("fallback"))

	ObserveResolution(models.RateSourceFallback)
	ObserveResolution(models.RateSourceFallback)

	after := testutil.ToFloat64(RateResolutionsTotal.WithLabelValues("fallback"))
	assert.Equal(t, before+2, after)
}

func TestObserveProviderRequest(t *testing.T) {
	ObserveProviderRequest(OutcomeSuccess, 150*time.Millisecond)
	ObserveProviderRequest(OutcomeError, time.Second)

	assert.Equal(t, 2, testutil.CollectAndCount(ProviderRequestDuration))
}
