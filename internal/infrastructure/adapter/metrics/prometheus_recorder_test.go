package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewPrometheusRecorder(reg)

	rec.LedgerOperation("debit", "success", 4000)
	rec.LedgerOperation("credit_once", "success", 2500)
	rec.LedgerOperation("debit", "insufficient", 9000)
	rec.LinkCreated("voting", "1w")
	rec.LinkExtended("scratch", 2)
	rec.PaymentVerification("callback", "credited")
	rec.UnknownDurationPriced("5w")
	rec.BonusClaim("awarded")

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.ledgerOperations.WithLabelValues("debit", "insufficient")))
	assert.Equal(t, 4000.0, testutil.ToFloat64(rec.ledgerCredits.WithLabelValues("out")))
	assert.Equal(t, 2500.0, testutil.ToFloat64(rec.ledgerCredits.WithLabelValues("in")), "failed operations move no credits")
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.linksExtended.WithLabelValues("scratch", "2")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.paymentVerifications.WithLabelValues("callback", "credited")))

	families, err := reg.Gather()
	assert.NoError(t, err)
	assert.Len(t, families, 7)
}
