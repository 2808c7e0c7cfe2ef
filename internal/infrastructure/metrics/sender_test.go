package metrics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Creditos-api/internal/infrastructure/metrics"
)

type stubSender struct{ fail bool }

func (s stubSender) Send(context.Context, string, string, string) (string, error) {
	if s.fail {
		return "", errors.New("rechazado")
	}
	return "SM1", nil
}

func TestInstrumentSender_CuentaPorResultado(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewSenderMetrics(reg)

	ok := m.InstrumentSender(stubSender{})
	bad := m.InstrumentSender(stubSender{fail: true})

	sid, err := ok.Send(context.Background(), "b", "to", "from")
	require.NoError(t, err)
	assert.Equal(t, "SM1", sid)
	_, _ = ok.Send(context.Background(), "b", "to", "from")
	_, err = bad.Send(context.Background(), "b", "to", "from")
	require.Error(t, err)

	series, err := testutil.GatherAndCount(reg, "creditos_reminder_sms_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series, "dos series: sent y failed")

	families, err := reg.Gather()
	require.NoError(t, err)
	counts := map[string]float64{}
	for _, f := range families {
		if f.GetName() != "creditos_reminder_sms_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			counts[metric.GetLabel()[0].GetValue()] = metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, float64(2), counts["sent"])
	assert.Equal(t, float64(1), counts["failed"])
}
