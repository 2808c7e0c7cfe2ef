// Package metrics contiene las métricas Prometheus del servicio.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/Creditos-api/internal/application/ports"
)

// SenderMetrics contadores del proveedor de SMS.
type SenderMetrics struct {
	total    *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewSenderMetrics registra las métricas en reg.
func NewSenderMetrics(reg prometheus.Registerer) *SenderMetrics {
	m := &SenderMetrics{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "creditos_reminder_sms_total",
			Help: "SMS de recordatorio por resultado (sent, failed)",
		}, []string{"status"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "creditos_reminder_sms_duration_seconds",
			Help:    "Duración de la llamada al proveedor de SMS",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.total, m.duration)
	return m
}

// InstrumentSender envuelve next contando envíos exitosos y fallidos.
func (m *SenderMetrics) InstrumentSender(next ports.MessageSender) ports.MessageSender {
	return &instrumentedSender{next: next, m: m}
}

type instrumentedSender struct {
	next ports.MessageSender
	m    *SenderMetrics
}

func (s *instrumentedSender) Send(ctx context.Context, body, to, from string) (string, error) {
	start := time.Now()
	sid, err := s.next.Send(ctx, body, to, from)
	s.m.duration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.m.total.WithLabelValues("failed").Inc()
		return "", err
	}
	s.m.total.WithLabelValues("sent").Inc()
	return sid, nil
}
