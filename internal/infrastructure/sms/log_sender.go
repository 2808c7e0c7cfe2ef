package sms

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Creditos-api/internal/application/ports"
)

// LogSender no envía nada: escribe el mensaje en el log y devuelve un SID local.
// Se usa cuando no hay credenciales de Twilio (desarrollo).
type LogSender struct {
	log    zerolog.Logger
	region string
}

// NewLogSender construye el sender de desarrollo.
func NewLogSender(log zerolog.Logger, defaultRegion string) *LogSender {
	if defaultRegion == "" {
		defaultRegion = "US"
	}
	return &LogSender{log: log, region: defaultRegion}
}

// Send valida el destino igual que TwilioSender y registra el mensaje.
func (s *LogSender) Send(_ context.Context, body, to, from string) (string, error) {
	toE164, err := NormalizeE164(to, s.region)
	if err != nil {
		return "", err
	}
	sid := "LOG" + uuid.NewString()
	s.log.Info().Str("to", toE164).Str("from", from).Str("sid", sid).Str("body", body).Msg("SMS (modo log)")
	return sid, nil
}

// NewSender elige el sender según la configuración: Twilio si hay credenciales, log si no.
func NewSender(cfg Config, enabled bool, log zerolog.Logger) ports.MessageSender {
	if !enabled {
		log.Warn().Msg("Twilio sin credenciales: los SMS solo se registran en el log")
		return NewLogSender(log, cfg.DefaultRegion)
	}
	return NewTwilioSender(cfg)
}
