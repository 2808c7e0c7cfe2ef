package sms_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Creditos-api/internal/infrastructure/sms"
)

func TestLogSender_RegistraMensajeNormalizado(t *testing.T) {
	var buf bytes.Buffer
	s := sms.NewLogSender(zerolog.New(&buf), "US")

	sid, err := s.Send(context.Background(), "hola", "(650) 253-0000", "+15550000000")
	require.NoError(t, err)
	assert.Contains(t, sid, "LOG")
	assert.Contains(t, buf.String(), "+16502530000")
	assert.Contains(t, buf.String(), "hola")
}

func TestLogSender_NumeroInvalido(t *testing.T) {
	s := sms.NewLogSender(zerolog.Nop(), "US")
	_, err := s.Send(context.Background(), "hola", "123", "+15550000000")
	assert.Error(t, err)
}

func TestNewSender_SinCredencialesUsaLog(t *testing.T) {
	s := sms.NewSender(sms.Config{DefaultRegion: "US"}, false, zerolog.Nop())
	_, ok := s.(*sms.LogSender)
	assert.True(t, ok)

	s = sms.NewSender(sms.Config{AccountSID: "AC1", AuthToken: "t", DefaultRegion: "US"}, true, zerolog.Nop())
	_, ok = s.(*sms.TwilioSender)
	assert.True(t, ok)
}
