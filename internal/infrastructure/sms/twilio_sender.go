// Package sms implementa ports.MessageSender sobre la API REST de Twilio.
package sms

import (
	"context"
	"errors"
	"fmt"

	"github.com/twilio/twilio-go"
	twclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/jhoicas/Creditos-api/internal/application/ports"
)

var _ ports.MessageSender = (*TwilioSender)(nil)

// MessageCreator subconjunto de la API de mensajes de Twilio que usa el sender.
type MessageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// Config credenciales y región por defecto para normalizar números.
type Config struct {
	AccountSID    string
	AuthToken     string
	DefaultRegion string
}

// TwilioSender envía SMS con Twilio. Los números se normalizan a E.164 antes de enviar;
// un número inválido se trata como rechazo del proveedor.
type TwilioSender struct {
	api    MessageCreator
	region string
}

// NewTwilioSender construye el sender con el cliente REST oficial.
func NewTwilioSender(cfg Config) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return NewSenderWithAPI(client.Api, cfg.DefaultRegion)
}

// NewSenderWithAPI construye el sender sobre cualquier MessageCreator (tests).
func NewSenderWithAPI(api MessageCreator, defaultRegion string) *TwilioSender {
	if defaultRegion == "" {
		defaultRegion = "US"
	}
	return &TwilioSender{api: api, region: defaultRegion}
}

// Send envía body desde from hacia to y devuelve el SID del mensaje.
func (s *TwilioSender) Send(ctx context.Context, body, to, from string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	toE164, err := NormalizeE164(to, s.region)
	if err != nil {
		return "", err
	}
	fromE164, err := NormalizeE164(from, s.region)
	if err != nil {
		return "", fmt.Errorf("remitente: %w", err)
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(toE164)
	params.SetFrom(fromE164)
	params.SetBody(body)

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		return "", providerMessage(err)
	}
	if resp == nil || resp.Sid == nil {
		return "", nil
	}
	return *resp.Sid, nil
}

// providerMessage deja solo el mensaje de Twilio (lo que ve el usuario en un 500).
func providerMessage(err error) error {
	var restErr *twclient.TwilioRestError
	if errors.As(err, &restErr) && restErr.Message != "" {
		return errors.New(restErr.Message)
	}
	return err
}
