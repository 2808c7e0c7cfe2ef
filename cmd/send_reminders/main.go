// Command send_reminders corre el envío de recordatorios una vez (pensado para cron).
//
//	send_reminders -merchant <uuid>   un solo comercio
//	send_reminders -parallel 4        todos los comercios con ventas vencidas
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/Creditos-api/internal/application/reminder"
	"github.com/jhoicas/Creditos-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Creditos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Creditos-api/internal/infrastructure/sms"
	"github.com/jhoicas/Creditos-api/pkg/config"
	"github.com/jhoicas/Creditos-api/pkg/logger"
)

func main() {
	merchantID := flag.String("merchant", "", "id del comercio (vacío = todos)")
	parallel := flag.Int("parallel", 4, "comercios en paralelo")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	sender := sms.NewSender(sms.Config{
		AccountSID:    cfg.Twilio.AccountSID,
		AuthToken:     cfg.Twilio.AuthToken,
		DefaultRegion: cfg.Twilio.DefaultRegion,
	}, cfg.Twilio.Enabled(), log.Component("sms"))
	senderMetrics := metrics.NewSenderMetrics(prometheus.NewRegistry())

	sales := postgres.NewCreditSaleRepository(pool)
	dispatcher := reminder.NewDispatcher(
		sales, postgres.NewSettingsRepository(pool), postgres.NewReminderRepository(pool),
		senderMetrics.InstrumentSender(sender), cfg.Twilio.PhoneNumber,
		reminder.WithLogger(log.Component("reminders")),
	)

	if *merchantID != "" {
		sent, err := dispatcher.SendBatch(ctx, *merchantID)
		if err != nil {
			log.Fatal().Err(err).Str("merchant_id", *merchantID).Msg("envío de recordatorios")
		}
		log.Info().Str("merchant_id", *merchantID).Int("sent", sent).Msg("recordatorios enviados")
		return
	}

	results, err := dispatcher.SendAll(ctx, sales, *parallel)
	if err != nil {
		log.Fatal().Err(err).Msg("envío de recordatorios")
	}
	total, failed := 0, 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			log.Error().Err(r.Err).Str("merchant_id", r.MerchantID).Msg("lote del comercio")
			continue
		}
		total += r.Sent
	}
	log.Info().Int("merchants", len(results)).Int("failed", failed).Int("sent", total).Msg("recordatorios enviados")
	if failed > 0 {
		os.Exit(1)
	}
}
