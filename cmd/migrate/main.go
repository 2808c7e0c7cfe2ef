// Command migrate aplica las migraciones embebidas: migrate [up|down|status].
package main

import (
	"context"
	"flag"

	"github.com/jhoicas/Creditos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Creditos-api/pkg/config"
	"github.com/jhoicas/Creditos-api/pkg/logger"
)

func main() {
	flag.Parse()
	command := flag.Arg(0)
	if command == "" {
		command = postgres.MigrateUp
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if err := postgres.Migrate(context.Background(), cfg.DB.ConnectionString(), command); err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("migraciones")
	}
	log.Info().Str("command", command).Msg("migraciones aplicadas")
}
