package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/ovumcy-insights/internal/api"
	"github.com/terraincognita07/ovumcy-insights/internal/i18n"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.ValidateSecretKey(); err != nil {
			return err
		}

		serviceSet, closeDatabase, err := openServiceSet()
		if err != nil {
			return err
		}
		defer closeDatabase()

		i18nManager, err := i18n.NewEmbeddedManager(cfg.DefaultLanguage)
		if err != nil {
			return fmt.Errorf("i18n init failed: %w", err)
		}

		handler, err := api.NewHandler(api.HandlerConfig{
			Logs:      serviceSet.Logs,
			Settings:  serviceSet.Settings,
			Insights:  serviceSet.Insights,
			I18n:      i18nManager,
			Location:  cfg.Location,
			SecretKey: cfg.SecretKey,
		})
		if err != nil {
			return fmt.Errorf("handler init failed: %w", err)
		}

		app := api.NewApp(handler, api.AppOptions{
			AccessLog:        cfg.AccessLog,
			CORSAllowOrigins: cfg.CORSAllowOrigins,
		})

		sigCtx, stopSignals := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stopSignals()

		go func() {
			<-sigCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := app.ShutdownWithContext(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("server shutdown failed")
			}
		}()

		log.Info().
			Str("port", cfg.Port).
			Str("db", cfg.DBPath).
			Str("tz", cfg.Location.String()).
			Msg("ovumcy-insights listening")
		if err := app.Listen(":" + cfg.Port); err != nil {
			return fmt.Errorf("server exited: %w", err)
		}
		return nil
	},
}
