package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"housepriced/internal/config"
	"housepriced/internal/httpapi"
	"housepriced/internal/predict"
)

const shutdownTimeout = 5 * time.Second

func runServe(cmd *cobra.Command, opts *options) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	log, closer, err := newLogger(cfg, opts.stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return err
	}
	return serve(ctx, ln, cfg, log)
}

// serve loads the model per cfg and serves HTTP on ln until ctx is done.
func serve(ctx context.Context, ln net.Listener, cfg config.Config, log zerolog.Logger) error {
	svc, err := predict.Open(cfg.ModelPath, cfg.StrictStartup, log)
	if err != nil {
		ln.Close()
		return err
	}

	httpapi.SetLogger(log)
	httpapi.SetRequestLogLevel(cfg.RequestLogLevel)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSOrigins, cfg.CORSMethods, cfg.CORSHeaders)

	srv := &http.Server{Handler: httpapi.NewMux(svc)}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Str("model", cfg.ModelPath).Bool("ready", svc.Ready()).Msg("housepriced listening")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info().Msg("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
		return err
	}
	return nil
}
