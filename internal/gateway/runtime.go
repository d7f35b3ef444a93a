// Package gateway owns the process lifecycle of both front ends: the HTTP
// server and the optional bot surface start and stop together.
package gateway

import (
	"context"
	"log/slog"
	"net/http"
)

// BotSurface is the lifecycle the runtime needs from the chat surface.
type BotSurface interface {
	Start()
	Stop()
}

// Runtime owns the HTTP listener and the bot connection.
type Runtime struct {
	server *http.Server
	bot    BotSurface
	logger *slog.Logger
}

// New creates a runtime. bot may be nil when the bot surface is disabled.
func New(server *http.Server, bot BotSurface, logger *slog.Logger) *Runtime {
	return &Runtime{
		server: server,
		bot:    bot,
		logger: logger,
	}
}

// Start launches both surfaces. Server errors other than a clean close are
// reported on the returned channel.
func (r *Runtime) Start() <-chan error {
	errc := make(chan error, 1)

	go func() {
		r.logger.Info("starting HTTP server", "addr", r.server.Addr)
		if err := r.server.ListenAndServe(); err != http.ErrServerClosed {
			errc <- err
		}
	}()

	if r.bot != nil {
		r.logger.Info("starting bot surface")
		r.bot.Start()
	}

	return errc
}

// Stop shuts both surfaces down. Bot teardown failures are swallowed;
// shutdown is best effort.
func (r *Runtime) Stop(ctx context.Context) error {
	err := r.server.Shutdown(ctx)

	if r.bot != nil {
		r.bot.Stop()
	}

	return err
}
