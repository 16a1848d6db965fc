package cli

import (
	"context"

	"activity-sampler/internal/config"
	httptransport "activity-sampler/internal/transport/http"
)

// ServeCommand handles the serve command
type ServeCommand struct {
	app    *App
	server config.ServerConfig
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App, server config.ServerConfig) *ServeCommand {
	return &ServeCommand{app: app, server: server}
}

// Execute serves the HTTP query API until ctx is done
func (c *ServeCommand) Execute(ctx context.Context, _ []string) error {
	handler := httptransport.NewHandler(c.app.api, c.app.logger)
	srv := httptransport.NewServer(httptransport.ServerConfig{
		Address:      c.server.Address,
		ReadTimeout:  c.server.ReadTimeout,
		WriteTimeout: c.server.WriteTimeout,
	}, handler.Routes())

	c.app.logger.Info("serving query api", "address", c.server.Address)
	if err := httptransport.Run(ctx, srv, c.server.ShutdownTimeout); err != nil {
		return c.app.errors.Handle("serve", err)
	}
	c.app.logger.Info("query api stopped")
	return nil
}
