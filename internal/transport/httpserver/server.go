package httpserver

import (
	"net/http"
	"time"

	"collabhive-go/internal/config"
)

// The router cancels handlers after 30s, so writes need a little longer.
const minWriteTimeout = 35 * time.Second

func New(cfg config.Config, handler http.Handler) *http.Server {
	writeTimeout := cfg.HTTPTimeout.Write
	if writeTimeout < minWriteTimeout {
		writeTimeout = minWriteTimeout
	}
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       60 * time.Second,
	}
}
