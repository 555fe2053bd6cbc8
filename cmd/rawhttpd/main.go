package main

import (
	"net"
	"os"

	"github.com/indigo-web/rawhttp"
	"github.com/indigo-web/rawhttp/http"
	"github.com/indigo-web/rawhttp/kv"
	"github.com/rs/zerolog"
)

var addr = "localhost:8080"

func dict(storage *kv.Storage) *zerolog.Event {
	d := zerolog.Dict()
	for key, value := range storage.Iter() {
		d.Str(key, value)
	}

	return d
}

func logRequest(logger zerolog.Logger, request *http.Request) {
	event := logger.Info().
		Stringer("method", request.Method).
		Str("path", request.Path).
		Str("host", request.Host).
		Stringer("content", request.ContentType).
		Dict("params", dict(request.Params)).
		Dict("headers", dict(request.Headers))

	switch request.Body.Kind() {
	case http.BodyPayload:
		event.Str("body", request.Body.String())
	case http.BodyFields:
		event.Dict("fields", dict(request.Body.Fields()))
	}

	event.Msg("request")
}

func main() {
	logger := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()

	app := rawhttp.New(addr).
		NotifyOnStart(func(addr net.Addr) {
			logger.Info().Stringer("addr", addr).Msg("listening")
		}).
		OnRequest(func(request *http.Request) {
			logRequest(logger, request)
		}).
		OnError(func(remote net.Addr, err error) {
			logger.Warn().Stringer("remote", remote).Err(err).Msg("failed to decode request")
		})

	if err := app.Serve(); err != nil && !rawhttp.IsShutdown(err) {
		logger.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
