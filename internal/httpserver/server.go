package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// StartHTTP starts serving h on addr and returns the bound address, a shutdown function
// and a channel that receives the error if serving stops for any reason other than
// shutdown. The channel is closed once the server has stopped.
func StartHTTP(addr string, h http.Handler, logger *zap.Logger) (net.Addr, func(context.Context) error, <-chan error, error) {
	if h == nil {
		panic("handler is required")
	}
	if addr == "" {
		addr = ":8080"
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, nil, err
	}
	shutdown, errc := serveOn(lis, h, logger)
	return lis.Addr(), shutdown, errc, nil
}

func serveOn(lis net.Listener, h http.Handler, logger *zap.Logger) (func(context.Context) error, <-chan error) {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", zap.Error(err))
			errc <- err
		}
	}()
	return srv.Shutdown, errc
}
