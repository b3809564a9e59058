package web

import "context"

// Server is a component the app starts with its context and stops on exit.
type Server interface {
	Start(ctx context.Context) error
	Stop() error
}

// NoopServer stands in when the HTTP API is disabled.
type NoopServer struct{}

func (*NoopServer) Start(context.Context) error { return nil }
func (*NoopServer) Stop() error                 { return nil }
