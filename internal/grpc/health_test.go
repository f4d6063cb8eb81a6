package grpcserver

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"storefrontGraphQL/internal/testutil"
)

type fakePinger struct {
	fail  atomic.Bool
	calls atomic.Int32
}

func (f *fakePinger) PingContext(context.Context) error {
	f.calls.Add(1)
	if f.fail.Load() {
		return errors.New("db down")
	}
	return nil
}

func TestChecker_FlipsStatus(t *testing.T) {
	p := &fakePinger{}
	c := NewChecker(p, time.Hour, testutil.Logger(t))
	ctx := context.Background()

	if got := c.Check(ctx); got != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("status = %v, want SERVING", got)
	}
	resp, err := c.Server().Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil || resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("health check: %v %v", resp, err)
	}

	p.fail.Store(true)
	if got := c.Check(ctx); got != healthpb.HealthCheckResponse_NOT_SERVING {
		t.Fatalf("status = %v, want NOT_SERVING", got)
	}
	resp, err = c.Server().Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil || resp.GetStatus() != healthpb.HealthCheckResponse_NOT_SERVING {
		t.Fatalf("health check after failure: %v %v", resp, err)
	}
}

func TestChecker_RunStopsWithContext(t *testing.T) {
	p := &fakePinger{}
	c := NewChecker(p, 5*time.Millisecond, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() { c.Run(ctx); close(done) }()

	deadline := time.After(2 * time.Second)
	for p.calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("checker did not tick, calls=%d", p.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestStartGRPC_ServesHealth(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "grpchealth")
	c := NewChecker(d, time.Hour, testutil.Logger(t))
	c.Check(context.Background())

	addr, shutdown, err := StartGRPC("127.0.0.1:0", c.Server())
	if err != nil {
		t.Fatalf("StartGRPC: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdown(ctx)
	}()

	conn, err := grpc.NewClient(addr.String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		t.Fatalf("health check: %v", err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("status = %v, want SERVING", resp.GetStatus())
	}
}
