package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/catalogops/lineage-engine/pkg/logging"
)

func testServer() *GracefulServer {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: mux}
	return NewGracefulServer(srv, time.Second, logging.NewNopLogger())
}

func TestIsShuttingDown(t *testing.T) {
	gs := testServer()
	if gs.IsShuttingDown() {
		t.Error("fresh server reports shutting down")
	}
	if err := gs.Shutdown(); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
	if !gs.IsShuttingDown() {
		t.Error("shutdown not reported")
	}
}

func TestShutdownIsIdempotent(t *testing.T) {
	gs := testServer()
	for i := 0; i < 3; i++ {
		if err := gs.Shutdown(); err != nil {
			t.Fatalf("shutdown call %d failed: %v", i, err)
		}
	}
}

func TestStartReturnsCleanlyAfterShutdown(t *testing.T) {
	gs := testServer()

	done := make(chan error, 1)
	go func() { done <- gs.Start() }()

	// Give the listener a moment to come up, then drain it
	time.Sleep(50 * time.Millisecond)
	if err := gs.Shutdown(); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start returned error after shutdown: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after shutdown")
	}
}

func TestDefaultShutdownTimeout(t *testing.T) {
	gs := NewGracefulServer(&http.Server{}, 0, nil)
	if gs.shutdownTimeout != 15*time.Second {
		t.Errorf("timeout = %s, want 15s", gs.shutdownTimeout)
	}
}
