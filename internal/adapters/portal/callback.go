package portal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

const CallbackPath = "/lazorkit/callback"

var (
	ErrStateMismatch   = errors.New("portal callback state mismatch")
	ErrCallbackTimeout = errors.New("timed out waiting for portal callback")
	ErrMissingState    = errors.New("expected state is required")
)

// CallbackServer receives the single redirect that ends a passkey ceremony.
type CallbackServer struct {
	expectedState string
	listener      net.Listener
	server        *http.Server
	resultCh      chan callbackResult
	resultOnce    sync.Once
	closeOnce     sync.Once
}

type callbackResult struct {
	values url.Values
	err    error
}

func StartCallbackServer(listenAddr string, expectedState string, logger log.FieldLogger) (*CallbackServer, error) {
	if expectedState == "" {
		return nil, ErrMissingState
	}
	if listenAddr == "" {
		listenAddr = "127.0.0.1:0"
	}
	if logger == nil {
		logger = log.StandardLogger()
	}

	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, fmt.Errorf("listen callback server: %w", err)
	}

	cb := &CallbackServer{
		expectedState: expectedState,
		listener:      listener,
		resultCh:      make(chan callbackResult, 1),
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(requestLogger(logger))
	router.Get(CallbackPath, cb.handleCallback)

	cb.server = &http.Server{Handler: router, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		if serveErr := cb.server.Serve(cb.listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			cb.trySendResult(callbackResult{err: serveErr})
		}
	}()

	return cb, nil
}

func (c *CallbackServer) RedirectURI() string {
	if tcpAddr, ok := c.listener.Addr().(*net.TCPAddr); ok {
		return fmt.Sprintf("http://127.0.0.1:%d%s", tcpAddr.Port, CallbackPath)
	}
	return "http://127.0.0.1" + CallbackPath
}

// Wait blocks until the callback arrives, ctx ends or timeout elapses, then
// shuts the server down.
func (c *CallbackServer) Wait(ctx context.Context, timeout time.Duration) (url.Values, error) {
	defer func() { _ = c.Close() }()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case result := <-c.resultCh:
		return result.values, result.err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return nil, ErrCallbackTimeout
	}
}

func (c *CallbackServer) Close() error {
	var closeErr error
	c.closeOnce.Do(func() {
		closeErr = c.server.Close()
	})
	return closeErr
}

func (c *CallbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Get("state") != c.expectedState {
		c.trySendResult(callbackResult{err: ErrStateMismatch})
		http.Error(w, "state mismatch", http.StatusBadRequest)
		return
	}
	if portalError := query.Get("error"); portalError != "" {
		if description := query.Get("error_description"); description != "" {
			portalError = portalError + ": " + description
		}
		c.trySendResult(callbackResult{err: errors.New(portalError)})
		http.Error(w, "passkey ceremony failed", http.StatusBadRequest)
		return
	}

	c.trySendResult(callbackResult{values: query})
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Passkey approved. You can close this window and return to the terminal."))
}

func (c *CallbackServer) trySendResult(result callbackResult) {
	c.resultOnce.Do(func() {
		c.resultCh <- result
	})
}

func requestLogger(logger log.FieldLogger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				logger.WithFields(log.Fields{
					"method":  r.Method,
					"path":    r.URL.Path,
					"status":  ww.Status(),
					"latency": time.Since(start).String(),
				}).Debug("callback request completed")
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
