package health

import (
	"Integration_Pool_Manager/internal/pool-manager/model"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
)

const defaultHealthPath = "/health"

// Prober performs a single protocol specific health check, retrying transient network errors.
type Prober interface {
	Probe(ctx context.Context, server model.ServerConfig) model.ProbeResult
}

type prober struct {
	client         *http.Client
	dialer         *websocket.Dialer
	maxRetries     int
	initialBackoff time.Duration
	defaultTimeout time.Duration
}

type probeOutcome struct {
	statusCode int
	err        error
}

func (p *prober) Probe(ctx context.Context, server model.ServerConfig) model.ProbeResult {
	timeout := p.defaultTimeout
	if server.HealthCheck.TimeoutMs > 0 {
		timeout = time.Duration(server.HealthCheck.TimeoutMs) * time.Millisecond
	}

	start := time.Now()
	backoff := p.initialBackoff
	var outcome probeOutcome
	attempts := 0
	for attempts <= p.maxRetries {
		attempts++
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		outcome = p.probeOnce(attemptCtx, server)
		cancel()
		if outcome.err == nil || !isTransient(outcome.err) || attempts > p.maxRetries {
			break
		}
		if !sleepContext(ctx, backoff) {
			break
		}
		backoff *= 2
	}

	latency := time.Since(start)
	res := model.ProbeResult{
		ServerID:   server.ID,
		Success:    outcome.err == nil,
		StatusCode: outcome.statusCode,
		Latency:    latency,
		LatencyMs:  latency.Milliseconds(),
		Attempts:   attempts,
		Timestamp:  time.Now(),
	}
	if outcome.err != nil {
		res.Error = outcome.err.Error()
	}
	return res
}

// isTransient reports whether another attempt may succeed. Refused connections and rejections by the server are final.
func isTransient(err error) bool {
	var rejected *rejectedError
	return !errors.As(err, &rejected) && !errors.Is(err, syscall.ECONNREFUSED)
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

type rejectedError struct {
	reason string
}

func (e *rejectedError) Error() string {
	return e.reason
}

func (p *prober) probeOnce(ctx context.Context, server model.ServerConfig) probeOutcome {
	switch server.Protocol {
	case model.ProtocolHTTP:
		return p.probeHTTP(ctx, server)
	case model.ProtocolWebSocket:
		return p.probeWebSocket(ctx, server)
	case model.ProtocolGRPC:
		return p.probeGRPC(ctx, server)
	}
	return probeOutcome{err: &rejectedError{reason: fmt.Sprintf("unsupported protocol %q", server.Protocol)}}
}

func healthPath(server model.ServerConfig) string {
	if server.HealthCheck.Endpoint == "" {
		return defaultHealthPath
	}
	return server.HealthCheck.Endpoint
}

func (p *prober) probeHTTP(ctx context.Context, server model.ServerConfig) probeOutcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL(healthPath(server)), nil)
	if err != nil {
		return probeOutcome{err: &rejectedError{reason: fmt.Sprintf("creating request: %v", err)}}
	}
	for k, v := range server.Authentication.Header() {
		req.Header[k] = v
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return probeOutcome{err: err}
	}
	defer resp.Body.Close()

	expected := server.HealthCheck.ExpectedResponse
	if expected != nil && expected.StatusCode != 0 {
		if resp.StatusCode != expected.StatusCode {
			return probeOutcome{statusCode: resp.StatusCode, err: &rejectedError{reason: fmt.Sprintf("expected status %d, got %d", expected.StatusCode, resp.StatusCode)}}
		}
	} else if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return probeOutcome{statusCode: resp.StatusCode, err: &rejectedError{reason: fmt.Sprintf("unexpected status %d", resp.StatusCode)}}
	}
	if expected != nil && expected.BodyContains != "" {
		body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return probeOutcome{statusCode: resp.StatusCode, err: err}
		}
		if !strings.Contains(string(body), expected.BodyContains) {
			return probeOutcome{statusCode: resp.StatusCode, err: &rejectedError{reason: fmt.Sprintf("response body does not contain %q", expected.BodyContains)}}
		}
	}
	return probeOutcome{statusCode: resp.StatusCode}
}

func (p *prober) probeWebSocket(ctx context.Context, server model.ServerConfig) probeOutcome {
	conn, resp, err := p.dialer.DialContext(ctx, server.URL(server.HealthCheck.Endpoint), server.Authentication.Header())
	if err != nil {
		if resp != nil {
			return probeOutcome{statusCode: resp.StatusCode, err: &rejectedError{reason: fmt.Sprintf("handshake rejected with status %d", resp.StatusCode)}}
		}
		return probeOutcome{err: err}
	}
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
	conn.Close()
	return probeOutcome{statusCode: resp.StatusCode}
}

func (p *prober) probeGRPC(ctx context.Context, server model.ServerConfig) probeOutcome {
	conn, err := grpc.NewClient(server.GRPCTarget(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return probeOutcome{err: &rejectedError{reason: fmt.Sprintf("creating client: %v", err)}}
	}
	defer conn.Close()

	ctx = metadata.NewOutgoingContext(ctx, grpcMetadata(server.Authentication))
	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{
		Service: strings.TrimPrefix(server.HealthCheck.Endpoint, "/"),
	})
	if err != nil {
		return probeOutcome{err: err}
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return probeOutcome{err: &rejectedError{reason: fmt.Sprintf("service status %s", resp.GetStatus())}}
	}
	return probeOutcome{}
}

func grpcMetadata(auth model.Authentication) metadata.MD {
	md := metadata.MD{}
	for k, v := range auth.Header() {
		md.Set(strings.ToLower(k), v...)
	}
	return md
}

func NewProber(maxRetries int, defaultTimeout time.Duration, initialBackoff time.Duration) Prober {
	return &prober{
		client: &http.Client{},
		dialer: &websocket.Dialer{
			HandshakeTimeout: defaultTimeout,
		},
		maxRetries:     maxRetries,
		initialBackoff: initialBackoff,
		defaultTimeout: defaultTimeout,
	}
}
