package router

import (
	apperrors "Integration_Pool_Manager/internal/pool-manager/errors"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	grpcExecuteMethod     = "/integration.v1.IntegrationService/Execute"
	executionTimeHeader   = "X-Execution-Time-Ms"
	operationIDHeader     = "X-Operation-Id"
	traceIDHeader         = "X-Trace-Id"
	maxResponseBodyLength = 10 << 20
)

// Dispatcher performs one attempt of an operation against one server.
type Dispatcher interface {
	Dispatch(ctx context.Context, server model.ServerConfig, req model.OperationRequest) (model.DispatchResult, error)
}

// Transport dispatches over HTTP, WebSocket and gRPC. It listens to the registry to drop cached gRPC connections.
type Transport interface {
	Dispatch(ctx context.Context, server model.ServerConfig, req model.OperationRequest) (model.DispatchResult, error)
	OnServerRegistered(server model.ServerConfig)
	OnServerUpdated(server model.ServerConfig)
	OnServerRemoved(serverID string)
	Close() error
}

// envelope is the payload every transport sends.
type envelope struct {
	OperationID string                 `json:"operationId"`
	Operation   string                 `json:"operation"`
	Parameters  map[string]interface{} `json:"parameters,omitempty"`
	Context     map[string]interface{} `json:"context,omitempty"`
	TraceID     string                 `json:"traceId,omitempty"`
	UserID      string                 `json:"userId,omitempty"`
	SessionID   string                 `json:"sessionId,omitempty"`
}

// reply is what WebSocket servers answer with.
type reply struct {
	OperationID     string                `json:"operationId"`
	Status          model.OperationStatus `json:"status"`
	Data            interface{}           `json:"data,omitempty"`
	Error           *model.OperationError `json:"error,omitempty"`
	Retryable       bool                  `json:"retryable,omitempty"`
	ExecutionTimeMs int64                 `json:"executionTimeMs,omitempty"`
}

type transport struct {
	client *http.Client
	dialer *websocket.Dialer

	mu    sync.Mutex
	conns map[string]*grpc.ClientConn
}

func newEnvelope(req model.OperationRequest) envelope {
	return envelope{
		OperationID: req.OperationID,
		Operation:   req.Operation,
		Parameters:  req.Parameters,
		Context:     req.Context,
		TraceID:     req.TraceID,
		UserID:      req.UserID,
		SessionID:   req.SessionID,
	}
}

func (t *transport) Dispatch(ctx context.Context, server model.ServerConfig, req model.OperationRequest) (model.DispatchResult, error) {
	switch server.Protocol {
	case model.ProtocolHTTP:
		return t.dispatchHTTP(ctx, server, req)
	case model.ProtocolWebSocket:
		return t.dispatchWebSocket(ctx, server, req)
	case model.ProtocolGRPC:
		return t.dispatchGRPC(ctx, server, req)
	}
	return model.DispatchResult{}, &apperrors.DispatchError{ServerID: server.ID, Err: apperrors.ErrUnsupportedProtocol}
}

// classifyStatus maps a downstream HTTP status to the router's error taxonomy.
func classifyStatus(serverID string, code int, body []byte) error {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return &apperrors.AuthenticationError{ServerID: serverID, StatusCode: code}
	case code == http.StatusRequestTimeout || code == http.StatusTooManyRequests || code >= 500:
		return &apperrors.DispatchError{ServerID: serverID, StatusCode: code, Retryable: true, Err: errors.New(string(body))}
	}
	return &apperrors.DispatchError{ServerID: serverID, StatusCode: code, Err: errors.New(string(body))}
}

func (t *transport) dispatchHTTP(ctx context.Context, server model.ServerConfig, req model.OperationRequest) (model.DispatchResult, error) {
	body, err := json.Marshal(newEnvelope(req))
	if err != nil {
		return model.DispatchResult{}, &apperrors.DispatchError{ServerID: server.ID, Err: err}
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, server.URL("/operations/"+req.Operation), bytes.NewReader(body))
	if err != nil {
		return model.DispatchResult{}, &apperrors.DispatchError{ServerID: server.ID, Err: err}
	}
	for k, v := range server.Authentication.Header() {
		httpReq.Header[k] = v
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(operationIDHeader, req.OperationID)
	if req.TraceID != "" {
		httpReq.Header.Set(traceIDHeader, req.TraceID)
	}

	start := time.Now()
	resp, err := t.client.Do(httpReq)
	if err != nil {
		return model.DispatchResult{}, &apperrors.DispatchError{ServerID: server.ID, Retryable: true, Err: err}
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyLength))
	if err != nil {
		return model.DispatchResult{}, &apperrors.DispatchError{ServerID: server.ID, StatusCode: resp.StatusCode, Retryable: true, Err: err}
	}
	elapsed := time.Since(start)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.DispatchResult{}, classifyStatus(server.ID, resp.StatusCode, raw)
	}

	var data interface{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &data); err != nil {
			data = string(raw)
		}
	}
	return withTimings(data, elapsed, resp.Header.Get(executionTimeHeader)), nil
}

// withTimings splits the round trip into server execution and network time when the server reports the former.
func withTimings(data interface{}, elapsed time.Duration, executionMs string) model.DispatchResult {
	res := model.DispatchResult{Data: data, ExecutionTime: elapsed}
	if ms, err := strconv.ParseInt(executionMs, 10, 64); err == nil && ms >= 0 {
		exec := time.Duration(ms) * time.Millisecond
		if exec <= elapsed {
			res.ExecutionTime = exec
			res.NetworkTime = elapsed - exec
		}
	}
	return res
}

func (t *transport) dispatchWebSocket(ctx context.Context, server model.ServerConfig, req model.OperationRequest) (model.DispatchResult, error) {
	start := time.Now()
	conn, resp, err := t.dialer.DialContext(ctx, server.Endpoint, server.Authentication.Header())
	if err != nil {
		if resp != nil {
			return model.DispatchResult{}, classifyStatus(server.ID, resp.StatusCode, nil)
		}
		return model.DispatchResult{}, &apperrors.DispatchError{ServerID: server.ID, Retryable: true, Err: err}
	}
	defer conn.Close()

	// Unblock reads and writes when the attempt is cancelled.
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetReadDeadline(time.Now())
		_ = conn.SetWriteDeadline(time.Now())
	})
	defer stop()

	if err := conn.WriteJSON(newEnvelope(req)); err != nil {
		return model.DispatchResult{}, &apperrors.DispatchError{ServerID: server.ID, Retryable: true, Err: err}
	}
	var r reply
	if err := conn.ReadJSON(&r); err != nil {
		if ctx.Err() != nil {
			return model.DispatchResult{}, ctx.Err()
		}
		return model.DispatchResult{}, &apperrors.DispatchError{ServerID: server.ID, Retryable: true, Err: err}
	}
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))

	if r.Status != "" && r.Status != model.OperationStatusSuccess {
		msg := "operation failed"
		if r.Error != nil {
			msg = fmt.Sprintf("%s: %s", r.Error.Code, r.Error.Message)
		}
		return model.DispatchResult{}, &apperrors.DispatchError{ServerID: server.ID, Retryable: r.Retryable, Err: errors.New(msg)}
	}
	var executionMs string
	if r.ExecutionTimeMs > 0 {
		executionMs = strconv.FormatInt(r.ExecutionTimeMs, 10)
	}
	return withTimings(r.Data, time.Since(start), executionMs), nil
}

func (t *transport) conn(server model.ServerConfig) (*grpc.ClientConn, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if c, ok := t.conns[server.ID]; ok {
		return c, nil
	}
	c, err := grpc.NewClient(server.GRPCTarget(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	t.conns[server.ID] = c
	return c, nil
}

func (t *transport) dispatchGRPC(ctx context.Context, server model.ServerConfig, req model.OperationRequest) (model.DispatchResult, error) {
	conn, err := t.conn(server)
	if err != nil {
		return model.DispatchResult{}, &apperrors.DispatchError{ServerID: server.ID, Err: err}
	}

	payload, err := json.Marshal(newEnvelope(req))
	if err != nil {
		return model.DispatchResult{}, &apperrors.DispatchError{ServerID: server.ID, Err: err}
	}
	in := &structpb.Struct{}
	if err := in.UnmarshalJSON(payload); err != nil {
		return model.DispatchResult{}, &apperrors.DispatchError{ServerID: server.ID, Err: err}
	}

	md := metadata.MD{}
	for k, v := range server.Authentication.Header() {
		md.Set(k, v...)
	}
	md.Set(operationIDHeader, req.OperationID)
	ctx = metadata.NewOutgoingContext(ctx, md)

	var header metadata.MD
	out := &structpb.Struct{}
	start := time.Now()
	if err := conn.Invoke(ctx, grpcExecuteMethod, in, out, grpc.Header(&header)); err != nil {
		return model.DispatchResult{}, classifyGRPC(server.ID, err)
	}
	var executionMs string
	if v := header.Get(executionTimeHeader); len(v) > 0 {
		executionMs = v[0]
	}
	data := out.AsMap()
	if d, ok := data["data"]; ok {
		return withTimings(d, time.Since(start), executionMs), nil
	}
	return withTimings(data, time.Since(start), executionMs), nil
}

func classifyGRPC(serverID string, err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return &apperrors.DispatchError{ServerID: serverID, Retryable: true, Err: err}
	}
	switch st.Code() {
	case codes.Unauthenticated:
		return &apperrors.AuthenticationError{ServerID: serverID, StatusCode: http.StatusUnauthorized}
	case codes.PermissionDenied:
		return &apperrors.AuthenticationError{ServerID: serverID, StatusCode: http.StatusForbidden}
	case codes.Canceled, codes.DeadlineExceeded:
		return err
	case codes.Unavailable, codes.ResourceExhausted, codes.Aborted, codes.Internal, codes.Unknown:
		return &apperrors.DispatchError{ServerID: serverID, Retryable: true, Err: err}
	}
	return &apperrors.DispatchError{ServerID: serverID, Err: err}
}

func (t *transport) forget(serverID string) {
	t.mu.Lock()
	c, ok := t.conns[serverID]
	delete(t.conns, serverID)
	t.mu.Unlock()
	if ok {
		_ = c.Close()
	}
}

func (t *transport) OnServerRegistered(server model.ServerConfig) {}

// OnServerUpdated drops the cached connection so a changed endpoint is dialled fresh.
func (t *transport) OnServerUpdated(server model.ServerConfig) {
	t.forget(server.ID)
}

func (t *transport) OnServerRemoved(serverID string) {
	t.forget(serverID)
}

func (t *transport) Close() error {
	t.mu.Lock()
	conns := t.conns
	t.conns = make(map[string]*grpc.ClientConn)
	t.mu.Unlock()

	var errs []error
	for _, c := range conns {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func NewTransport(handshakeTimeout time.Duration) Transport {
	return &transport{
		client: &http.Client{},
		dialer: &websocket.Dialer{HandshakeTimeout: handshakeTimeout},
		conns:  make(map[string]*grpc.ClientConn),
	}
}
