package router

import (
	apperrors "Integration_Pool_Manager/internal/pool-manager/errors"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func testRequest(operation string) model.OperationRequest {
	return model.OperationRequest{
		OperationID: "op-1",
		Operation:   operation,
		Parameters:  map[string]interface{}{"limit": float64(10)},
		TraceID:     "trace-1",
	}
}

func TestTransport_DispatchHTTP(t *testing.T) {
	tests := []struct {
		name        string
		handler     http.HandlerFunc
		checkResult func(t *testing.T, res model.DispatchResult, err error)
	}{
		{
			name: "Success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/operations/listContacts", r.URL.Path)
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
				assert.Equal(t, "op-1", r.Header.Get(operationIDHeader))
				assert.Equal(t, "trace-1", r.Header.Get(traceIDHeader))

				var env envelope
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&env))
				assert.Equal(t, "listContacts", env.Operation)
				assert.Equal(t, float64(10), env.Parameters["limit"])

				w.Header().Set(executionTimeHeader, "0")
				_, _ = w.Write([]byte(`{"contacts":[1,2]}`))
			},
			checkResult: func(t *testing.T, res model.DispatchResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, map[string]interface{}{"contacts": []interface{}{float64(1), float64(2)}}, res.Data)
				assert.Equal(t, time.Duration(0), res.ExecutionTime)
			},
		},
		{
			name: "Server error is retryable",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			checkResult: func(t *testing.T, res model.DispatchResult, err error) {
				var dispatchErr *apperrors.DispatchError
				require.ErrorAs(t, err, &dispatchErr)
				assert.True(t, dispatchErr.Retryable)
				assert.Equal(t, http.StatusServiceUnavailable, dispatchErr.StatusCode)
			},
		},
		{
			name: "Too many requests is retryable",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			checkResult: func(t *testing.T, res model.DispatchResult, err error) {
				var dispatchErr *apperrors.DispatchError
				require.ErrorAs(t, err, &dispatchErr)
				assert.True(t, dispatchErr.Retryable)
			},
		},
		{
			name: "Rejected credentials",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
			checkResult: func(t *testing.T, res model.DispatchResult, err error) {
				var authErr *apperrors.AuthenticationError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, http.StatusForbidden, authErr.StatusCode)
			},
		},
		{
			name: "Client error is final",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte("no such operation"))
			},
			checkResult: func(t *testing.T, res model.DispatchResult, err error) {
				var dispatchErr *apperrors.DispatchError
				require.ErrorAs(t, err, &dispatchErr)
				assert.False(t, dispatchErr.Retryable)
				assert.Contains(t, dispatchErr.Error(), "no such operation")
			},
		},
		{
			name: "Plain text body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("done"))
			},
			checkResult: func(t *testing.T, res model.DispatchResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, "done", res.Data)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			server := model.ServerConfig{
				ID:             "s1",
				Endpoint:       srv.URL + "/api/",
				Protocol:       model.ProtocolHTTP,
				Authentication: model.Authentication{Type: model.AuthTypeBearer, Credentials: map[string]string{"token": "secret"}},
			}
			tr := NewTransport(time.Second)
			defer tr.Close()

			res, err := tr.Dispatch(context.Background(), server, testRequest("listContacts"))

			tc.checkResult(t, res, err)
		})
	}
}

func TestTransport_DispatchHTTPConnectionRefused(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())

	tr := NewTransport(time.Second)
	_, err = tr.Dispatch(context.Background(), model.ServerConfig{ID: "s1", Endpoint: "http://" + addr, Protocol: model.ProtocolHTTP}, testRequest("sync"))

	var dispatchErr *apperrors.DispatchError
	require.ErrorAs(t, err, &dispatchErr)
	assert.True(t, dispatchErr.Retryable)
}

func TestTransport_DispatchWebSocket(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var env envelope
		if err := conn.ReadJSON(&env); err != nil {
			return
		}
		if env.Operation == "fail" {
			_ = conn.WriteJSON(reply{
				OperationID: env.OperationID,
				Status:      model.OperationStatusError,
				Error:       &model.OperationError{Code: "UPSTREAM", Message: "provider down"},
				Retryable:   true,
			})
			return
		}
		_ = conn.WriteJSON(reply{
			OperationID: env.OperationID,
			Status:      model.OperationStatusSuccess,
			Data:        map[string]interface{}{"echo": env.OperationID},
		})
		_, _, _ = conn.ReadMessage()
	}))
	defer srv.Close()

	server := model.ServerConfig{ID: "ws", Endpoint: "ws" + strings.TrimPrefix(srv.URL, "http"), Protocol: model.ProtocolWebSocket}
	tr := NewTransport(time.Second)

	res, err := tr.Dispatch(context.Background(), server, testRequest("sync"))
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"echo": "op-1"}, res.Data)

	_, err = tr.Dispatch(context.Background(), server, testRequest("fail"))
	var dispatchErr *apperrors.DispatchError
	require.ErrorAs(t, err, &dispatchErr)
	assert.True(t, dispatchErr.Retryable)
	assert.Contains(t, err.Error(), "UPSTREAM: provider down")
}

func startIntegrationServer(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := grpc.NewServer(grpc.UnknownServiceHandler(func(_ any, stream grpc.ServerStream) error {
		method, _ := grpc.MethodFromServerStream(stream)
		if method != grpcExecuteMethod {
			return status.Error(codes.Unimplemented, method)
		}
		in := &structpb.Struct{}
		if err := stream.RecvMsg(in); err != nil {
			return err
		}
		md, _ := metadata.FromIncomingContext(stream.Context())
		if len(md.Get("authorization")) == 0 {
			return status.Error(codes.Unauthenticated, "missing credentials")
		}
		switch in.Fields["operation"].GetStringValue() {
		case "fail":
			return status.Error(codes.Unavailable, "provider down")
		case "invalid":
			return status.Error(codes.InvalidArgument, "bad parameters")
		}
		out, err := structpb.NewStruct(map[string]interface{}{
			"data": map[string]interface{}{"echo": in.Fields["operationId"].GetStringValue()},
		})
		if err != nil {
			return err
		}
		return stream.SendMsg(out)
	}))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)
	return lis.Addr().String()
}

func TestTransport_DispatchGRPC(t *testing.T) {
	addr := startIntegrationServer(t)
	auth := model.Authentication{Type: model.AuthTypeBearer, Credentials: map[string]string{"token": "secret"}}

	tests := []struct {
		name        string
		operation   string
		auth        model.Authentication
		checkResult func(t *testing.T, res model.DispatchResult, err error)
	}{
		{
			name:      "Success",
			operation: "sync",
			auth:      auth,
			checkResult: func(t *testing.T, res model.DispatchResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, map[string]interface{}{"echo": "op-1"}, res.Data)
			},
		},
		{
			name:      "Unavailable is retryable",
			operation: "fail",
			auth:      auth,
			checkResult: func(t *testing.T, res model.DispatchResult, err error) {
				var dispatchErr *apperrors.DispatchError
				require.ErrorAs(t, err, &dispatchErr)
				assert.True(t, dispatchErr.Retryable)
			},
		},
		{
			name:      "Invalid argument is final",
			operation: "invalid",
			auth:      auth,
			checkResult: func(t *testing.T, res model.DispatchResult, err error) {
				var dispatchErr *apperrors.DispatchError
				require.ErrorAs(t, err, &dispatchErr)
				assert.False(t, dispatchErr.Retryable)
			},
		},
		{
			name:      "Unauthenticated",
			operation: "sync",
			auth:      model.Authentication{Type: model.AuthTypeNone},
			checkResult: func(t *testing.T, res model.DispatchResult, err error) {
				var authErr *apperrors.AuthenticationError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTransport(time.Second)
			defer tr.Close()
			server := model.ServerConfig{ID: "g1", Endpoint: "grpc://" + addr, Protocol: model.ProtocolGRPC, Authentication: tc.auth}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			res, err := tr.Dispatch(ctx, server, testRequest(tc.operation))

			tc.checkResult(t, res, err)
		})
	}
}

func TestTransport_ForgetsConnections(t *testing.T) {
	addr := startIntegrationServer(t)
	tr := NewTransport(time.Second).(*transport)
	server := model.ServerConfig{ID: "g1", Endpoint: addr, Protocol: model.ProtocolGRPC,
		Authentication: model.Authentication{Type: model.AuthTypeAPIKey, Credentials: map[string]string{"key": "k", "header": "Authorization"}}}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := tr.Dispatch(ctx, server, testRequest("sync"))
	require.NoError(t, err)
	require.Len(t, tr.conns, 1)

	tr.OnServerUpdated(server)
	assert.Empty(t, tr.conns)

	_, err = tr.Dispatch(ctx, server, testRequest("sync"))
	require.NoError(t, err)
	tr.OnServerRemoved("g1")
	assert.Empty(t, tr.conns)
	assert.NoError(t, tr.Close())
}

func TestTransport_UnsupportedProtocol(t *testing.T) {
	tr := NewTransport(time.Second)

	_, err := tr.Dispatch(context.Background(), model.ServerConfig{ID: "x", Protocol: "ftp"}, testRequest("sync"))

	assert.ErrorIs(t, err, apperrors.ErrUnsupportedProtocol)
	assert.False(t, isServerFault(err))
}
