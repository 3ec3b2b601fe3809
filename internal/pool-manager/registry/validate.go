package registry

import (
	apperrors "Integration_Pool_Manager/internal/pool-manager/errors"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"fmt"
	"net"
	"net/url"
	"strings"
)

var requiredCredentials = map[model.AuthType][]string{
	model.AuthTypeNone:   nil,
	model.AuthTypeAPIKey: {"key"},
	model.AuthTypeBearer: {"token"},
	model.AuthTypeBasic:  {"username", "password"},
	model.AuthTypeOAuth2: {"accessToken"},
}

// ApplyServerDefaults fills the optional fields a client may leave out.
func ApplyServerDefaults(server model.ServerConfig) model.ServerConfig {
	if server.Priority == "" {
		server.Priority = model.PriorityNormal
	}
	if server.Authentication.Type == "" {
		server.Authentication.Type = model.AuthTypeNone
	}
	return server
}

// ValidateServer checks a complete server configuration.
func ValidateServer(server model.ServerConfig) error {
	if strings.TrimSpace(server.Name) == "" {
		return apperrors.NewValidationError("name", "is required")
	}
	if !server.Protocol.Valid() {
		return apperrors.NewValidationError("protocol", fmt.Sprintf("unknown protocol %q", server.Protocol))
	}
	if err := validateEndpoint(server.Endpoint, server.Protocol); err != nil {
		return err
	}
	if !server.Priority.Valid() {
		return apperrors.NewValidationError("priority", fmt.Sprintf("unknown priority %q", server.Priority))
	}
	if server.Status != "" && !server.Status.Valid() {
		return apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", server.Status))
	}
	if err := validateAuthentication(server.Authentication); err != nil {
		return err
	}
	for _, c := range server.Capabilities {
		if strings.TrimSpace(c.Name) == "" {
			return apperrors.NewValidationError("capabilities", "capability name is required")
		}
	}
	if server.Performance.MaxConcurrentConnections < 0 || server.Performance.AverageResponseTimeMs < 0 {
		return apperrors.NewValidationError("performance", "values must not be negative")
	}
	return validateHealthCheck(server.HealthCheck)
}

func validateEndpoint(endpoint string, protocol model.Protocol) error {
	if endpoint == "" {
		return apperrors.NewValidationError("endpoint", "is required")
	}
	if protocol == model.ProtocolGRPC {
		target := strings.TrimPrefix(endpoint, "grpc://")
		host, port, err := net.SplitHostPort(target)
		if err != nil || host == "" || port == "" {
			return apperrors.NewValidationError("endpoint", "grpc endpoint must be host:port")
		}
		return nil
	}

	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return apperrors.NewValidationError("endpoint", "must be an absolute url")
	}
	var allowed []string
	switch protocol {
	case model.ProtocolHTTP:
		allowed = []string{"http", "https"}
	case model.ProtocolWebSocket:
		allowed = []string{"ws", "wss"}
	}
	for _, scheme := range allowed {
		if u.Scheme == scheme {
			return nil
		}
	}
	return apperrors.NewValidationError("endpoint", fmt.Sprintf("scheme %q does not match protocol %s", u.Scheme, protocol))
}

func validateAuthentication(auth model.Authentication) error {
	required, ok := requiredCredentials[auth.Type]
	if !ok {
		return apperrors.NewValidationError("authentication.type", fmt.Sprintf("unknown type %q", auth.Type))
	}
	for _, key := range required {
		if auth.Credentials[key] == "" {
			return apperrors.NewValidationError("authentication.credentials", fmt.Sprintf("%s requires %s", auth.Type, key))
		}
	}
	return nil
}

func validateHealthCheck(hc model.HealthCheckConfig) error {
	if hc.IntervalMs < 0 || hc.TimeoutMs < 0 {
		return apperrors.NewValidationError("healthCheck", "interval and timeout must not be negative")
	}
	if hc.IntervalMs > 0 && hc.TimeoutMs > hc.IntervalMs {
		return apperrors.NewValidationError("healthCheck.timeoutMs", "must not exceed intervalMs")
	}
	if hc.ExpectedResponse != nil && hc.ExpectedResponse.StatusCode != 0 &&
		(hc.ExpectedResponse.StatusCode < 100 || hc.ExpectedResponse.StatusCode > 599) {
		return apperrors.NewValidationError("healthCheck.expectedResponse.statusCode", "must be a valid http status")
	}
	return nil
}

// checkPoolInvariant returns an empty string when min <= max <= members holds.
func checkPoolInvariant(pool model.Pool) string {
	cfg := pool.Configuration
	switch {
	case cfg.MinActiveServers < 0:
		return "minActiveServers must not be negative"
	case cfg.MinActiveServers > cfg.MaxActiveServers:
		return fmt.Sprintf("minActiveServers (%d) exceeds maxActiveServers (%d)", cfg.MinActiveServers, cfg.MaxActiveServers)
	case cfg.MaxActiveServers > len(pool.ServerIDs):
		return fmt.Sprintf("maxActiveServers (%d) exceeds member count (%d)", cfg.MaxActiveServers, len(pool.ServerIDs))
	case cfg.HealthCheckIntervalMs < 0 || cfg.FailoverTimeoutMs < 0 || cfg.CircuitBreakerThreshold < 0:
		return "configuration values must not be negative"
	}
	return ""
}
