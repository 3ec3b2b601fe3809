package response

type Response struct {
	Message string `json:"message"`
}

type RegisterServerResponse struct {
	ServerID string `json:"serverId"`
}

type UptimeResponse struct {
	UptimePercentage float64 `json:"uptime_percentage"`
}
