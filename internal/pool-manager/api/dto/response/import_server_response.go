package response

type ImportServerResponse struct {
	ImportedCount   int                    `json:"imported_count"`
	ImportedServers []string               `json:"imported_servers,omitempty"`
	FailedCount     int                    `json:"failed_count"`
	FailedServers   []FailedServerResponse `json:"failed_servers,omitempty"`
}

type FailedServerResponse struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}
