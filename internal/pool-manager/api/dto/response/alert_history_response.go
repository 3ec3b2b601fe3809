package response

import "Integration_Pool_Manager/internal/pool-manager/model"

type AlertHistoryResponse struct {
	Alerts []model.Alert `json:"alerts"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}
