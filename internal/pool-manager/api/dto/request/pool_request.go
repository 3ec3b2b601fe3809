package request

import "Integration_Pool_Manager/internal/pool-manager/model"

type PoolRequest struct {
	Name                  string                   `json:"name" binding:"required"`
	Description           string                   `json:"description"`
	Capability            string                   `json:"capability"`
	ServerIDs             []string                 `json:"serverIds"`
	LoadBalancingStrategy string                   `json:"loadBalancingStrategy" binding:"required,oneof=round_robin least_connections weighted priority random"`
	Configuration         *model.PoolConfiguration `json:"configuration"`
}

type UpdatePoolRequest struct {
	Description           *string                  `json:"description"`
	Capability            *string                  `json:"capability"`
	ServerIDs             []string                 `json:"serverIds"`
	LoadBalancingStrategy *string                  `json:"loadBalancingStrategy" binding:"omitempty,oneof=round_robin least_connections weighted priority random"`
	Configuration         *model.PoolConfiguration `json:"configuration"`
}
