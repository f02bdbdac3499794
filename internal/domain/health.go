package domain

import "time"

type HealthStatus struct {
	StoreDriver  string    `json:"store_driver"`
	StoreHealthy bool      `json:"store_healthy"`
	WSClients    int       `json:"ws_clients"`
	ServerTime   time.Time `json:"server_time"`
}
