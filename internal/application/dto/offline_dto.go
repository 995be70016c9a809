package dto

import "time"

// OfflineStatusDTO respuesta de GET /api/offline/status.
type OfflineStatusDTO struct {
	Enabled      bool       `json:"enabled"`
	Online       bool       `json:"online"`
	Pending      int        `json:"pending"`
	LastReplayAt *time.Time `json:"last_replay_at,omitempty"`
}

// ReplayResultDTO respuesta de POST /api/offline/replay.
type ReplayResultDTO struct {
	Applied   int `json:"applied"`
	Failed    int `json:"failed"`
	Remaining int `json:"remaining"`
}
