// Package models defines the data structures exchanged between the query client and the evaluator.
package models

// ServerStatus represents a successful Server List Ping response.
type ServerStatus struct {
	// Description is the advertised message of the day.
	Description string `json:"description"`

	// Version is the server version name, e.g. "1.21.4" or "Paper 1.20.1".
	Version string `json:"version"`

	// Protocol is the protocol number announced by the server.
	Protocol int `json:"protocol"`

	PlayersOnline int `json:"players_online"`
	PlayersMax    int `json:"players_max"`

	// Latency is the round trip time in milliseconds, rounded to 2 decimals.
	Latency float64 `json:"latency"`
}

// Full reports whether the server is at capacity.
func (s ServerStatus) Full() bool {
	return s.PlayersOnline == s.PlayersMax
}
