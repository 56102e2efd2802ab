// Package uptime declares the data shapes for uptime monitoring records.
// These are pure data contracts with no behavior and no connection to the
// ratings client; they exist for consumers that exchange uptime samples and
// aggregates alongside rating data. How Stats fields are computed from a
// sequence of Checks is the producer's concern and is not defined here.
package uptime

import "time"

// Status classifies one uptime sample.
type Status string

const (
	StatusUp   Status = "up"
	StatusSlow Status = "slow"
	StatusDown Status = "down"
)

// Check is a single uptime sample.
type Check struct {
	Timestamp      time.Time `json:"timestamp"`
	Status         Status    `json:"status"`
	ResponseTimeMS int       `json:"response_time_ms"`
}

// Stats is an aggregate over a sequence of checks.
type Stats struct {
	TotalChecks           int       `json:"total_checks"`
	Uptime                float64   `json:"uptime"`
	AverageResponseTimeMS float64   `json:"average_response_time_ms"`
	LastCheck             time.Time `json:"last_check"`
}
