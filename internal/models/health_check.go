package models

import "time"

// HealthCheck reports storage reachability together with the upload limits
// the trim endpoints enforce.
type HealthCheck struct {
	Status         string            `json:"status"`
	Timestamp      time.Time         `json:"timestamp"`
	Services       map[string]string `json:"services"`
	Bucket         string            `json:"bucket,omitempty"`
	MaxUploadBytes int64             `json:"max_upload_bytes"`
	AllowedTypes   []string          `json:"allowed_types"`
}
