package model

import "time"

// VersionInfo represents server version information
type VersionInfo struct {
	Version       string `json:"version"`
	APIVersion    string `json:"apiVersion"`
	GoVersion     string `json:"goVersion"`
	GitCommit     string `json:"gitCommit"`
	BuildTime     string `json:"buildTime"`
	FormattedTime string `json:"formattedTime"`
	OS            string `json:"os"`
	Arch          string `json:"arch"`
}

// StatusInfo is the liveness answer of the host
type StatusInfo struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
