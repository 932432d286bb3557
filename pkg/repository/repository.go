package model

import "time"

// PartnerTerminals is one partner directory with its terminal directories
type PartnerTerminals struct {
	Partner   string   `json:"partner" description:"partner directory name"`
	Terminals []string `json:"terminals" description:"terminal directory names, ascending"`
}

// ArchiveEntry describes one archive file in a terminal directory
type ArchiveEntry struct {
	SequenceID int       `json:"sequenceId" description:"1-based position in directory enumeration order"`
	Name       string    `json:"name" description:"on-disk file name"`
	CreatedAt  time.Time `json:"createdAt" description:"file creation time (modification time where unavailable)"`
}

// ArchiveHeadResult is the metadata returned for a HEAD on an archive
type ArchiveHeadResult struct {
	Name    string `json:"name" description:"on-disk file name"`
	Size    int64  `json:"size" description:"file size in bytes"`
	ModTime string `json:"modTime" description:"modification time in RFC3339 format"`
	Mime    string `json:"mime" description:"archive content type"`
}

// RepositoryError is the error body returned by the repository endpoints
type RepositoryError struct {
	Code    string `json:"code" description:"machine readable error code"`
	Message string `json:"message" description:"human readable error message"`
}
