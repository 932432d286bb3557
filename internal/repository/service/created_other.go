//go:build !linux

package service

import (
	"io/fs"
	"time"
)

// createdTime falls back to the modification time
func createdTime(_ string, info fs.FileInfo) time.Time {
	return info.ModTime()
}
