package util

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// Checksum returns the hex SHA256 digest of data.
func Checksum(data []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(data))
}

// ParseByteSize parses sizes such as "10MiB" or "512 KB".
func ParseByteSize(size string) (int64, error) {
	n, err := humanize.ParseBytes(strings.TrimSpace(size))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid byte size %q", size)
	}

	return int64(n), nil
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
