package journal

import (
	"strings"

	"github.com/luismoralesarg/micro-log/internal/common"
)

// ValidateRelPath rejects untrusted relative paths before any filesystem
// access: traversal sequences, a leading separator, null bytes, or an empty
// path all fail with common.ErrInvalidPath. Rejection is total, never a
// silent truncation.
func ValidateRelPath(rel string) error {
	if rel == "" {
		return common.ErrInvalidPath
	}
	if strings.ContainsRune(rel, 0) {
		return common.ErrInvalidPath
	}
	if strings.HasPrefix(rel, "/") || strings.HasPrefix(rel, `\`) {
		return common.ErrInvalidPath
	}
	if strings.Contains(rel, "..") {
		return common.ErrInvalidPath
	}
	return nil
}
