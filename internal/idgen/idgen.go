// Package idgen produces unique string identifiers for new entities.
package idgen

import (
	"fmt"
	"time"

	"github.com/mlagunovs/watertrack/internal/common"
)

const suffixLen = 9

// NewID returns an identifier composed of the current Unix-millisecond
// timestamp and a random base36 suffix, e.g. "1717171717171-k3j9x0q2b".
// IDs are unique in practice across a process lifetime, not formally
// collision-free.
func NewID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), common.RandBase36String(suffixLen))
}
