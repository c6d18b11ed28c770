package fiscal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// numberTimeLayout renders the Lusaka-local derivation instant inside the
// fiscal number.
const numberTimeLayout = "2006/01/02/15:04:05"

// SequenceFromName extracts the numeric suffix from an ERP document name of
// the form INV/.../<n>. It returns false when the name does not follow that
// pattern, in which case the caller falls back to the monotonic counter.
func SequenceFromName(name string) (int64, bool) {
	if !strings.HasPrefix(name, "INV/") {
		return 0, false
	}
	suffix := name[strings.LastIndex(name, "/")+1:]
	n, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Number builds the gateway-facing document identifier (cisInvcNo) from a
// derivation instant and a sequence value. The result must be persisted on
// the source document after first use: re-deriving on a retry would embed a
// new timestamp and present a different identifier to the gateway.
func Number(at time.Time, sequence int64) string {
	return fmt.Sprintf("INV/%s/%d", at.Format(numberTimeLayout), sequence)
}
