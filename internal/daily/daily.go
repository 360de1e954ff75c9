// apps/go-solver/internal/daily/daily.go
//
// Day selection for the challenge. The answer index is HMAC-SHA256(salt, day)
// reduced modulo the answer count, so every instance sharing a salt agrees.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solvererr"
)

const dateLayout = "2006-01-02"

// DateKey formats t's UTC calendar day as YYYY-MM-DD.
func DateKey(t time.Time) string { return t.UTC().Format(dateLayout) }

// ParseDateKey validates a YYYY-MM-DD key.
func ParseDateKey(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", solvererr.ErrInvalidArgument, s)
	}
	return t, nil
}

// WordIndex maps t's day onto [0, n). n <= 0 yields 0.
func WordIndex(t time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	_, _ = io.WriteString(mac, DateKey(t))
	return int(binary.BigEndian.Uint64(mac.Sum(nil)) % uint64(n))
}
