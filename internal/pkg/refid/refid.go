// Package refid generates the human-shareable reference ids attached to
// registrations: REF-<base36 timestamp>-<5 random base36 chars>, uppercase.
package refid

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func New() string {
	return NewAt(time.Now())
}

func NewAt(t time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))

	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = alphabet[rand.Intn(len(alphabet))]
	}

	return "REF-" + ts + "-" + string(suffix)
}
