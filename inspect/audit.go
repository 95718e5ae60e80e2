package inspect

import (
	"fmt"
	"strings"

	"github.com/amp-labs/shadowmap/collectable"
	"github.com/amp-labs/shadowmap/hashing"
	"github.com/amp-labs/shadowmap/shadowmap"
)

// Report describes what restoring a pair of shadow sequences would do. It
// is informational: restoring never fails for these reasons.
type Report struct {
	Keys       int      `json:"keys"`
	Values     int      `json:"values"`
	Restorable int      `json:"restorable"`
	Dropped    int      `json:"dropped"`
	Duplicates []string `json:"duplicates,omitempty"`
}

// Clean reports whether the sequences would restore without losing anything.
func (r Report) Clean() bool {
	return r.Dropped == 0 && len(r.Duplicates) == 0
}

func (r Report) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "keys=%d values=%d restorable=%d dropped=%d", r.Keys, r.Values, r.Restorable, r.Dropped)

	if len(r.Duplicates) > 0 {
		fmt.Fprintf(&b, " duplicates=%s", strings.Join(r.Duplicates, ","))
	}

	return b.String()
}

// Audit inspects shadow sequences as a loader produced them. Duplicates
// lists, once each and in first-seen order, the textual form of every key
// that repeats within the restorable prefix. Keys that cannot be hashed are
// returned as an error, the same one a restore would hit.
func Audit[K collectable.Collectable[K], V any](hash hashing.HashFunc, keys []K, values []V) (Report, error) {
	n := min(len(keys), len(values))

	report := Report{
		Keys:       len(keys),
		Values:     len(values),
		Restorable: n,
		Dropped:    max(len(keys), len(values)) - n,
	}

	seen := shadowmap.New[K, int](shadowmap.WithHashFunc(hash))

	for i := range n {
		count, _, err := seen.Get(keys[i])
		if err != nil {
			return report, err
		}

		if count == 1 {
			report.Duplicates = append(report.Duplicates, fmt.Sprint(keys[i]))
		}

		if err := seen.Set(keys[i], count+1); err != nil {
			return report, err
		}
	}

	return report, nil
}

// AuditMap audits the current shadow sequences of m with m's own hash function.
func AuditMap[K collectable.Collectable[K], V any](m *shadowmap.Map[K, V]) (Report, error) {
	return Audit(m.HashFunction(), m.Keys, m.Values)
}
