package scheduler

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/engine/calendar"
)

// Fingerprint returns a stable 64-bit digest of a schedule. Two runs over
// the same task list and calendar rules produce the same fingerprint, which
// is how determinism is checked without diffing rendered output.
func Fingerprint(schedule []domain.ScheduledTask) uint64 {
	h := xxhash.New()
	for _, t := range schedule {
		writeField(h, t.Name.String())
		writeField(h, strconv.Itoa(t.Duration))
		writeField(h, t.Start.Format(calendar.DayFormat))
		writeField(h, t.End.Format(calendar.DayFormat))
		for _, r := range t.Resources {
			writeField(h, r.String())
		}
		for _, d := range t.Dependencies {
			writeField(h, d.String())
		}
		_, _ = h.Write([]byte{'\n'})
	}
	return h.Sum64()
}

func writeField(h *xxhash.Digest, s string) {
	_, _ = h.WriteString(s)
	_, _ = h.Write([]byte{0})
}
