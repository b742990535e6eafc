package render

import (
	"github.com/cespare/xxhash/v2"
	"github.com/muesli/termenv"
	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/ui/style"
)

// barColor picks a palette color for a resource by hashing its name.
// The original utility assigned random colors per resource, which made
// re-rendering the same chart produce different output; hashing keeps the
// assignment stable across runs.
func barColor(resource domain.InternedString) termenv.Color {
	idx := xxhash.Sum64String(resource.String()) % uint64(len(style.BarPalette))
	return termenv.RGBColor(string(style.BarPalette[idx]))
}
