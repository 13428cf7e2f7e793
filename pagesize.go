package sketch

import (
	"fmt"
	"sort"

	"golang.org/x/text/cases"
)

// PixelsPerMM converts millimeters to CSS pixels (96 dpi).
const PixelsPerMM = 96.0 / 25.4

// PageSize is a page extent in CSS pixels.
type PageSize struct {
	W, H float64
}

// DefaultPageSize returns the 400x400 px page assumed when a document has no
// page size.
func DefaultPageSize() PageSize {
	return PageSize{W: 400, H: 400}
}

// PageSizeMM creates a page size from millimeters.
func PageSizeMM(w, h float64) PageSize {
	return PageSize{W: w * PixelsPerMM, H: h * PixelsPerMM}
}

// Standard page sizes. The "H" suffix denotes landscape orientation.
var (
	A6      = PageSizeMM(105, 148)
	A5      = PageSizeMM(148, 210)
	A4      = PageSizeMM(210, 297)
	A3      = PageSizeMM(297, 420)
	Letter  = PageSizeMM(215.9, 279.4)
	Legal   = PageSizeMM(215.9, 355.6)
	Tabloid = PageSizeMM(279.4, 431.8)

	A6H      = A6.Landscape()
	A5H      = A5.Landscape()
	A4H      = A4.Landscape()
	A3H      = A3.Landscape()
	LetterH  = Letter.Landscape()
	LegalH   = Legal.Landscape()
	TabloidH = Tabloid.Landscape()
)

var pageSizes = map[string]PageSize{
	"a6": A6, "a5": A5, "a4": A4, "a3": A3,
	"letter": Letter, "legal": Legal, "tabloid": Tabloid,
	"a6h": A6H, "a5h": A5H, "a4h": A4H, "a3h": A3H,
	"letterh": LetterH, "legalh": LegalH, "tabloidh": TabloidH,
}

// PageSizeByName returns a standard page size by its name, such as "A4" or
// "letterH". The lookup is case-insensitive.
func PageSizeByName(name string) (PageSize, bool) {
	ps, ok := pageSizes[cases.Fold().String(name)]
	return ps, ok
}

// PageSizeNames returns the names accepted by PageSizeByName, sorted.
func PageSizeNames() []string {
	names := make([]string, 0, len(pageSizes))
	for name := range pageSizes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Landscape returns the page with its longer side horizontal.
func (ps PageSize) Landscape() PageSize {
	if ps.W < ps.H {
		return PageSize{W: ps.H, H: ps.W}
	}
	return ps
}

// Portrait returns the page with its longer side vertical.
func (ps PageSize) Portrait() PageSize {
	if ps.W > ps.H {
		return PageSize{W: ps.H, H: ps.W}
	}
	return ps
}

// String implements fmt.Stringer.
func (ps PageSize) String() string {
	return fmt.Sprintf("%.1fx%.1fpx", ps.W, ps.H)
}
