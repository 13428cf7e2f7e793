package sketch

import "math"

// Dash defines a dash pattern for plotting dashed lines.
// A dash pattern consists of alternating dash and gap lengths.
// For example, [5, 3] creates a pattern of 5 units dash, 3 units gap.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// If the array has an odd number of elements, it is logically duplicated
	// to create an even-length pattern (e.g., [5] becomes [5, 5]).
	Array []float64

	// Offset is the starting offset into the pattern.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
//
// Examples:
//
//	NewDash(5, 3)        // 5 units dash, 3 units gap
//	NewDash(10, 5, 2, 5) // 10 dash, 5 gap, 2 dash, 5 gap
//	NewDash(5)           // equivalent to [5, 5]
//
// Returns nil if no lengths are provided or none is positive.
// Negative lengths are taken as absolute values.
func NewDash(lengths ...float64) *Dash {
	positive := false
	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		if math.IsNaN(l) || math.IsInf(l, 0) {
			return nil
		}
		normalized[i] = math.Abs(l)
		positive = positive || normalized[i] > 0
	}
	if !positive {
		return nil
	}
	return &Dash{Array: normalized}
}

// PatternLength returns the total length of one complete pattern cycle.
func (d *Dash) PatternLength() float64 {
	var total float64
	for _, l := range d.effectiveArray() {
		total += l
	}
	return total
}

// NormalizedOffset returns the offset reduced to one pattern cycle.
func (d *Dash) NormalizedOffset() float64 {
	patternLen := d.PatternLength()
	if patternLen <= 0 {
		return 0
	}
	offset := math.Mod(d.Offset, patternLen)
	if offset < 0 {
		offset += patternLen
	}
	return offset
}

// effectiveArray returns the array with odd-length arrays duplicated.
func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}

// Apply cuts pl into open polylines following the pattern, measured along
// the polyline. Closed polylines include their closing edge. A nil or
// all-gap Dash returns pl unchanged.
func (d *Dash) Apply(pl Polyline) []Polyline {
	pattern := d.effectiveArray()
	if d.PatternLength() <= 0 {
		return []Polyline{pl.Clone()}
	}

	// find the pattern element at the offset
	i, rem := 0, d.NormalizedOffset()
	for rem >= pattern[i] {
		rem -= pattern[i]
		i = (i + 1) % len(pattern)
	}
	rem = pattern[i] - rem

	var (
		result []Polyline
		dash   []Point
	)
	flush := func() {
		if len(dash) > 1 {
			result = append(result, Polyline{Points: dash})
		}
		dash = nil
	}

	points := pl.Points
	if pl.Closed && len(points) > 2 {
		points = append(points[:len(points):len(points)], points[0])
	}
	for k := 1; k < len(points); k++ {
		a, b := points[k-1], points[k]
		length := a.Distance(b)
		if !(length > 0) || math.IsInf(length, 0) {
			continue
		}
		for pos := 0.0; pos < length; {
			step := math.Min(rem, length-pos)
			if i%2 == 0 {
				if len(dash) == 0 {
					dash = append(dash, a.Lerp(b, pos/length))
				}
				dash = append(dash, a.Lerp(b, (pos+step)/length))
			}
			pos += step
			rem -= step
			if rem <= 0 {
				if i%2 == 0 {
					flush()
				}
				i = (i + 1) % len(pattern)
				rem = pattern[i]
			}
		}
	}
	flush()
	return result
}

// Dashed is a Source that flattens Source and cuts the result with Dash.
type Dashed struct {
	Source Source
	Dash   *Dash
}

// Flatten implements Source.
func (d Dashed) Flatten(tolerance float64) []Polyline {
	if d.Source == nil {
		return nil
	}
	var result []Polyline
	for _, pl := range d.Source.Flatten(tolerance) {
		result = append(result, d.Dash.Apply(pl)...)
	}
	return result
}
