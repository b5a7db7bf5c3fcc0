package sparkline

// Number covers the built-in numeric types a series can hold directly.
// Integers are promoted to float64 before quantization; at realistic
// magnitudes the promotion is exact.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Values extracts a float64 slice from an arbitrary series using the given
// accessor. It is the extraction step of the rendering pipeline exposed on
// its own, for callers that want to reuse the extracted values.
func Values[T any](series []T, value func(T) float64) []float64 {
	out := make([]float64, len(series))
	for i, el := range series {
		out[i] = value(el)
	}
	return out
}

func promote[N Number](series []N) []float64 {
	out := make([]float64, len(series))
	for i, v := range series {
		out[i] = float64(v)
	}
	return out
}

func minMax(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// boundaries returns the left edges of levels evenly spaced ranges over
// [lo, hi]. The top edge is deliberately absent: a value above every
// boundary belongs to the highest level. A degenerate range (step <= 0)
// collapses to the single boundary lo.
func boundaries(lo, hi float64, levels int) []float64 {
	step := (hi - lo) / float64(levels-1)
	if step <= 0 {
		return []float64{lo}
	}
	bs := make([]float64, levels-1)
	for i := range bs {
		bs[i] = lo + step*float64(i)
	}
	return bs
}

// level returns the index of the first boundary >= v, or len(bs) when v
// exceeds them all (the implicit top level).
func level(v float64, bs []float64) int {
	for i, b := range bs {
		if b >= v {
			return i
		}
	}
	return len(bs)
}

// rowThresholds returns the ascending y thresholds for a chart. When the
// value range spans at least height units the thresholds are the height
// evenly spaced left edges of the range; a narrower range steps by one unit
// from lo to hi, yielding fewer rows than height. A constant series yields
// the single threshold lo.
func rowThresholds(values []float64, height int, startAtZero bool) []float64 {
	lo, hi := minMax(values)
	if startAtZero && lo >= 0 {
		lo = 0
	}
	span := hi - lo

	switch {
	case span <= 0:
		return []float64{lo}
	case span >= float64(height):
		step := span / float64(height)
		ts := make([]float64, height)
		for i := range ts {
			ts[i] = lo + step*float64(i)
		}
		return ts
	default:
		var ts []float64
		for i := 0; lo+float64(i) <= hi; i++ {
			ts = append(ts, lo+float64(i))
		}
		return ts
	}
}
