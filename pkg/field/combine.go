package field

// Combiner folds one field value into an accumulated value. Which
// fusion policy is right depends on what overlapping nodes mean
// downstream, so the combinator is a parameter rather than a fixed
// rule.
type Combiner func(acc, v float64) float64

// MaxCombiner keeps the larger value: union-like stacking of
// overlapping structures.
func MaxCombiner(acc, v float64) float64 {
	if v > acc {
		return v
	}
	return acc
}

// MinCombiner keeps the smaller value: intersection-like fusion.
func MinCombiner(acc, v float64) float64 {
	if v < acc {
		return v
	}
	return acc
}

// SumCombiner adds contributions.
func SumCombiner(acc, v float64) float64 {
	return acc + v
}

// OverrideCombiner lets the later field win wherever it is nonzero.
func OverrideCombiner(acc, v float64) float64 {
	if v != 0 {
		return v
	}
	return acc
}

// Combine evaluates the fields at the same coordinates and folds them
// left-to-right with op. No fields yields the uniform zero field.
func Combine(op Combiner, fields ...Func) Func {
	switch len(fields) {
	case 0:
		return Uniform(0)
	case 1:
		return fields[0]
	}
	return func(x, y []float64) []float64 {
		acc := fields[0](x, y)
		for _, f := range fields[1:] {
			vals := f(x, y)
			for i, v := range vals {
				acc[i] = op(acc[i], v)
			}
		}
		return acc
	}
}
