package dataframe

// Mask is a row-aligned boolean predicate result.
type Mask []bool

// And combines masks with logical conjunction. An empty input returns nil:
// the absence of conditions means the absence of signal, never "always true".
func And(masks ...Mask) Mask {
	if len(masks) == 0 {
		return nil
	}

	out := make(Mask, len(masks[0]))
	copy(out, masks[0])

	for _, m := range masks[1:] {
		for i := range out {
			out[i] = out[i] && i < len(m) && m[i]
		}
	}

	return out
}

// Or combines masks with logical disjunction. An empty input returns nil.
func Or(masks ...Mask) Mask {
	if len(masks) == 0 {
		return nil
	}

	out := make(Mask, len(masks[0]))
	copy(out, masks[0])

	for _, m := range masks[1:] {
		for i := range out {
			out[i] = out[i] || (i < len(m) && m[i])
		}
	}

	return out
}

// LessThan returns a mask marking rows where the named column is strictly
// below value. NaN rows never satisfy the predicate.
func (df *DataFrame) LessThan(name string, value float64) (Mask, error) {
	column, err := df.Column(name)
	if err != nil {
		return nil, err
	}

	mask := make(Mask, len(column))
	for i, v := range column {
		mask[i] = v < value
	}

	return mask, nil
}

// GreaterThan returns a mask marking rows where the named column is strictly
// above value. NaN rows never satisfy the predicate.
func (df *DataFrame) GreaterThan(name string, value float64) (Mask, error) {
	column, err := df.Column(name)
	if err != nil {
		return nil, err
	}

	mask := make(Mask, len(column))
	for i, v := range column {
		mask[i] = v > value
	}

	return mask, nil
}

// GreaterThanColumn returns a mask marking rows where column a is strictly
// above column b. Rows where either side is NaN never satisfy the predicate.
func (df *DataFrame) GreaterThanColumn(a, b string) (Mask, error) {
	left, err := df.Column(a)
	if err != nil {
		return nil, err
	}

	right, err := df.Column(b)
	if err != nil {
		return nil, err
	}

	mask := make(Mask, len(left))
	for i := range left {
		mask[i] = left[i] > right[i]
	}

	return mask, nil
}
