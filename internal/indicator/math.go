package indicator

import "math"

// nanSeries returns a slice of n NaN values.
func nanSeries(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = math.NaN()
	}

	return values
}

// sma computes a simple moving average with a NaN warm-up prefix of
// period-1 rows. NaN inputs poison the window they fall in.
func sma(values []float64, period int) []float64 {
	out := nanSeries(len(values))
	if period <= 0 || len(values) < period {
		return out
	}

	for i := period - 1; i < len(values); i++ {
		sum := 0.0
		for j := i - period + 1; j <= i; j++ {
			sum += values[j]
		}

		out[i] = sum / float64(period)
	}

	return out
}

// ema computes an exponential moving average seeded with the simple average
// of the first period values, skipping any leading NaN prefix in the input.
func ema(values []float64, period int) []float64 {
	out := nanSeries(len(values))
	if period <= 0 {
		return out
	}

	// Skip the leading NaN prefix (e.g. when chaining EMA over MACD).
	start := 0
	for start < len(values) && math.IsNaN(values[start]) {
		start++
	}

	if len(values)-start < period {
		return out
	}

	seed := 0.0
	for i := start; i < start+period; i++ {
		seed += values[i]
	}

	prev := seed / float64(period)
	out[start+period-1] = prev

	multiplier := 2.0 / float64(period+1)
	for i := start + period; i < len(values); i++ {
		prev = (values[i]-prev)*multiplier + prev
		out[i] = prev
	}

	return out
}

// stddev computes the rolling population standard deviation around the
// supplied means, aligned with sma(values, period).
func stddev(values []float64, means []float64, period int) []float64 {
	out := nanSeries(len(values))
	if period <= 0 || len(values) < period {
		return out
	}

	for i := period - 1; i < len(values); i++ {
		if math.IsNaN(means[i]) {
			continue
		}

		sum := 0.0
		for j := i - period + 1; j <= i; j++ {
			d := values[j] - means[i]
			sum += d * d
		}

		out[i] = math.Sqrt(sum / float64(period))
	}

	return out
}
