package catalog

import "math"

// CountBy partitions items by key and counts each partition.
// Every listed partition is present in the result, with 0 when no item falls in it;
// keys found in the data but not listed are counted too, so the counts always sum to len(items).
func CountBy[T any](items []T, key Accessor[T], partitions ...string) map[string]int {
	counts := make(map[string]int, len(partitions))
	for _, p := range partitions {
		counts[p] = 0
	}
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}

// CountIf counts the items matching pred.
func CountIf[T any](items []T, pred func(T) bool) int {
	var n int
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// SumInt adds up an integer field.
func SumInt[T any](items []T, value func(T) int) int {
	var sum int
	for _, item := range items {
		sum += value(item)
	}
	return sum
}

// Average is the mean of value over the items where it is present; 0 when it is present on none.
func Average[T any](items []T, value func(T) (float64, bool)) float64 {
	var (
		sum float64
		n   int
	)
	for _, item := range items {
		if v, ok := value(item); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Percent returns round(numerator / denominator * 100), or 0 when denominator is 0.
func Percent(numerator, denominator int) int {
	if denominator == 0 {
		return 0
	}
	return int(math.Round(float64(numerator) / float64(denominator) * 100))
}

// Round1 rounds to one decimal place, the precision averages are reported with.
func Round1(f float64) float64 {
	return math.Round(f*10) / 10
}

// Distinct returns the distinct values of key in order of first occurrence.
func Distinct[T any](items []T, key Accessor[T]) []string {
	seen := make(map[string]struct{}, len(items))
	values := make([]string, 0)
	for _, item := range items {
		v := key(item)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}
