package seq

import (
	"math/rand"
	"strings"
)

// Filter returns the elements of slice for which keep reports true,
// preserving order.
func Filter[T any](slice []T, keep func(T) bool) []T {
	result := make([]T, 0)
	for _, item := range slice {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map applies fn to every element of slice.
func Map[T, U any](slice []T, fn func(T) U) []U {
	result := make([]U, len(slice))
	for i, item := range slice {
		result[i] = fn(item)
	}
	return result
}

// Deduplicate preserves first occurrence order.
func Deduplicate[T comparable](slice []T) []T {
	seen := make(map[T]bool)
	result := make([]T, 0)

	for _, item := range slice {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}

	return result
}

// GroupBy buckets elements by the key function, preserving encounter
// order within each bucket.
func GroupBy[T any, K comparable](slice []T, key func(T) K) map[K][]T {
	result := make(map[K][]T)
	for _, item := range slice {
		k := key(item)
		result[k] = append(result[k], item)
	}
	return result
}

// Chunk splits slice into consecutive pieces of at most size elements.
// A non-positive size yields no chunks.
func Chunk[T any](slice []T, size int) [][]T {
	if size <= 0 {
		return [][]T{}
	}

	result := make([][]T, 0, (len(slice)+size-1)/size)
	for start := 0; start < len(slice); start += size {
		end := start + size
		if end > len(slice) {
			end = len(slice)
		}
		result = append(result, slice[start:end])
	}
	return result
}

// Join renders every element and concatenates the results with sep.
func Join[T any](slice []T, sep string, render func(T) string) string {
	parts := make([]string, len(slice))
	for i, item := range slice {
		parts[i] = render(item)
	}
	return strings.Join(parts, sep)
}

// Shuffle returns a permuted copy of slice drawn from r, leaving the
// input untouched. A seeded source makes the permutation deterministic.
func Shuffle[T any](r *rand.Rand, slice []T) []T {
	result := make([]T, len(slice))
	copy(result, slice)
	r.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}
