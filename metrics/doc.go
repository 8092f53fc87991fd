// Package metrics measures the quality of computed solutions: residuals of
// A·x = b and distances between two solution vectors.
package metrics
