// Package benchmark compares the solvers of package linear on random,
// well-conditioned systems of increasing size. It records measured
// operation counts next to the closed-form estimates of package complexity
// and renders both as charts.
package benchmark
