// Package synthetic provides reproducible next-token datasets of random lengths.
// They are used to measure how much padding length grouping saves compared to
// plain random batching.
package synthetic
