// Command grouped_padding compares the padding of length grouped batches against
// randomly ordered batches on a synthetic dataset.
package main
