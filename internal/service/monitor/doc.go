// Package monitor wires the input source, the debounce engine and the
// configured transition consumers into a single pipeline and drives it
// until cancellation or the first fatal error.
package monitor
