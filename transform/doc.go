// Package transform provides sanitizers for raw console tokens and helpers
// that apply them to every string field of a struct, such as the option
// labels of a menu config.
package transform
