// Package format renders values for display: dates in the en-US long form and
// analysis scores as colour categories for CSS classes or terminal output.
package format
