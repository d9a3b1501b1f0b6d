package colors

// package colors contains functions to quickly and easily generate transformblend.Color instances by name (i.e. "White()", "DarkestGray()").

import "github.com/solarlune/transformblend"

// White generates a transformblend.Color instance of the provided name.
func White() transformblend.Color {
	return transformblend.NewColor(1, 1, 1, 1)
}

// DarkestGray generates a transformblend.Color instance of the provided name.
func DarkestGray() transformblend.Color {
	return transformblend.NewColor(0.05, 0.05, 0.05, 1)
}
