package input

import (
	"fmt"
	"strings"
)

// String works as string input and returns its value.
// If input is empty, fallback value is returned.
func String(m, fallback string) string {
	var input string
	fmt.Printf(color+prefix+" %s: "+reset, m)
	fmt.Scanln(&input)
	input = strings.TrimSpace(input)
	if input == "" {
		return fallback
	}
	return input
}
