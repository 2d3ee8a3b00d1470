// Package assets embeds the scaffolding templates written by
// "frontdoor init".
package assets

import "embed"

//go:embed templates
var Templates embed.FS

// MustRead returns an embedded template body and panics on a missing
// name. Template names are compile-time constants in command/init.go.
func MustRead(name string) []byte {
	b, err := Templates.ReadFile("templates/" + name)
	if err != nil {
		panic(err)
	}
	return b
}
