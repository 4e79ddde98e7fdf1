// Package icon renders status symbols in the variant selected by icons.variant.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares.
package icon

import (
	"github.com/alglib/alglib/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the accepted icons.variant values.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	// Success marks a step that completed.
	Success Icon = iota
	// Fail marks a step whose operation returned an error.
	Fail
	// Invalid marks a line that could not be dispatched.
	Invalid
	// Arrow separates an operation from its result.
	Arrow
	// Empty stands in for a container with no elements.
	Empty
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Success: {emoji: "✅", nerd: "", plain: "ok", kaomoji: "(^_^)", squares: "🟩"},
	Fail:    {emoji: "❌", nerd: "", plain: "!!", kaomoji: "(x_x)", squares: "🟥"},
	Invalid: {emoji: "⚠️", nerd: "", plain: "??", kaomoji: "(o_O)", squares: "🟨"},
	Arrow:   {emoji: "➡️", nerd: "", plain: "->", kaomoji: "=>", squares: "▶"},
	Empty:   {emoji: "🫙", nerd: "", plain: "[]", kaomoji: "( )", squares: "⬜"},
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get renders i in the configured variant. Unknown variants render as an empty string.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.Get()
}
