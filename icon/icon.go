// Package icon renders the status symbols printed by subcommands.
//
// Icons can be displayed as plain ASCII, emoji or nerd-font glyphs
// depending on the cli.icons setting.
package icon

import (
	"github.com/KRTirtho/NewPipeCLI/key"
	"github.com/spf13/viper"
)

const (
	plain = "plain"
	emoji = "emoji"
	nerd  = "nerd"
)

// AvailableVariants returns every supported icon style.
func AvailableVariants() []string {
	return []string{plain, emoji, nerd}
}

// Icon identifies a symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Service
)

type iconDef struct {
	plain string
	emoji string
	nerd  string
}

var icons = map[Icon]*iconDef{
	Success: {plain: "OK", emoji: "✅", nerd: ""},
	Fail:    {plain: "X", emoji: "❌", nerd: ""},
	Service: {plain: "*", emoji: "📺", nerd: ""},
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.CliIcons) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	default:
		return ""
	}
}

// Get returns the symbol for i in the configured variant.
func Get(i Icon) string {
	return icons[i].Get()
}
