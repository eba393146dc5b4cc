package quickpick

import "strings"

// defaultGlyph marks profiles whose icon resolves to nothing more specific.
const defaultGlyph = "❯"

// iconGlyphs maps known icon ids to the glyph shown before the profile name.
var iconGlyphs = map[string]string{
	"terminal":            "❯",
	"terminal-bash":       "$",
	"terminal-cmd":        ">",
	"terminal-powershell": "➜",
	"terminal-tmux":       "⧉",
	"terminal-ubuntu":     "◆",
}

// glyphFor resolves an icon id to its list glyph. A "$(...)" icon reference
// is unwrapped first; unknown ids fall back to the generic terminal glyph.
func glyphFor(icon string) string {
	if strings.HasPrefix(icon, "$(") && strings.HasSuffix(icon, ")") {
		icon = icon[2 : len(icon)-1]
	}
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return defaultGlyph
}
