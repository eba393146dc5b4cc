package quickpick

import (
	"os"
	"sort"
	"strings"

	"github.com/ruminaider/termpick/internal/profile"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Group separator labels, in presentation order.
const (
	separatorConfigured  = "profiles"
	separatorContributed = "contributed"
	separatorDetected    = "detected"
)

// Builder converts catalog profiles into the ordered pick list.
type Builder struct {
	collator *collate.Collator
}

// NewBuilder creates a builder that sorts profile names with the
// environment's locale collation.
func NewBuilder() *Builder {
	return &Builder{collator: collate.New(localeTag())}
}

// Build produces the pick list: non-empty groups in fixed order configured,
// contributed, detected, each behind a separator row, items within a group
// sorted with the default-named profile first.
func (b *Builder) Build(available []profile.Profile, contributed []profile.Contributed, defaultName string) []Item {
	var configured, detected []profile.Profile
	for _, p := range available {
		if l, ok := p.(profile.Local); ok && l.AutoDetected {
			detected = append(detected, p)
			continue
		}
		configured = append(configured, p)
	}

	var items []Item
	items = b.appendGroup(items, separatorConfigured, localItems(configured), defaultName)
	items = b.appendGroup(items, separatorContributed, contributedItems(contributed), defaultName)
	items = b.appendGroup(items, separatorDetected, localItems(detected), defaultName)
	return items
}

func (b *Builder) appendGroup(items []Item, label string, group []Item, defaultName string) []Item {
	if len(group) == 0 {
		return items
	}
	b.sortGroup(group, defaultName)
	items = append(items, Item{Separator: true, Label: label})
	return append(items, group...)
}

// sortGroup places the default-named item first and orders the rest by
// locale-aware name comparison. The sort is stable, so names that compare
// equal keep their incoming order.
func (b *Builder) sortGroup(group []Item, defaultName string) {
	sort.SliceStable(group, func(i, j int) bool {
		a, c := group[i].ProfileName, group[j].ProfileName
		if c == defaultName {
			return false
		}
		if a == defaultName {
			return true
		}
		return b.collator.CompareString(a, c) < 0
	})
}

// localItems builds rows for configured and detected profiles. Local items
// carry the configure button; legacy command entries render but cannot be
// configured.
func localItems(group []profile.Profile) []Item {
	items := make([]Item, 0, len(group))
	for _, p := range group {
		switch v := p.(type) {
		case profile.Local:
			items = append(items, Item{
				Label:        glyphFor(v.Icon) + " " + v.ProfileName,
				Description:  localDescription(v),
				Profile:      p,
				ProfileName:  v.ProfileName,
				CanConfigure: true,
			})
		case profile.LegacyCommand:
			items = append(items, Item{
				Label:       glyphFor("") + " " + v.ProfileName,
				Description: v.Command,
				Profile:     p,
				ProfileName: v.ProfileName,
			})
		}
	}
	return items
}

func contributedItems(group []profile.Contributed) []Item {
	items := make([]Item, 0, len(group))
	for _, p := range group {
		items = append(items, Item{
			Label:       glyphFor(p.Icon) + " " + p.Title,
			Description: p.ExtensionID,
			Profile:     p,
			ProfileName: p.Title,
		})
	}
	return items
}

// localDescription renders "path" or "path args" for a local profile.
func localDescription(p profile.Local) string {
	if p.Args.IsZero() {
		return p.Path
	}
	return p.Path + " " + p.Args.String()
}

// localeTag derives the collation locale from the environment, falling back
// to English for C/POSIX and unparseable values.
func localeTag() language.Tag {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(env)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		if tag, err := language.Parse(strings.ReplaceAll(v, "_", "-")); err == nil {
			return tag
		}
	}
	return language.English
}
