package editor

import "strings"

// Modifier is a set of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Has reports whether every key in o is held.
func (m Modifier) Has(o Modifier) bool {
	return o != 0 && m&o == o
}

func (m Modifier) String() string {
	if m == 0 {
		return "none"
	}
	var names []string
	for _, k := range []struct {
		mod  Modifier
		name string
	}{
		{ModShift, "shift"},
		{ModControl, "ctrl"},
		{ModAlt, "alt"},
		{ModSuper, "super"},
	} {
		if m&k.mod != 0 {
			names = append(names, k.name)
		}
	}
	return strings.Join(names, "+")
}

// Button is a set of pressed pointer buttons.
type Button uint8

const (
	ButtonPrimary Button = 1 << iota
	ButtonSecondary
	ButtonTertiary
)

// Has reports whether every button in o is pressed.
func (b Button) Has(o Button) bool {
	return o != 0 && b&o == o
}
