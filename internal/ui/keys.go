package ui

import (
	"unicode"

	"golang.org/x/mobile/event/key"

	"github.com/example/snipshot/internal/overlay"
)

type keyKind int

const (
	keyNone keyKind = iota
	keyEscape
	keyEnter
	keyBackspace
	keyRune
	keyTool
	keySave
	keyCopy
)

type keyAction struct {
	kind  keyKind
	r     rune
	tool  overlay.Tool
	shift bool
}

var toolKeys = map[rune]overlay.Tool{
	'p': overlay.ToolFreehand,
	'r': overlay.ToolRectangle,
	'o': overlay.ToolCircle,
	'a': overlay.ToolArrow,
	'h': overlay.ToolHighlighter,
	't': overlay.ToolText,
}

// translateKey maps a key press to what it does. While a text box is open
// printable runes are typed instead of selecting tools.
func translateKey(e key.Event, editing bool) keyAction {
	if e.Direction == key.DirRelease {
		return keyAction{}
	}
	switch e.Code {
	case key.CodeEscape:
		return keyAction{kind: keyEscape}
	case key.CodeReturnEnter, key.CodeKeypadEnter:
		return keyAction{kind: keyEnter, shift: e.Modifiers&key.ModShift != 0}
	case key.CodeDeleteBackspace:
		return keyAction{kind: keyBackspace}
	}
	if e.Modifiers&(key.ModControl|key.ModMeta) != 0 {
		switch {
		case e.Code == key.CodeS || unicode.ToLower(e.Rune) == 's':
			return keyAction{kind: keySave}
		case e.Code == key.CodeC || unicode.ToLower(e.Rune) == 'c':
			return keyAction{kind: keyCopy}
		}
		return keyAction{}
	}
	if e.Rune <= 0 || !unicode.IsPrint(e.Rune) {
		return keyAction{}
	}
	if editing {
		return keyAction{kind: keyRune, r: e.Rune}
	}
	if t, ok := toolKeys[unicode.ToLower(e.Rune)]; ok {
		return keyAction{kind: keyTool, tool: t}
	}
	return keyAction{}
}
