package govt

// Key identifies a physical key, independent of keyboard layout, using the
// W3C UI Events KeyboardEvent.code naming convention (the same vocabulary
// xterm.js, Kitty, and most modern terminal emulators use to describe
// "which physical key", as opposed to "which character the layout
// produces"). Key is layout-independent: KeyQ is the key labeled Q on a
// QWERTY keyboard and A on an AZERTY keyboard.
type Key int

const (
	KeyUnidentified Key = iota

	// Writing system keys.
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyDigit0
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9
	KeyBackquote
	KeyBackslash
	KeyBracketLeft
	KeyBracketRight
	KeyComma
	KeyEqual
	KeyIntlBackslash
	KeyIntlRo
	KeyIntlYen
	KeyMinus
	KeyPeriod
	KeyQuote
	KeySemicolon
	KeySlash

	// Functional keys.
	KeyAltLeft
	KeyAltRight
	KeyBackspace
	KeyCapsLock
	KeyContextMenu
	KeyControlLeft
	KeyControlRight
	KeyEnter
	KeyMetaLeft
	KeyMetaRight
	KeyShiftLeft
	KeyShiftRight
	KeySpace
	KeyTab
	KeyConvert
	KeyKanaMode
	KeyLang1
	KeyLang2
	KeyLang3
	KeyLang4
	KeyLang5
	KeyNonConvert

	// Control pad section.
	KeyDelete
	KeyEnd
	KeyHelp
	KeyHome
	KeyInsert
	KeyPageDown
	KeyPageUp

	// Arrow pad section.
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp

	// Numpad section.
	KeyNumLock
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadAdd
	KeyNumpadBackspace
	KeyNumpadClear
	KeyNumpadClearEntry
	KeyNumpadComma
	KeyNumpadDecimal
	KeyNumpadDivide
	KeyNumpadEnter
	KeyNumpadEqual
	KeyNumpadHash
	KeyNumpadMemoryAdd
	KeyNumpadMemoryClear
	KeyNumpadMemoryRecall
	KeyNumpadMemoryStore
	KeyNumpadMemorySubtract
	KeyNumpadMultiply
	KeyNumpadParenLeft
	KeyNumpadParenRight
	KeyNumpadStar
	KeyNumpadSubtract

	// Function section, F1-F25.
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyF25

	// Media keys.
	KeyMediaPlay
	KeyMediaPause
	KeyMediaPlayPause
	KeyMediaStop
	KeyMediaTrackNext
	KeyMediaTrackPrevious
	KeyAudioVolumeDown
	KeyAudioVolumeMute
	KeyAudioVolumeUp
	KeyBrowserBack
	KeyBrowserFavorites
	KeyBrowserForward
	KeyBrowserHome
	KeyBrowserRefresh
	KeyBrowserSearch
	KeyBrowserStop
	KeyEject
	KeyLaunchApp1
	KeyLaunchApp2
	KeyLaunchMail
	KeyMediaSelect
	KeyPower
	KeyPrintScreen
	KeyScrollLock
	KeySleep
	KeyWakeUp

	// Legacy / editing keys.
	KeyAgain
	KeyCopy
	KeyCut
	KeyFind
	KeyOpen
	KeyPaste
	KeyProps
	KeySelect
	KeyUndo
	KeyPause
	KeyEscape
	KeyFn
	KeyFnLock

	keyCount
)

var keyNames = [...]string{
	KeyUnidentified: "Unidentified",

	KeyA: "KeyA", KeyB: "KeyB", KeyC: "KeyC", KeyD: "KeyD", KeyE: "KeyE",
	KeyF: "KeyF", KeyG: "KeyG", KeyH: "KeyH", KeyI: "KeyI", KeyJ: "KeyJ",
	KeyK: "KeyK", KeyL: "KeyL", KeyM: "KeyM", KeyN: "KeyN", KeyO: "KeyO",
	KeyP: "KeyP", KeyQ: "KeyQ", KeyR: "KeyR", KeyS: "KeyS", KeyT: "KeyT",
	KeyU: "KeyU", KeyV: "KeyV", KeyW: "KeyW", KeyX: "KeyX", KeyY: "KeyY",
	KeyZ: "KeyZ",
	KeyDigit0: "Digit0", KeyDigit1: "Digit1", KeyDigit2: "Digit2",
	KeyDigit3: "Digit3", KeyDigit4: "Digit4", KeyDigit5: "Digit5",
	KeyDigit6: "Digit6", KeyDigit7: "Digit7", KeyDigit8: "Digit8",
	KeyDigit9: "Digit9",
	KeyBackquote:     "Backquote",
	KeyBackslash:     "Backslash",
	KeyBracketLeft:   "BracketLeft",
	KeyBracketRight:  "BracketRight",
	KeyComma:         "Comma",
	KeyEqual:         "Equal",
	KeyIntlBackslash: "IntlBackslash",
	KeyIntlRo:        "IntlRo",
	KeyIntlYen:       "IntlYen",
	KeyMinus:         "Minus",
	KeyPeriod:        "Period",
	KeyQuote:         "Quote",
	KeySemicolon:     "Semicolon",
	KeySlash:         "Slash",

	KeyAltLeft:      "AltLeft",
	KeyAltRight:     "AltRight",
	KeyBackspace:    "Backspace",
	KeyCapsLock:     "CapsLock",
	KeyContextMenu:  "ContextMenu",
	KeyControlLeft:  "ControlLeft",
	KeyControlRight: "ControlRight",
	KeyEnter:        "Enter",
	KeyMetaLeft:     "MetaLeft",
	KeyMetaRight:    "MetaRight",
	KeyShiftLeft:    "ShiftLeft",
	KeyShiftRight:   "ShiftRight",
	KeySpace:        "Space",
	KeyTab:          "Tab",
	KeyConvert:      "Convert",
	KeyKanaMode:     "KanaMode",
	KeyLang1:        "Lang1",
	KeyLang2:        "Lang2",
	KeyLang3:        "Lang3",
	KeyLang4:        "Lang4",
	KeyLang5:        "Lang5",
	KeyNonConvert:   "NonConvert",

	KeyDelete:   "Delete",
	KeyEnd:      "End",
	KeyHelp:     "Help",
	KeyHome:     "Home",
	KeyInsert:   "Insert",
	KeyPageDown: "PageDown",
	KeyPageUp:   "PageUp",

	KeyArrowDown:  "ArrowDown",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeyArrowUp:    "ArrowUp",

	KeyNumLock:              "NumLock",
	KeyNumpad0:               "Numpad0",
	KeyNumpad1:               "Numpad1",
	KeyNumpad2:               "Numpad2",
	KeyNumpad3:               "Numpad3",
	KeyNumpad4:               "Numpad4",
	KeyNumpad5:               "Numpad5",
	KeyNumpad6:               "Numpad6",
	KeyNumpad7:               "Numpad7",
	KeyNumpad8:               "Numpad8",
	KeyNumpad9:               "Numpad9",
	KeyNumpadAdd:             "NumpadAdd",
	KeyNumpadBackspace:       "NumpadBackspace",
	KeyNumpadClear:           "NumpadClear",
	KeyNumpadClearEntry:      "NumpadClearEntry",
	KeyNumpadComma:           "NumpadComma",
	KeyNumpadDecimal:         "NumpadDecimal",
	KeyNumpadDivide:          "NumpadDivide",
	KeyNumpadEnter:           "NumpadEnter",
	KeyNumpadEqual:           "NumpadEqual",
	KeyNumpadHash:            "NumpadHash",
	KeyNumpadMemoryAdd:       "NumpadMemoryAdd",
	KeyNumpadMemoryClear:     "NumpadMemoryClear",
	KeyNumpadMemoryRecall:    "NumpadMemoryRecall",
	KeyNumpadMemoryStore:     "NumpadMemoryStore",
	KeyNumpadMemorySubtract:  "NumpadMemorySubtract",
	KeyNumpadMultiply:        "NumpadMultiply",
	KeyNumpadParenLeft:       "NumpadParenLeft",
	KeyNumpadParenRight:      "NumpadParenRight",
	KeyNumpadStar:            "NumpadStar",
	KeyNumpadSubtract:        "NumpadSubtract",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5",
	KeyF6: "F6", KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10",
	KeyF11: "F11", KeyF12: "F12", KeyF13: "F13", KeyF14: "F14", KeyF15: "F15",
	KeyF16: "F16", KeyF17: "F17", KeyF18: "F18", KeyF19: "F19", KeyF20: "F20",
	KeyF21: "F21", KeyF22: "F22", KeyF23: "F23", KeyF24: "F24", KeyF25: "F25",

	KeyMediaPlay:          "MediaPlay",
	KeyMediaPause:         "MediaPause",
	KeyMediaPlayPause:     "MediaPlayPause",
	KeyMediaStop:          "MediaStop",
	KeyMediaTrackNext:     "MediaTrackNext",
	KeyMediaTrackPrevious: "MediaTrackPrevious",
	KeyAudioVolumeDown:    "AudioVolumeDown",
	KeyAudioVolumeMute:    "AudioVolumeMute",
	KeyAudioVolumeUp:      "AudioVolumeUp",
	KeyBrowserBack:        "BrowserBack",
	KeyBrowserFavorites:   "BrowserFavorites",
	KeyBrowserForward:     "BrowserForward",
	KeyBrowserHome:        "BrowserHome",
	KeyBrowserRefresh:     "BrowserRefresh",
	KeyBrowserSearch:      "BrowserSearch",
	KeyBrowserStop:        "BrowserStop",
	KeyEject:              "Eject",
	KeyLaunchApp1:         "LaunchApp1",
	KeyLaunchApp2:         "LaunchApp2",
	KeyLaunchMail:         "LaunchMail",
	KeyMediaSelect:        "MediaSelect",
	KeyPower:              "Power",
	KeyPrintScreen:        "PrintScreen",
	KeyScrollLock:         "ScrollLock",
	KeySleep:              "Sleep",
	KeyWakeUp:             "WakeUp",

	KeyAgain:   "Again",
	KeyCopy:    "Copy",
	KeyCut:     "Cut",
	KeyFind:    "Find",
	KeyOpen:    "Open",
	KeyPaste:   "Paste",
	KeyProps:   "Props",
	KeySelect:  "Select",
	KeyUndo:    "Undo",
	KeyPause:   "Pause",
	KeyEscape:  "Escape",
	KeyFn:      "Fn",
	KeyFnLock:  "FnLock",
}

// String implements fmt.Stringer. Unknown values print as "Key(?)".
func (k Key) String() string {
	if k >= 0 && int(k) < len(keyNames) && keyNames[k] != "" {
		return keyNames[k]
	}
	return "Key(?)"
}
