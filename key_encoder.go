package govt

import "strconv"

// KittyFlags is a bitmask of the Kitty keyboard protocol progressive
// enhancement flags (CSI > flags u). A zero value disables the Kitty
// encoding entirely, in which case Encode falls back to modifyOtherKeys
// state 2 (if enabled) or plain xterm legacy encoding.
type KittyFlags uint8

const (
	KittyDisambiguate KittyFlags = 1 << iota
	KittyReportEvents
	KittyReportAlternates
	KittyReportAll
	KittyReportAssociated
)

// Has reports whether all flags in want are set in f.
func (f KittyFlags) Has(want KittyFlags) bool {
	return f&want == want
}

// MacOSOptionAsAlt controls whether, and for which physical Option key,
// a macOS platform's Option modifier is treated as Alt for encoding
// purposes rather than consumed by dead-key/composition input.
type MacOSOptionAsAlt int

const (
	MacOSOptionAsAltFalse MacOSOptionAsAlt = iota
	MacOSOptionAsAltTrue
	MacOSOptionAsAltLeft
	MacOSOptionAsAltRight
)

// EncoderConfig selects which wire protocol [Encoder.Encode] targets and
// how each protocol's optional behaviors are configured. The zero value
// selects plain xterm legacy encoding with normal-mode cursor and keypad
// keys, matching a freshly reset terminal.
type EncoderConfig struct {
	// CursorKeyApplication is DECCKM: true sends SS3 (ESC O) forms for
	// the arrow/Home/End cluster instead of CSI (ESC [) forms.
	CursorKeyApplication bool

	// KeypadKeyApplication records DECKPAM. Encode does not read it: numpad
	// keys are encoded from their UTF8 text (or UnshiftedCodepoint) in both
	// modes, NumpadEnter sends CR, and no SS3 application-mode form is
	// produced for any numpad key.
	KeypadKeyApplication bool

	// IgnoreKeypadWithNumlock records DEC mode 1035. Encode does not read
	// it; since no numpad application-mode form is produced (see
	// KeypadKeyApplication), NumLock does not change numpad output.
	IgnoreKeypadWithNumlock bool

	// AltEscPrefix, when true, prefixes ESC (0x1B) to the legacy encoding
	// of a key pressed with Alt, the traditional xterm "meta sends escape"
	// behavior. The Kitty and modifyOtherKeys paths apply it only to the
	// keys they hand over to the legacy encoding; their own CSI forms carry
	// Alt in the modifier parameter instead.
	AltEscPrefix bool

	// ModifyOtherKeysState2 enables xterm's modifyOtherKeys level 2: text
	// keys pressed with a non-trivial modifier combination are encoded as
	// CSI 27 ; modifiers ; codepoint ~ instead of losing the modifier
	// information. Superseded by KittyFlags when non-zero.
	ModifyOtherKeysState2 bool

	// KittyFlags selects the Kitty keyboard protocol and its progressive
	// enhancements. Non-zero takes priority over ModifyOtherKeysState2
	// and legacy encoding.
	KittyFlags KittyFlags

	// MacOSOptionAsAlt controls Option-as-Alt handling for events whose
	// Mods include Alt, whether or not ConsumedMods marks Alt as already
	// used for composition.
	MacOSOptionAsAlt MacOSOptionAsAlt
}

// Encoder turns [KeyEvent] values into the byte sequence a host PTY reader
// expects, according to an [EncoderConfig]. Encoder holds no event-to-event
// state and is safe to share a single instance across every key event, but
// is not safe for concurrent use via Encode (distinct Encoders for distinct
// goroutines/sessions avoid any shared mutable state, since there is none).
type Encoder struct {
	cfg EncoderConfig
}

// NewEncoder returns an Encoder for cfg.
func NewEncoder(cfg EncoderConfig) *Encoder {
	return &Encoder{cfg: cfg}
}

// Encode writes the byte sequence for ev into buf, returning the number of
// bytes written. It returns (0, StatusSuccess) for events that legitimately
// produce no output (e.g. a bare modifier-key press outside Kitty's
// report-all mode, or an IME composition event). It returns
// StatusOutOfMemory if buf is too small to hold the encoded sequence,
// together with the number of bytes required; the caller should retry with
// a buffer of at least that size, since Encode does not partially write in
// that case.
func (e *Encoder) Encode(ev KeyEvent, buf []byte) (int, Status) {
	if ev.Composing {
		return 0, StatusSuccess
	}

	ev = e.resolveMacOSOption(ev)

	switch {
	case e.cfg.KittyFlags != 0:
		return e.encodeKitty(ev, buf)
	case e.cfg.ModifyOtherKeysState2:
		return e.encodeModifyOtherKeys2(ev, buf)
	default:
		return e.encodeLegacy(ev, buf)
	}
}

// resolveMacOSOption applies the configured macOS Option-as-Alt policy.
// When the event's Alt side matches cfg.MacOSOptionAsAlt, the platform's
// pre-produced composed text is suppressed (UTF8 cleared, Alt dropped
// from ConsumedMods) so the rest of Encode treats Alt as an active,
// unconsumed modifier instead of silently accepting the composed
// character. Otherwise the event passes through unchanged and composed
// text is preferred, which is already what a zero-value EncoderConfig
// does.
func (e *Encoder) resolveMacOSOption(ev KeyEvent) KeyEvent {
	if e.cfg.MacOSOptionAsAlt == MacOSOptionAsAltFalse || !ev.Mods.Has(ModAlt) {
		return ev
	}

	isRightOption := ev.Mods.Has(ModAltRight)
	matches := false
	switch e.cfg.MacOSOptionAsAlt {
	case MacOSOptionAsAltTrue:
		matches = true
	case MacOSOptionAsAltLeft:
		matches = !isRightOption
	case MacOSOptionAsAltRight:
		matches = isRightOption
	}
	if !matches {
		return ev
	}

	ev.ConsumedMods &^= ModAlt
	ev.UTF8 = nil
	return ev
}

func writeBuf(buf []byte, s []byte) (int, Status) {
	if len(s) > len(buf) {
		return len(s), StatusOutOfMemory
	}
	copy(buf, s)
	return len(s), StatusSuccess
}

func writeStr(buf []byte, s string) (int, Status) {
	if len(s) > len(buf) {
		return len(s), StatusOutOfMemory
	}
	copy(buf, s)
	return len(s), StatusSuccess
}

// isModifierKey reports whether key is itself a modifier key (Shift,
// Ctrl, Alt, Super, CapsLock, NumLock), as opposed to a key pressed while
// modifiers are held.
func isModifierKey(key Key) bool {
	switch key {
	case KeyShiftLeft, KeyShiftRight, KeyControlLeft, KeyControlRight,
		KeyAltLeft, KeyAltRight, KeyMetaLeft, KeyMetaRight,
		KeyCapsLock, KeyNumLock:
		return true
	default:
		return false
	}
}

// --- legacy xterm encoding -------------------------------------------------

// legacyCursorFinal maps the arrow/Home/End cluster to their final byte in
// both CSI and SS3 introducer forms.
var legacyCursorFinal = map[Key]byte{
	KeyArrowUp:    'A',
	KeyArrowDown:  'B',
	KeyArrowRight: 'C',
	KeyArrowLeft:  'D',
	KeyHome:       'H',
	KeyEnd:        'F',
}

// legacyTildeKeys maps the control-pad / function-key cluster to the
// numeric parameter of a CSI n ~ sequence.
var legacyTildeKeys = map[Key]int{
	KeyInsert:   2,
	KeyDelete:   3,
	KeyPageUp:   5,
	KeyPageDown: 6,
	KeyF5:       15,
	KeyF6:       17,
	KeyF7:       18,
	KeyF8:       19,
	KeyF9:       20,
	KeyF10:      21,
	KeyF11:      23,
	KeyF12:      24,
}

// legacySS3Final maps F1-F4, which xterm encodes via SS3 when unmodified,
// regardless of cursor-key mode, and via CSI 1 ; mods when modified.
var legacySS3Final = map[Key]byte{
	KeyF1: 'P',
	KeyF2: 'Q',
	KeyF3: 'R',
	KeyF4: 'S',
}

// ctrlBaseChar returns the uppercase ASCII letter or punctuation a key
// represents for the purpose of computing a C0 control code under Ctrl,
// and whether one is defined.
func ctrlBaseChar(key Key) (byte, bool) {
	if key >= KeyA && key <= KeyZ {
		return byte('A' + (key - KeyA)), true
	}
	switch key {
	case KeySpace:
		return ' ', true
	case KeyBracketLeft:
		return '[', true
	case KeyBracketRight:
		return ']', true
	case KeyBackslash:
		return '\\', true
	case KeyMinus:
		return '_', true
	case KeyDigit6:
		return '^', true
	}
	return 0, false
}

// controlCode computes the C0 control byte for a ctrl-base character.
func controlCode(ch byte) byte {
	switch ch {
	case '?':
		return 0x7f
	case ' ':
		return 0x00
	default:
		return (ch & 0x1f)
	}
}

func (e *Encoder) encodeLegacy(ev KeyEvent, buf []byte) (int, Status) {
	if ev.Action == ActionRelease {
		return 0, StatusSuccess
	}

	altPrefix := e.cfg.AltEscPrefix && ev.Mods.Has(ModAlt) && !ev.ConsumedMods.Has(ModAlt)

	if final, ok := legacyCursorFinal[ev.Key]; ok {
		introducer := byte('[')
		if e.cfg.CursorKeyApplication {
			introducer = 'O'
		}
		return e.writeLegacyCursorOrTilde(buf, introducer, final, 0, altPrefix, ev.Mods)
	}
	if final, ok := legacySS3Final[ev.Key]; ok {
		// Unmodified F1-F4 are SS3-introduced, independent of DECCKM.
		return e.writeLegacyCursorOrTilde(buf, 'O', final, 0, altPrefix, ev.Mods)
	}
	if n, ok := legacyTildeKeys[ev.Key]; ok {
		return e.writeLegacyCursorOrTilde(buf, 0, 0, n, altPrefix, ev.Mods)
	}

	switch ev.Key {
	case KeyEnter, KeyNumpadEnter:
		return prefixAndWrite(buf, altPrefix, []byte{'\r'})
	case KeyTab:
		if ev.Mods.Has(ModShift) {
			return prefixAndWrite(buf, altPrefix, []byte("\x1b[Z"))
		}
		return prefixAndWrite(buf, altPrefix, []byte{'\t'})
	case KeyBackspace:
		return prefixAndWrite(buf, altPrefix, []byte{0x7f})
	case KeyEscape:
		return writeBuf(buf, []byte{0x1b})
	}

	if ch, ok := ctrlBaseChar(ev.Key); ok && ev.Mods.Has(ModCtrl) && !ev.ConsumedMods.Has(ModCtrl) {
		return prefixAndWrite(buf, altPrefix, []byte{controlCode(ch)})
	}

	if len(ev.UTF8) > 0 {
		return prefixAndWrite(buf, altPrefix, ev.UTF8)
	}
	if ev.UnshiftedCodepoint != 0 {
		return prefixAndWrite(buf, altPrefix, []byte(string(ev.UnshiftedCodepoint)))
	}

	return 0, StatusSuccess
}

// writeLegacyCursorOrTilde writes either an introducer/final-byte sequence
// (final != 0; introducer is '[' or 'O') or a CSI n ~ sequence (tilde != 0,
// final == 0), applying the xterm modifier parameter whenever mods carries
// Shift, Alt, Ctrl or Super, for cursor and tilde keys alike. A
// non-default modifier always forces the CSI introducer,
// since SS3 has no modifier-carrying form.
func (e *Encoder) writeLegacyCursorOrTilde(buf []byte, introducer, final byte, tilde int, altPrefix bool, mods Mods) (int, Status) {
	mp := xtermModifierParam(mods)

	var out []byte
	switch {
	case final != 0 && mp == 1:
		out = []byte{0x1b, introducer, final}
	case final != 0:
		out = []byte("\x1b[1;" + strconv.Itoa(mp) + string(final))
	case mp == 1:
		out = []byte("\x1b[" + strconv.Itoa(tilde) + "~")
	default:
		out = []byte("\x1b[" + strconv.Itoa(tilde) + ";" + strconv.Itoa(mp) + "~")
	}
	return prefixAndWrite(buf, altPrefix, out)
}

func prefixAndWrite(buf []byte, altPrefix bool, body []byte) (int, Status) {
	need := len(body)
	if altPrefix {
		need++
	}
	if need > len(buf) {
		return need, StatusOutOfMemory
	}
	n := 0
	if altPrefix {
		buf[0] = 0x1b
		n++
	}
	copy(buf[n:], body)
	return need, StatusSuccess
}

// xtermModifierParam computes the classic xterm "1 + bitmask" modifier
// parameter (Shift=1, Alt=2, Ctrl=4, Super treated as Meta=8), returning 1
// (the "no modifiers" sentinel) when mods carries nothing relevant.
func xtermModifierParam(mods Mods) int {
	n := 1
	if mods.Has(ModShift) {
		n += 1
	}
	if mods.Has(ModAlt) {
		n += 2
	}
	if mods.Has(ModCtrl) {
		n += 4
	}
	if mods.Has(ModSuper) {
		n += 8
	}
	return n
}

// --- modifyOtherKeys level 2 -----------------------------------------------

func (e *Encoder) encodeModifyOtherKeys2(ev KeyEvent, buf []byte) (int, Status) {
	if ev.Action == ActionRelease {
		return 0, StatusSuccess
	}

	// Keys with a dedicated legacy encoding (arrows, function keys,
	// Enter/Tab/Backspace/Escape) keep that encoding even under
	// modifyOtherKeys; the protocol only changes how *text* keys with
	// modifiers are reported.
	if _, ok := legacyCursorFinal[ev.Key]; ok {
		return e.encodeLegacy(ev, buf)
	}
	if _, ok := legacySS3Final[ev.Key]; ok {
		return e.encodeLegacy(ev, buf)
	}
	if _, ok := legacyTildeKeys[ev.Key]; ok {
		return e.encodeLegacy(ev, buf)
	}
	switch ev.Key {
	case KeyEnter, KeyNumpadEnter, KeyTab, KeyBackspace, KeyEscape:
		return e.encodeLegacy(ev, buf)
	}

	mp := xtermModifierParam(ev.Mods)
	if mp == 1 {
		return e.encodeLegacy(ev, buf)
	}

	cp := ev.UnshiftedCodepoint
	if cp == 0 {
		if ch, ok := ctrlBaseChar(ev.Key); ok {
			cp = rune(ch)
			if ch >= 'A' && ch <= 'Z' {
				cp = rune(ch | 0x20) // lowercase, matching modifyOtherKeys convention
			}
		}
	}
	if cp == 0 {
		return e.encodeLegacy(ev, buf)
	}

	out := "\x1b[27;" + strconv.Itoa(mp) + ";" + strconv.Itoa(int(cp)) + "~"
	return writeStr(buf, out)
}

// --- Kitty keyboard protocol ------------------------------------------------

// kittyFunctionalCodepoint maps keys to their Kitty private-use-area
// functional key codepoint, per the Kitty keyboard protocol specification.
var kittyFunctionalCodepoint = map[Key]rune{
	KeyEscape:     57344,
	KeyEnter:      57345,
	KeyTab:        57346,
	KeyBackspace:  57347,
	KeyInsert:     57348,
	KeyDelete:     57349,
	KeyArrowLeft:  57350,
	KeyArrowRight: 57351,
	KeyArrowUp:    57352,
	KeyArrowDown:  57353,
	KeyPageUp:     57354,
	KeyPageDown:   57355,
	KeyHome:       57356,
	KeyEnd:        57357,
	KeyCapsLock:   57358,
	KeyScrollLock: 57359,
	KeyNumLock:    57360,
	KeyPrintScreen: 57361,
	KeyPause:      57362,
	KeyContextMenu: 57363,

	KeyF1: 57364, KeyF2: 57365, KeyF3: 57366, KeyF4: 57367, KeyF5: 57368,
	KeyF6: 57369, KeyF7: 57370, KeyF8: 57371, KeyF9: 57372, KeyF10: 57373,
	KeyF11: 57374, KeyF12: 57375, KeyF13: 57376, KeyF14: 57377, KeyF15: 57378,
	KeyF16: 57379, KeyF17: 57380, KeyF18: 57381, KeyF19: 57382, KeyF20: 57383,
	KeyF21: 57384, KeyF22: 57385, KeyF23: 57386, KeyF24: 57387, KeyF25: 57388,

	KeyNumpad0: 57399, KeyNumpad1: 57400, KeyNumpad2: 57401, KeyNumpad3: 57402,
	KeyNumpad4: 57403, KeyNumpad5: 57404, KeyNumpad6: 57405, KeyNumpad7: 57406,
	KeyNumpad8: 57407, KeyNumpad9: 57408,
	KeyNumpadDecimal:  57409,
	KeyNumpadDivide:   57410,
	KeyNumpadMultiply: 57411,
	KeyNumpadSubtract: 57412,
	KeyNumpadAdd:      57413,
	KeyNumpadEnter:    57414,
	KeyNumpadEqual:    57415,

	KeyMediaPlay:          57428,
	KeyMediaPause:         57429,
	KeyMediaPlayPause:     57430,
	KeyMediaStop:          57432,
	KeyMediaTrackNext:     57435,
	KeyMediaTrackPrevious: 57436,
	KeyAudioVolumeDown:    57438,
	KeyAudioVolumeUp:      57439,
	KeyAudioVolumeMute:    57440,

	KeyShiftLeft:    57441,
	KeyControlLeft:  57442,
	KeyAltLeft:      57443,
	KeyMetaLeft:     57444,
	KeyShiftRight:   57447,
	KeyControlRight: 57448,
	KeyAltRight:     57449,
	KeyMetaRight:    57450,
}

// kittyBaseCodepoint returns the codepoint Encode should report as the
// primary key in a CSI u sequence: the key's functional codepoint if it has
// one, else its unshifted text codepoint if known, else the character from
// ctrlBaseChar (lowercased for letters), else 0 (no representable key).
func kittyBaseCodepoint(ev KeyEvent) rune {
	if cp, ok := kittyFunctionalCodepoint[ev.Key]; ok {
		return cp
	}
	if ev.UnshiftedCodepoint != 0 {
		return ev.UnshiftedCodepoint
	}
	if ch, ok := ctrlBaseChar(ev.Key); ok {
		if ch >= 'A' && ch <= 'Z' {
			return rune(ch | 0x20)
		}
		return rune(ch)
	}
	return 0
}

// kittyModifierParam computes the Kitty "1 + bitmask" modifier value:
// Shift=1, Alt=2, Ctrl=4, Super=8, CapsLock=64, NumLock=128.
func kittyModifierParam(mods Mods) int {
	n := 1
	if mods.Has(ModShift) {
		n += 1
	}
	if mods.Has(ModAlt) {
		n += 2
	}
	if mods.Has(ModCtrl) {
		n += 4
	}
	if mods.Has(ModSuper) {
		n += 8
	}
	if mods.Has(ModCapsLock) {
		n += 64
	}
	if mods.Has(ModNumLock) {
		n += 128
	}
	return n
}

func kittyEventType(action Action) int {
	switch action {
	case ActionRepeat:
		return 2
	case ActionRelease:
		return 3
	default:
		return 1
	}
}

// kittyAmbiguous reports whether key, under the given modifiers, is one
// the disambiguate flag exists to disambiguate: a functional key (which
// would otherwise collide with a legacy escape sequence) or any key held
// with a non-trivial modifier combination.
func kittyAmbiguous(key Key, mod int) bool {
	_, isFunctional := kittyFunctionalCodepoint[key]
	return isFunctional || mod != 1
}

func (e *Encoder) encodeKitty(ev KeyEvent, buf []byte) (int, Status) {
	flags := e.cfg.KittyFlags

	if ev.Action == ActionRelease && !flags.Has(KittyReportEvents) {
		return 0, StatusSuccess
	}
	if ev.Action == ActionRepeat && !flags.Has(KittyReportEvents) {
		return 0, StatusSuccess
	}

	mod := kittyModifierParam(ev.Mods)

	// report_all forces every key, including unmodified text keys,
	// through the CSI u form. Without it, only disambiguate's own keys
	// (functional keys, or any key under a non-trivial modifier) do; a
	// plain unmodified text key keeps using legacy-compatible plain text,
	// which is the entire point of the progressive-enhancement design.
	forceCSI := flags.Has(KittyReportAll) || (flags.Has(KittyDisambiguate) && kittyAmbiguous(ev.Key, mod))
	if !forceCSI {
		if isModifierKey(ev.Key) {
			return 0, StatusSuccess
		}
		return e.encodeLegacy(ev, buf)
	}

	if isModifierKey(ev.Key) && !flags.Has(KittyReportAll) {
		return 0, StatusSuccess
	}

	base := kittyBaseCodepoint(ev)
	if base == 0 {
		return 0, StatusSuccess
	}

	codeField := strconv.Itoa(int(base))
	if flags.Has(KittyReportAlternates) && (ev.ShiftedCodepoint != 0 || ev.UnshiftedCodepoint != 0) {
		shifted := ""
		if ev.ShiftedCodepoint != 0 {
			shifted = strconv.Itoa(int(ev.ShiftedCodepoint))
		}
		baseStr := ""
		if ev.UnshiftedCodepoint != 0 {
			baseStr = strconv.Itoa(int(ev.UnshiftedCodepoint))
		}
		codeField += ":" + shifted + ":" + baseStr
	}

	event := kittyEventType(ev.Action)

	needsModifierField := mod != 1 || flags.Has(KittyReportEvents) || (flags.Has(KittyDisambiguate) && event != 1)
	modField := ""
	if needsModifierField {
		modField = ";" + strconv.Itoa(mod)
		if flags.Has(KittyReportEvents) && event != 1 {
			modField += ":" + strconv.Itoa(event)
		}
	}

	textField := ""
	if flags.Has(KittyReportAssociated) && ev.Action != ActionRelease && len(ev.UTF8) > 0 {
		runes := []rune(string(ev.UTF8))
		codes := make([]byte, 0, len(runes)*7)
		for i, r := range runes {
			if i > 0 {
				codes = append(codes, ':')
			}
			codes = append(codes, []byte(strconv.Itoa(int(r)))...)
		}
		if modField == "" {
			modField = ";1"
		}
		textField = ";" + string(codes)
	}

	out := "\x1b[" + codeField + modField + textField + "u"
	return writeStr(buf, out)
}
