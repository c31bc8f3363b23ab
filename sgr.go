package govt

// UnderlineStyle distinguishes the rendering of an AttrUnderline attribute.
type UnderlineStyle int

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

func (u UnderlineStyle) String() string {
	switch u {
	case UnderlineNone:
		return "None"
	case UnderlineSingle:
		return "Single"
	case UnderlineDouble:
		return "Double"
	case UnderlineCurly:
		return "Curly"
	case UnderlineDotted:
		return "Dotted"
	case UnderlineDashed:
		return "Dashed"
	default:
		return "UnderlineStyle(?)"
	}
}

// AttrKind tags the variant carried by an Attribute.
type AttrKind int

const (
	AttrUnset AttrKind = iota
	AttrBold
	AttrFaint
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrInverse
	AttrStrikethrough

	// Positional resets. ECMA-48 assigns each its own code; they are
	// reported as distinct attributes rather than collapsed into AttrUnset
	// so an embedder can undo exactly the style group the sender intended.
	AttrResetIntensity // SGR 22: neither bold nor faint
	AttrResetItalic     // SGR 23
	AttrResetUnderline  // SGR 24
	AttrResetBlink      // SGR 25
	AttrResetInverse    // SGR 27
	AttrResetStrikethrough // SGR 29

	AttrFg8
	AttrFg256
	AttrFgRGB
	AttrFgDefault

	AttrBg8
	AttrBg256
	AttrBgRGB
	AttrBgDefault

	AttrUnderlineColor256
	AttrUnderlineColorRGB
	AttrUnderlineColorDefault

	// AttrUnknown is a sentinel for a recognised-positionally parameter
	// that carries no representable data (e.g. a malformed extended-color
	// introducer, or a parameter outside the dispatch table).
	AttrUnknown
)

func (k AttrKind) String() string {
	switch k {
	case AttrUnset:
		return "Unset"
	case AttrBold:
		return "Bold"
	case AttrFaint:
		return "Faint"
	case AttrItalic:
		return "Italic"
	case AttrUnderline:
		return "Underline"
	case AttrBlink:
		return "Blink"
	case AttrInverse:
		return "Inverse"
	case AttrStrikethrough:
		return "Strikethrough"
	case AttrResetIntensity:
		return "ResetIntensity"
	case AttrResetItalic:
		return "ResetItalic"
	case AttrResetUnderline:
		return "ResetUnderline"
	case AttrResetBlink:
		return "ResetBlink"
	case AttrResetInverse:
		return "ResetInverse"
	case AttrResetStrikethrough:
		return "ResetStrikethrough"
	case AttrFg8:
		return "Fg8"
	case AttrFg256:
		return "Fg256"
	case AttrFgRGB:
		return "FgRGB"
	case AttrFgDefault:
		return "FgDefault"
	case AttrBg8:
		return "Bg8"
	case AttrBg256:
		return "Bg256"
	case AttrBgRGB:
		return "BgRGB"
	case AttrBgDefault:
		return "BgDefault"
	case AttrUnderlineColor256:
		return "UnderlineColor256"
	case AttrUnderlineColorRGB:
		return "UnderlineColorRGB"
	case AttrUnderlineColorDefault:
		return "UnderlineColorDefault"
	case AttrUnknown:
		return "Unknown"
	default:
		return "AttrKind(?)"
	}
}

// Attribute is a single typed style attribute produced by SGRIterator.Next.
// Only the fields relevant to Kind are populated; the rest are zero.
type Attribute struct {
	Kind      AttrKind
	Underline UnderlineStyle // valid when Kind == AttrUnderline
	// ColorIndex is the palette index for AttrFg8/AttrBg8 (0-7) and
	// AttrFg256/AttrBg256/AttrUnderlineColor256 (0-255).
	ColorIndex uint8
	// R, G, B hold a direct color for AttrFgRGB/AttrBgRGB/AttrUnderlineColorRGB.
	R, G, B uint8
}

// SGRIterator yields typed style attributes from a pre-separated sequence
// of SGR numeric parameters, as produced by splitting a CSI "...m" sequence
// on ';' and ':'. It does not allocate and is restartable via SetParams.
type SGRIterator struct {
	params []uint16
	// seps[i] is the separator that followed params[i] in the original
	// sequence (preceding params[i+1]); the separator following the last
	// parameter is never consulted.
	seps []byte
	pos  int
}

// NewSGRIterator returns an iterator with no parameters set.
func NewSGRIterator() *SGRIterator {
	return &SGRIterator{}
}

// SetParams re-seats the parameter sequence and resets the cursor to the
// start. params and seps are held by reference, not copied; the caller must
// not mutate them while Next is still being called.
func (it *SGRIterator) SetParams(params []uint16, seps []byte) {
	it.params = params
	it.seps = seps
	it.pos = 0
}

// sepAfter returns the separator following params[i], defaulting to ';'
// when i is the last parameter or out of range (per spec: the last
// separator is never meaningful, so any placeholder works).
func (it *SGRIterator) sepAfter(i int) byte {
	if i < 0 || i >= len(it.seps) || i >= len(it.params)-1 {
		return ';'
	}
	return it.seps[i]
}

// Next advances the cursor and returns the next attribute, or (Attribute{}, false)
// once the sequence is exhausted. Once exhausted, Next continues to return false.
func (it *SGRIterator) Next() (Attribute, bool) {
	if it.pos >= len(it.params) {
		return Attribute{}, false
	}

	p := it.params[it.pos]
	switch {
	case p == 0:
		it.pos++
		return Attribute{Kind: AttrUnset}, true
	case p == 1:
		it.pos++
		return Attribute{Kind: AttrBold}, true
	case p == 2:
		it.pos++
		return Attribute{Kind: AttrFaint}, true
	case p == 3:
		it.pos++
		return Attribute{Kind: AttrItalic}, true
	case p == 4:
		return it.nextUnderline(), true
	case p == 5:
		it.pos++
		return Attribute{Kind: AttrBlink}, true
	case p == 7:
		it.pos++
		return Attribute{Kind: AttrInverse}, true
	case p == 9:
		it.pos++
		return Attribute{Kind: AttrStrikethrough}, true
	case p == 22:
		it.pos++
		return Attribute{Kind: AttrResetIntensity}, true
	case p == 23:
		it.pos++
		return Attribute{Kind: AttrResetItalic}, true
	case p == 24:
		it.pos++
		return Attribute{Kind: AttrResetUnderline}, true
	case p == 25:
		it.pos++
		return Attribute{Kind: AttrResetBlink}, true
	case p == 27:
		it.pos++
		return Attribute{Kind: AttrResetInverse}, true
	case p == 29:
		it.pos++
		return Attribute{Kind: AttrResetStrikethrough}, true
	case p >= 30 && p <= 37:
		it.pos++
		return Attribute{Kind: AttrFg8, ColorIndex: uint8(p - 30)}, true
	case p == 38:
		return it.nextExtendedColor(AttrFg256, AttrFgRGB), true
	case p == 39:
		it.pos++
		return Attribute{Kind: AttrFgDefault}, true
	case p >= 40 && p <= 47:
		it.pos++
		return Attribute{Kind: AttrBg8, ColorIndex: uint8(p - 40)}, true
	case p == 48:
		return it.nextExtendedColor(AttrBg256, AttrBgRGB), true
	case p == 49:
		it.pos++
		return Attribute{Kind: AttrBgDefault}, true
	case p == 58:
		return it.nextExtendedColor(AttrUnderlineColor256, AttrUnderlineColorRGB), true
	case p == 59:
		it.pos++
		return Attribute{Kind: AttrUnderlineColorDefault}, true
	default:
		it.pos++
		return Attribute{Kind: AttrUnknown}, true
	}
}

// nextUnderline handles parameter 4, consuming it.pos and, when the
// following separator is ':', one colon sub-parameter selecting the style.
func (it *SGRIterator) nextUnderline() Attribute {
	sep := it.sepAfter(it.pos)
	it.pos++
	if sep != ':' {
		return Attribute{Kind: AttrUnderline, Underline: UnderlineSingle}
	}
	if it.pos >= len(it.params) {
		return Attribute{Kind: AttrUnderline, Underline: UnderlineNone}
	}
	sub := it.params[it.pos]
	it.pos++
	return Attribute{Kind: AttrUnderline, Underline: underlineStyleFromSub(sub)}
}

func underlineStyleFromSub(sub uint16) UnderlineStyle {
	switch sub {
	case 0:
		return UnderlineNone
	case 1:
		return UnderlineSingle
	case 2:
		return UnderlineDouble
	case 3:
		return UnderlineCurly
	case 4:
		return UnderlineDotted
	case 5:
		return UnderlineDashed
	default:
		return UnderlineNone
	}
}

// nextExtendedColor handles the 38/48/58 introducers shared by fg, bg, and
// underline color. it.pos is at the introducer on entry. indexKind/rgbKind
// select which Attribute kind to emit for the 256-color and direct-color
// forms respectively.
func (it *SGRIterator) nextExtendedColor(indexKind, rgbKind AttrKind) Attribute {
	it.pos++ // consume the 38/48/58 token itself
	if it.pos >= len(it.params) {
		return Attribute{Kind: AttrUnknown}
	}

	selector := it.params[it.pos]
	it.pos++

	switch selector {
	case 5:
		if it.pos >= len(it.params) {
			return Attribute{Kind: AttrUnknown}
		}
		idx := it.params[it.pos]
		it.pos++
		return Attribute{Kind: indexKind, ColorIndex: uint8(idx)}
	case 2:
		remaining := len(it.params) - it.pos
		if remaining < 3 {
			// Short run: consume whatever is left and report Unknown.
			it.pos = len(it.params)
			return Attribute{Kind: AttrUnknown}
		}
		r := uint8(it.params[it.pos])
		g := uint8(it.params[it.pos+1])
		b := uint8(it.params[it.pos+2])
		it.pos += 3
		return Attribute{Kind: rgbKind, R: r, G: g, B: b}
	default:
		return Attribute{Kind: AttrUnknown}
	}
}
