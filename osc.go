package govt

import "strconv"

// maxOSCFieldBytes bounds the size of a single accumulated OSC field. A
// real implementation's arena can fail to grow; since this implementation
// uses Go's garbage-collected heap instead of a pluggable allocator, this
// bound is what stands in for an allocation failure — exceeding it latches
// the parser into the poisoned sub-state described in spec.md §4.C.
const maxOSCFieldBytes = 1 << 20

// maxOSCCommandNumber bounds the command-number accumulator; exceeding it
// saturates to InvalidCommand exactly as spec.md §4.C describes for
// overflow.
const maxOSCCommandNumber = 1_000_000

type oscState int

const (
	oscStateNumber oscState = iota // Empty / ReadingCommandNumber
	oscStateInvalid                // InvalidCommand: consume until End, emit Invalid
	oscStateBody                   // accumulating ';'-delimited fields for a dispatched family
)

// OSCParser is a streaming, byte-at-a-time state machine for Operating
// System Command sequences. Feed bytes one at a time (arbitrary split
// points are legal, including mid-UTF-8 payload bytes) and call End once
// the host's outer escape-sequence scanner recognises the terminator.
//
// OSCParser is not safe for concurrent use. A single instance may be
// reused across many sequences via Reset (End already returns it to a
// ready state for the next sequence; Reset additionally clears a latched
// poisoned state).
type OSCParser struct {
	state    oscState
	number   int
	hadDigit bool

	cur      []byte
	fields   []string
	poisoned bool
}

// NewOSCParser returns a parser ready to accept the first byte of a command.
func NewOSCParser() *OSCParser {
	return &OSCParser{}
}

// Feed advances the state machine by one byte. Feed(0x1B) is a no-op: ESC
// is only ever a soft-terminator indicator in this protocol, and the
// actual terminator is resolved by the subsequent End call, not by Feed.
func (p *OSCParser) Feed(b byte) {
	if p.poisoned {
		return
	}

	if b == 0x1b {
		return
	}

	switch p.state {
	case oscStateNumber:
		p.feedNumber(b)
	case oscStateInvalid:
		// Malformed input is never an error: keep consuming silently.
	case oscStateBody:
		p.feedBody(b)
	}
}

func (p *OSCParser) feedNumber(b byte) {
	if b == ';' {
		if !p.hadDigit {
			// A command number is mandatory: ";..." is not command 0.
			p.state = oscStateInvalid
			return
		}
		p.state = oscStateBody
		return
	}
	if b < '0' || b > '9' {
		p.state = oscStateInvalid
		return
	}
	p.hadDigit = true
	p.number = p.number*10 + int(b-'0')
	if p.number > maxOSCCommandNumber {
		p.state = oscStateInvalid
	}
}

func (p *OSCParser) feedBody(b byte) {
	if b == ';' {
		p.fields = append(p.fields, string(p.cur))
		p.cur = p.cur[:0]
		return
	}
	if len(p.cur) >= maxOSCFieldBytes {
		p.poisoned = true
		return
	}
	p.cur = append(p.cur, b)
}

// End finalises the current command using terminator (0x07 BEL or 0x5C
// ST) and returns it. The parser is left ready to accept the first byte
// of a new sequence; see the package doc for the Command lifetime
// contract. End never returns an absent value — malformed input yields an
// OSCInvalid command instead.
func (p *OSCParser) End(terminator byte) Command {
	if p.poisoned || p.state == oscStateInvalid {
		p.resetTransient()
		return Command{Kind: OSCInvalid, Terminator: terminator}
	}

	if p.state == oscStateNumber && !p.hadDigit {
		// Never saw a digit: either no bytes were fed at all, or the
		// sequence ended mid-number with nothing in it. A command number
		// is mandatory, so this is not command 0.
		p.resetTransient()
		return Command{Kind: OSCInvalid, Terminator: terminator}
	}

	if p.state == oscStateBody {
		p.fields = append(p.fields, string(p.cur))
	}

	cmd := buildCommand(p.number, p.fields, terminator)

	p.resetTransient()
	return cmd
}

// Reset returns the parser to its initial state, clearing a latched
// poisoned sub-state. Commands already returned by End are unaffected.
func (p *OSCParser) Reset() {
	p.resetTransient()
	p.poisoned = false
}

func (p *OSCParser) resetTransient() {
	p.state = oscStateNumber
	p.number = 0
	p.hadDigit = false
	p.cur = p.cur[:0]
	p.fields = nil
}

// field returns fields[i], or "" if out of range.
func field(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}

// buildCommand dispatches on the accumulated command number and validates
// the accumulated fields against that command's schema.
func buildCommand(number int, fields []string, terminator byte) Command {
	switch number {
	case 0, 2:
		return Command{Kind: OSCChangeWindowTitle, Terminator: terminator, title: field(fields, 0)}
	case 1:
		return Command{Kind: OSCChangeWindowIcon, Terminator: terminator, title: field(fields, 0)}
	case 4, 104:
		return buildColorOperation(number, fields, terminator)
	case 10, 11, 12:
		return buildDynamicColorOperation(number, fields, terminator)
	case 7:
		return Command{Kind: OSCReportPwd, Terminator: terminator, pwd: field(fields, 0)}
	case 8:
		return buildHyperlink(fields, terminator)
	case 9:
		return buildOSC9(fields, terminator)
	case 22:
		return Command{Kind: OSCMouseShape, Terminator: terminator, mouseShape: field(fields, 0)}
	case 52:
		return buildClipboard(fields, terminator)
	case 133:
		return buildPromptMark(fields, terminator)
	case 777:
		return buildOSC777(fields, terminator)
	case 21:
		return buildKittyColorProtocol(fields, terminator)
	default:
		return Command{Kind: OSCInvalid, Terminator: terminator}
	}
}

// buildColorOperation handles OSC 4 (set palette color) and OSC 104
// (reset palette color(s), or all of them if no index is given).
func buildColorOperation(number int, fields []string, terminator byte) Command {
	if number == 104 {
		if len(fields) == 0 || (len(fields) == 1 && fields[0] == "") {
			return Command{Kind: OSCColorOperation, Terminator: terminator, colorOps: nil}
		}
		ops := make([]ColorOp, 0, len(fields))
		for _, f := range fields {
			idx, err := strconv.Atoi(f)
			if err != nil {
				continue
			}
			ops = append(ops, ColorOp{Target: ColorTargetPalette, Index: idx, Reset: true})
		}
		return Command{Kind: OSCColorOperation, Terminator: terminator, colorOps: ops}
	}

	// OSC 4: index;spec[;index;spec...] pairs.
	if len(fields) == 0 || len(fields)%2 != 0 {
		return Command{Kind: OSCInvalid, Terminator: terminator}
	}
	ops := make([]ColorOp, 0, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		idx, err := strconv.Atoi(fields[i])
		if err != nil {
			return Command{Kind: OSCInvalid, Terminator: terminator}
		}
		spec := fields[i+1]
		ops = append(ops, ColorOp{
			Target: ColorTargetPalette,
			Index:  idx,
			Spec:   spec,
			Query:  spec == "?",
			Reset:  spec == "",
		})
	}
	return Command{Kind: OSCColorOperation, Terminator: terminator, colorOps: ops}
}

// buildDynamicColorOperation handles OSC 10/11/12: the dynamic
// foreground/background/cursor color.
func buildDynamicColorOperation(number int, fields []string, terminator byte) Command {
	target := ColorTargetForeground
	switch number {
	case 11:
		target = ColorTargetBackground
	case 12:
		target = ColorTargetCursor
	}
	spec := field(fields, 0)
	op := ColorOp{Target: target, Spec: spec, Query: spec == "?", Reset: spec == ""}
	return Command{Kind: OSCColorOperation, Terminator: terminator, colorOps: []ColorOp{op}}
}

func buildHyperlink(fields []string, terminator byte) Command {
	params := field(fields, 0)
	uri := field(fields, 1)
	if uri == "" {
		return Command{Kind: OSCHyperlinkEnd, Terminator: terminator}
	}
	return Command{
		Kind:      OSCHyperlinkStart,
		Terminator: terminator,
		hyperlink: HyperlinkData{
			URI:    uri,
			ID:     hyperlinkIDFromParams(params),
			Params: params,
		},
	}
}

func buildClipboard(fields []string, terminator byte) Command {
	kind := field(fields, 0)
	payload := field(fields, 1)
	return Command{
		Kind:       OSCClipboardContents,
		Terminator: terminator,
		clipboard: ClipboardData{
			Selectors: []byte(kind),
			Payload:   payload,
			Query:     payload == "?",
		},
	}
}

func buildPromptMark(fields []string, terminator byte) Command {
	switch field(fields, 0) {
	case "A":
		return Command{Kind: OSCPromptStart, Terminator: terminator}
	case "B":
		return Command{Kind: OSCPromptEnd, Terminator: terminator}
	case "C":
		return Command{Kind: OSCEndOfInput, Terminator: terminator}
	case "D":
		cmd := Command{Kind: OSCEndOfCommand, Terminator: terminator}
		if len(fields) > 1 {
			if n, err := strconv.Atoi(fields[1]); err == nil {
				cmd.exitCode = n
				cmd.hasExitCode = true
			}
		}
		return cmd
	default:
		return Command{Kind: OSCInvalid, Terminator: terminator}
	}
}

// buildOSC9 resolves the documented Open Question: OSC 9 is either a
// ConEmu sub-command (sub-id 1-6 as the first field) or a plain desktop
// notification (anything else, with the whole body as the message).
func buildOSC9(fields []string, terminator byte) Command {
	if len(fields) > 0 {
		if subID, err := strconv.Atoi(fields[0]); err == nil && subID >= 1 && subID <= 6 {
			return buildConEmu(subID, fields[1:], terminator)
		}
	}
	return Command{
		Kind:          OSCShowDesktopNotification,
		Terminator:    terminator,
		notifyMessage: joinFields(fields),
	}
}

func buildConEmu(subID int, rest []string, terminator byte) Command {
	switch subID {
	case 1:
		return Command{Kind: OSCConEmuSleep, Terminator: terminator, conemuSleepMs: atoiOr(field(rest, 0), 100)}
	case 2:
		return Command{
			Kind:             OSCConEmuShowMessageBox,
			Terminator:       terminator,
			conemuBoxMessage: field(rest, 0),
			conemuBoxTitle:   field(rest, 1),
		}
	case 3:
		return Command{Kind: OSCConEmuChangeTabTitle, Terminator: terminator, conemuTabTitle: field(rest, 0)}
	case 4:
		return Command{
			Kind:       OSCConEmuProgressReport,
			Terminator: terminator,
			conemuProgress: ConEmuProgress{
				State:      field(rest, 0),
				Percentage: atoiOr(field(rest, 1), 0),
			},
		}
	case 5:
		return Command{Kind: OSCConEmuWaitInput, Terminator: terminator}
	case 6:
		return Command{Kind: OSCConEmuGuiMacro, Terminator: terminator, conemuMacro: joinFields(rest)}
	default:
		return Command{Kind: OSCInvalid, Terminator: terminator}
	}
}

// buildOSC777 handles the alternate desktop-notification form used by
// some terminals: "777;notify;title;body".
func buildOSC777(fields []string, terminator byte) Command {
	if len(fields) >= 3 && (fields[0] == "notify" || fields[0] == "Notify") {
		return Command{
			Kind:          OSCShowDesktopNotification,
			Terminator:    terminator,
			notifyTitle:   fields[1],
			notifyMessage: fields[2],
		}
	}
	return Command{
		Kind:          OSCShowDesktopNotification,
		Terminator:    terminator,
		notifyMessage: joinFields(fields),
	}
}

func buildKittyColorProtocol(fields []string, terminator byte) Command {
	ops := make([]KittyColorOp, 0, len(fields))
	for _, f := range fields {
		k, v, ok := cutEquals(f)
		if !ok {
			continue
		}
		ops = append(ops, KittyColorOp{Key: k, Value: v, Query: v == "?"})
	}
	return Command{Kind: OSCKittyColorProtocol, Terminator: terminator, kittyColorOps: ops}
}

func cutEquals(s string) (key, value string, ok bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == '=' {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}

func joinFields(fields []string) string {
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return fields[0]
	}
	total := len(fields) - 1
	for _, f := range fields {
		total += len(f)
	}
	buf := make([]byte, 0, total)
	for i, f := range fields {
		if i > 0 {
			buf = append(buf, ';')
		}
		buf = append(buf, f...)
	}
	return string(buf)
}
