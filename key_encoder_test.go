package govt

import "testing"

// TestEncoder_LegacyCtrlC reproduces the worked example: Ctrl+C under plain
// legacy encoding is a single control byte, not an escape sequence.
func TestEncoder_LegacyCtrlC(t *testing.T) {
	enc := NewEncoder(EncoderConfig{})
	ev := KeyEvent{Action: ActionPress, Key: KeyC, Mods: ModCtrl}

	buf := make([]byte, 8)
	n, status := enc.Encode(ev, buf)
	if status != StatusSuccess {
		t.Fatalf("status = %v", status)
	}
	if n != 1 || buf[0] != 0x03 {
		t.Fatalf("got %d bytes %v, want [0x03]", n, buf[:n])
	}
}

// TestEncoder_KittyControlLeftRelease reproduces the worked example: with
// every Kitty enhancement flag enabled, releasing the Left Control key
// itself is reported as its functional codepoint with event-type 3.
func TestEncoder_KittyControlLeftRelease(t *testing.T) {
	enc := NewEncoder(EncoderConfig{
		KittyFlags: KittyDisambiguate | KittyReportEvents | KittyReportAlternates | KittyReportAll | KittyReportAssociated,
	})
	ev := KeyEvent{Action: ActionRelease, Key: KeyControlLeft}

	buf := make([]byte, 32)
	n, status := enc.Encode(ev, buf)
	if status != StatusSuccess {
		t.Fatalf("status = %v", status)
	}
	got := string(buf[:n])
	want := "\x1b[57442;1:3u"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEncoder_LegacyArrowKeys(t *testing.T) {
	enc := NewEncoder(EncoderConfig{})
	buf := make([]byte, 16)

	n, _ := enc.Encode(KeyEvent{Action: ActionPress, Key: KeyArrowUp}, buf)
	if string(buf[:n]) != "\x1b[A" {
		t.Errorf("ArrowUp normal mode = %q, want %q", buf[:n], "\x1b[A")
	}

	enc2 := NewEncoder(EncoderConfig{CursorKeyApplication: true})
	n, _ = enc2.Encode(KeyEvent{Action: ActionPress, Key: KeyArrowUp}, buf)
	if string(buf[:n]) != "\x1bOA" {
		t.Errorf("ArrowUp application mode = %q, want %q", buf[:n], "\x1bOA")
	}
}

func TestEncoder_LegacyArrowWithModifier(t *testing.T) {
	enc := NewEncoder(EncoderConfig{})
	buf := make([]byte, 16)
	n, _ := enc.Encode(KeyEvent{Action: ActionPress, Key: KeyArrowRight, Mods: ModShift | ModCtrl}, buf)
	want := "\x1b[1;6C" // 1 + shift(1) + ctrl(4) = 6
	if string(buf[:n]) != want {
		t.Errorf("got %q, want %q", buf[:n], want)
	}
}

func TestEncoder_LegacyTildeKeys(t *testing.T) {
	enc := NewEncoder(EncoderConfig{})
	buf := make([]byte, 16)
	n, _ := enc.Encode(KeyEvent{Action: ActionPress, Key: KeyDelete}, buf)
	if string(buf[:n]) != "\x1b[3~" {
		t.Errorf("Delete = %q, want %q", buf[:n], "\x1b[3~")
	}
}

func TestEncoder_LegacyFunctionKeys(t *testing.T) {
	enc := NewEncoder(EncoderConfig{})
	buf := make([]byte, 16)

	n, _ := enc.Encode(KeyEvent{Action: ActionPress, Key: KeyF1}, buf)
	if string(buf[:n]) != "\x1bOP" {
		t.Errorf("F1 = %q, want %q", buf[:n], "\x1bOP")
	}

	n, _ = enc.Encode(KeyEvent{Action: ActionPress, Key: KeyF5}, buf)
	if string(buf[:n]) != "\x1b[15~" {
		t.Errorf("F5 = %q, want %q", buf[:n], "\x1b[15~")
	}
}

func TestEncoder_LegacyAltPrefix(t *testing.T) {
	enc := NewEncoder(EncoderConfig{AltEscPrefix: true})
	buf := make([]byte, 16)
	n, _ := enc.Encode(KeyEvent{Action: ActionPress, Key: KeyA, Mods: ModAlt, UTF8: []byte("a")}, buf)
	if string(buf[:n]) != "\x1ba" {
		t.Errorf("Alt+a = %q, want %q", buf[:n], "\x1ba")
	}
}

func TestEncoder_LegacyPassesThroughText(t *testing.T) {
	enc := NewEncoder(EncoderConfig{})
	buf := make([]byte, 16)
	n, _ := enc.Encode(KeyEvent{Action: ActionPress, Key: KeyA, UTF8: []byte("a")}, buf)
	if string(buf[:n]) != "a" {
		t.Errorf("got %q, want %q", buf[:n], "a")
	}
}

func TestEncoder_LegacyReleaseProducesNothing(t *testing.T) {
	enc := NewEncoder(EncoderConfig{})
	buf := make([]byte, 16)
	n, status := enc.Encode(KeyEvent{Action: ActionRelease, Key: KeyA, UTF8: []byte("a")}, buf)
	if n != 0 || status != StatusSuccess {
		t.Errorf("got %d, %v, want 0, Success", n, status)
	}
}

func TestEncoder_ModifyOtherKeys2(t *testing.T) {
	enc := NewEncoder(EncoderConfig{ModifyOtherKeysState2: true})
	buf := make([]byte, 16)
	n, _ := enc.Encode(KeyEvent{Action: ActionPress, Key: KeyA, Mods: ModCtrl | ModShift, UnshiftedCodepoint: 'a'}, buf)
	got := string(buf[:n])
	want := "\x1b[27;6;97~" // 1 + shift(1) + ctrl(4) = 6
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncoder_ModifyOtherKeys2FallsBackWithoutModifiers(t *testing.T) {
	enc := NewEncoder(EncoderConfig{ModifyOtherKeysState2: true})
	buf := make([]byte, 16)
	n, _ := enc.Encode(KeyEvent{Action: ActionPress, Key: KeyA, UTF8: []byte("a")}, buf)
	if string(buf[:n]) != "a" {
		t.Errorf("got %q, want plain passthrough %q", buf[:n], "a")
	}
}

// TestEncoder_KittyPlainTextKeyIsNotForcedThroughCSI verifies that an
// unmodified text key under disambiguate alone keeps using legacy-
// compatible plain text: only report_all forces every key, including
// unmodified text keys, through the CSI u form.
func TestEncoder_KittyPlainTextKeyIsNotForcedThroughCSI(t *testing.T) {
	enc := NewEncoder(EncoderConfig{KittyFlags: KittyDisambiguate})
	buf := make([]byte, 16)
	n, _ := enc.Encode(KeyEvent{Action: ActionPress, Key: KeyA, UTF8: []byte("a")}, buf)
	if string(buf[:n]) != "a" {
		t.Errorf("got %q, want plain text %q", buf[:n], "a")
	}
}

func TestEncoder_KittyReportAllForcesPlainTextKeyThroughCSI(t *testing.T) {
	enc := NewEncoder(EncoderConfig{KittyFlags: KittyReportAll})
	buf := make([]byte, 16)
	n, _ := enc.Encode(KeyEvent{Action: ActionPress, Key: KeyA, UnshiftedCodepoint: 'a', UTF8: []byte("a")}, buf)
	if string(buf[:n]) != "\x1b[97u" {
		t.Errorf("got %q, want %q", buf[:n], "\x1b[97u")
	}
}

func TestEncoder_KittyDisambiguateForcesAmbiguousModifiedKeyThroughCSI(t *testing.T) {
	enc := NewEncoder(EncoderConfig{KittyFlags: KittyDisambiguate})
	buf := make([]byte, 16)
	n, _ := enc.Encode(KeyEvent{Action: ActionPress, Key: KeyA, Mods: ModCtrl, UnshiftedCodepoint: 'a'}, buf)
	want := "\x1b[97;5u" // 1 + ctrl(4) = 5
	if string(buf[:n]) != want {
		t.Errorf("got %q, want %q", buf[:n], want)
	}
}

func TestEncoder_KittyReportAlternatesAppendsShiftedAndBase(t *testing.T) {
	enc := NewEncoder(EncoderConfig{KittyFlags: KittyReportAll | KittyReportAlternates})
	buf := make([]byte, 32)
	n, _ := enc.Encode(KeyEvent{
		Action:             ActionPress,
		Key:                KeyDigit1,
		UnshiftedCodepoint: '1',
		ShiftedCodepoint:   '!',
	}, buf)
	want := "\x1b[49:33:49u"
	if string(buf[:n]) != want {
		t.Errorf("got %q, want %q", buf[:n], want)
	}
}

func TestEncoder_KittyModifierKeyHiddenWithoutReportAll(t *testing.T) {
	enc := NewEncoder(EncoderConfig{KittyFlags: KittyDisambiguate})
	buf := make([]byte, 16)
	n, status := enc.Encode(KeyEvent{Action: ActionPress, Key: KeyControlLeft}, buf)
	if n != 0 || status != StatusSuccess {
		t.Errorf("got %d, %v, want 0, Success", n, status)
	}
}

func TestEncoder_KittyBufferTooSmall(t *testing.T) {
	enc := NewEncoder(EncoderConfig{
		KittyFlags: KittyDisambiguate | KittyReportEvents | KittyReportAll,
	})
	buf := make([]byte, 2)
	_, status := enc.Encode(KeyEvent{Action: ActionRelease, Key: KeyControlLeft}, buf)
	if status != StatusOutOfMemory {
		t.Errorf("status = %v, want StatusOutOfMemory", status)
	}
}

// TestEncoder_MacOSOptionAsAltSuppressesComposedText verifies that when the
// configured side matches, Option-produced composed text is discarded and
// Alt is treated as active (unconsumed) rather than already-applied.
func TestEncoder_MacOSOptionAsAltSuppressesComposedText(t *testing.T) {
	enc := NewEncoder(EncoderConfig{MacOSOptionAsAlt: MacOSOptionAsAltTrue, AltEscPrefix: true})
	buf := make([]byte, 16)
	ev := KeyEvent{
		Action:             ActionPress,
		Key:                KeyA,
		Mods:               ModAlt,
		ConsumedMods:       ModAlt,
		UTF8:               []byte("å"), // platform-composed text from Option+a
		UnshiftedCodepoint: 'a',
	}
	n, _ := enc.Encode(ev, buf)
	if string(buf[:n]) != "\x1ba" {
		t.Errorf("got %q, want %q", buf[:n], "\x1ba")
	}
}

// TestEncoder_MacOSOptionAsAltLeftIgnoresRightOption verifies the side
// restriction: configuring Left-only leaves a Right-Option event's composed
// text untouched.
func TestEncoder_MacOSOptionAsAltLeftIgnoresRightOption(t *testing.T) {
	enc := NewEncoder(EncoderConfig{MacOSOptionAsAlt: MacOSOptionAsAltLeft})
	buf := make([]byte, 16)
	ev := KeyEvent{
		Action:       ActionPress,
		Key:          KeyA,
		Mods:         ModAlt | ModAltRight,
		ConsumedMods: ModAlt,
		UTF8:         []byte("å"),
	}
	n, _ := enc.Encode(ev, buf)
	if string(buf[:n]) != "å" {
		t.Errorf("got %q, want composed text %q", buf[:n], "å")
	}
}

func TestEncoder_ComposingEventProducesNothing(t *testing.T) {
	enc := NewEncoder(EncoderConfig{})
	buf := make([]byte, 16)
	n, status := enc.Encode(KeyEvent{Action: ActionPress, Key: KeyA, Composing: true}, buf)
	if n != 0 || status != StatusSuccess {
		t.Errorf("got %d, %v, want 0, Success", n, status)
	}
}
