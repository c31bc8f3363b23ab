// Package govt implements the core parsing and encoding engines of a
// virtual-terminal support library: the pieces a terminal emulator (or any
// tool that consumes terminal output) needs to translate byte streams into
// structured commands, and keyboard events back into escape sequences.
//
// # Architecture
//
// The package is organized around three independent state machines plus two
// small leaves:
//
//   - [OSCParser]: a streaming byte-at-a-time parser for Operating System
//     Command sequences (window title, clipboard, hyperlinks, shell
//     integration prompt marks, color operations, ConEmu extensions, the
//     Kitty color protocol, and more).
//   - [SGRIterator]: an iterator over pre-separated Select Graphic Rendition
//     parameters, yielding typed style attributes (bold, italic, underline
//     variants, 8/256/direct-color foreground/background/underline).
//   - [Encoder]: converts a [KeyEvent] into outbound escape sequence bytes
//     under legacy xterm, xterm modifyOtherKeys level 2, or the Kitty
//     keyboard protocol.
//   - [PasteIsSafe]: a paste-safety predicate guarding against newline
//     injection and bracketed-paste sentinel smuggling.
//   - [KeyEvent]: the plain carrier struct for one keyboard event.
//
// # OSC parsing
//
//	p := govt.NewOSCParser()
//	for _, b := range []byte("0;hello") {
//	    p.Feed(b)
//	}
//	cmd := p.End(0x07)
//	if cmd.Kind == govt.OSCChangeWindowTitle {
//	    fmt.Println(cmd.Title()) // "hello"
//	}
//
// The returned [Command] owns its string and byte-slice fields: they are
// independent copies made at finalization time, safe to keep past the next
// Feed/End/Reset call on the same parser. This trades the C implementation's
// arena-borrow discipline for ordinary Go garbage-collected ownership, which
// is the simpler contract for a library with no allocator vtable to hand
// callers an arena handle through in the first place.
//
// # SGR parsing
//
//	it := govt.NewSGRIterator()
//	it.SetParams([]uint16{1, 38, 2, 255, 0, 0}, []byte{';', ';', ';', ';', ';'})
//	for {
//	    attr, ok := it.Next()
//	    if !ok {
//	        break
//	    }
//	    // use attr
//	}
//
// # Key encoding
//
//	enc := govt.NewEncoder(govt.EncoderConfig{
//	    KittyFlags: govt.KittyDisambiguate | govt.KittyReportAlternates,
//	})
//	ev := govt.KeyEvent{Action: govt.ActionPress, Key: govt.KeyC, Mods: govt.ModCtrl}
//	buf := make([]byte, 32)
//	n, status := enc.Encode(ev, buf)
//	if status == govt.StatusOutOfMemory {
//	    buf = make([]byte, n)
//	    n, status = enc.Encode(ev, buf)
//	}
//
// # Thread safety
//
// None of the types in this package are safe for concurrent use by
// multiple goroutines without external synchronization. Distinct instances
// are independent and may be used from separate goroutines without
// coordination.
//
// # Scope
//
// This package covers only the OSC/SGR/key-encoding core. It does not
// render, perform I/O, or interpret locale beyond treating payload bytes as
// opaque UTF-8. It does not implement CSI/DCS parsing, a grid/screen model,
// or scrollback — those belong to a full VT pipeline built on top of this
// package.
package govt
