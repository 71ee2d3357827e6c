// Package tracef provides a build-time-validated text formatter and leveled
// trace façade for resource-constrained targets: no growable buffers, no
// runtime format parsing on the hot path, and call sites whose cost is the
// minimum necessary character production.
//
// # Design overview
//
//   - Literal templates: every format source is a Literal — an immutable
//     fragment whose length is known where it is used. Prefixes, colour
//     codes, and component tags are composed by pure concatenation before a
//     call executes.
//   - Compiled programs: each distinct literal is parsed once into a
//     specifier table and memoized by content. Specifier kinds, widths, and
//     argument tags are validated against fixed call-site information; a
//     violating call site aborts at its first use instead of producing a
//     runtime error branch.
//   - Exact budgets: a render call computes the worst-case output length
//     from the literal and the bound argument widths, fills one buffer of
//     exactly that size in source order, and hands it to the sink in a
//     single accept.
//   - Streamed dumps: runtime-length byte views bypass the budgeted buffer
//     and stream " XX" hex tokens straight to the sink.
//   - Gated façade: the Log façade resolves its level gate and decorated
//     prefixes at construction. A suppressed call composes nothing, reads no
//     clock, and touches no sink.
//
// # Usage
//
//	logger := tracef.NewWriter(os.Stderr).WithComponent(tracef.Lit("NET"))
//	logger.Info(tracef.Lit("link up after %u ms"), tracef.Uint(elapsed))
//	logger.Warn(tracef.Lit("rx overflow at %X"), tracef.Uint16(addr))
//
// The mini-language is deliberately small: %d signed decimal, %u unsigned
// decimal (both take an optional zero-pad minimum width, as in %04u), %X
// uppercase hex with a 0x prefix, %c character, %s another Literal, %p
// pointer address, %t elapsed milliseconds as seconds.millis, and %b
// TRUE/FALSE. Anything else fails compilation.
//
// Arguments are tagged values constructed at the call site (Uint8, Int32,
// Str, Bool, ...); the tag is matched positionally against the parsed
// specifier table. The error-returning surface is Compile, Program.Check,
// and Program.Budget; the Formatter and Log call sites treat violations as
// programmer errors and panic at first use.
//
// # Integration notes
//
//   - Sink and Clock are injected capabilities; NewWriterSink bridges any
//     io.Writer and NewWallClock counts milliseconds since construction.
//   - The ansi subpackage exposes highlight schemes (ansi.SchemeByName).
//   - LogFromEnv configures level, component, colour, and output from the
//     environment. LogLogger bridges the standard library by returning a
//     *log.Logger that feeds through a Tracer.
package tracef
