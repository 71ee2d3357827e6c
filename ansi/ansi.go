// Package ansi provides the ANSI escape sequences and highlight schemes used
// by tracef's coloured trace façade. A Scheme is an explicit value passed at
// construction, so callers can swap colouring without touching tracef
// internals or rebuilding with different flags.
package ansi

// Reset is the ANSI escape code that clears all terminal styling; the
// remaining constants expose common ANSI color sequences used by tracef.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Faint         = "\x1b[90m"
	Red           = "\x1b[31m"
	Green         = "\x1b[32m"
	Yellow        = "\x1b[33m"
	Blue          = "\x1b[34m"
	Magenta       = "\x1b[35m"
	Cyan          = "\x1b[36m"
	Gray          = "\x1b[37m"
	BrightRed     = "\x1b[1;31m"
	BrightGreen   = "\x1b[1;32m"
	BrightYellow  = "\x1b[1;33m"
	BrightBlue    = "\x1b[1;34m"
	BrightMagenta = "\x1b[1;35m"
	BrightCyan    = "\x1b[1;36m"
	BrightWhite   = "\x1b[1;37m"
)

// Scheme describes how the façade decorates its coloured levels. Only Fatal,
// Error, and Warn lines carry colour; the open code for each is paired with
// one Close that restores default styling. The zero value is a disabled
// scheme: every code is empty and nothing is emitted.
type Scheme struct {
	Enabled bool
	Fatal   string
	Error   string
	Warn    string
	Close   string
}

// SchemeDefault is the stock highlight: cyan fatal, red error, yellow warn.
var SchemeDefault = Scheme{
	Enabled: true,
	Fatal:   Cyan,
	Error:   Red,
	Warn:    Yellow,
	Close:   Reset,
}

// SchemeBright uses the bold bright variants of the default colours.
var SchemeBright = Scheme{
	Enabled: true,
	Fatal:   BrightCyan,
	Error:   BrightRed,
	Warn:    BrightYellow,
	Close:   Reset,
}

// SchemeMono highlights with intensity only, for terminals that map colour
// badly: bold for fatal and error, faint for warn.
var SchemeMono = Scheme{
	Enabled: true,
	Fatal:   Bold,
	Error:   Bold,
	Warn:    Faint,
	Close:   Reset,
}

// SchemeDisabled emits nothing.
var SchemeDisabled = Scheme{}
