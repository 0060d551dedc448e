// Package protocol implements the text wire format spoken by the game's
// remote-control socket.
//
// A request is a single line of the form
//
//	command(arg1,arg2,...,argN)\n
//
// and every request is answered by exactly one reply line. The reply "Fail"
// means the game rejected the command; any other text (including the empty
// string) is the payload, which callers interpret with one of the Parse
// functions in this package.
package protocol

// FailureSentinel is the reply line the game sends when a command fails.
const FailureSentinel = "Fail"

// Separators used by list payloads.
const (
	ListSeparator  = "|"
	FieldSeparator = ","
)

// NoPlayer is the reply to getPlayer when no player is attached.
const NoPlayer = "(none)"
