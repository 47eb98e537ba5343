package session

import "fmt"

// ProtocolError is the §7 "Protocol" error kind: a connection violated an
// invariant the wire protocol itself doesn't encode (e.g. a required
// event subscriber never ran), as opposed to a malformed byte stream
// (DecodeError) or a stale/invalid credential (an Auth failure). Kind
// distinguishes it from the other named error kinds logged at the call
// site.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string { return fmt.Sprintf("protocol: %s", e.Reason) }

// Kind identifies this as the "Protocol" error kind.
func (e *ProtocolError) Kind() string { return "protocol" }

func newProtocolErr(format string, args ...any) error {
	return &ProtocolError{Reason: fmt.Sprintf(format, args...)}
}
