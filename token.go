// Package jspp is an incremental, push-style JSON tokenizer for
// fragment-oriented callers: a caller feeds arbitrarily split byte
// windows of a JSON document and receives a stream of grammar-level
// tokens without the parser ever owning, copying, or concatenating the
// document. Token text is exposed as a borrow into the caller's current
// fragment; it is valid only until the next Start/Continue call.
//
// This is a tokenizer, not a decoder: numbers are reported as text
// slices with a subclassification (Integer/Decimal/FloatingPoint)
// rather than converted, and string escapes are recognized but not
// translated. Callers needing a parsed value build it on top of the
// token stream.
package jspp

// Token is the closed set of externally visible outcomes a Parser can
// produce. The numeric ordering is part of the contract: ranges of
// Token values group terminal outcomes, partial-token sentinels, value
// tokens, and structural tokens, and predicates elsewhere in this
// package rely on that ordering.
type Token uint8

const (
	// Invalid means the input violates JSON grammar. Sticky: once
	// returned, every later call on this Parser returns Invalid again
	// until Start is called.
	Invalid Token = iota
	// TooDeep means the expectation stack would reach MaxDepth levels:
	// an opener, or the first byte of a scalar, arrived with
	// MaxDepth-1 levels already in use. Sticky, same as Invalid.
	TooDeep
	// End means the root JSON value has been fully consumed. Sticky;
	// any trailing bytes are ignored.
	End
	// Continue means the current fragment ended outside of any string
	// or number (e.g. mid-whitespace, or mid-literal). Supply
	// the next fragment via Continue.
	Continue

	// MemberNamePart is the prefix of an object member name that was
	// split across a fragment boundary.
	MemberNamePart
	// NumberPart is the prefix of a number that was split across a
	// fragment boundary. Its eventual subclassification (Integer,
	// Decimal, FloatingPoint) is only known once the number completes.
	NumberPart
	// StringPart is the prefix of a string value that was split across
	// a fragment boundary.
	StringPart

	// Null is the literal `null`.
	Null
	// True is the literal `true`.
	True
	// False is the literal `false`.
	False

	// Integer is a number with no decimal point and no exponent.
	Integer
	// Decimal is a number with a decimal point but no exponent.
	Decimal
	// FloatingPoint is a number with an exponent.
	FloatingPoint
	// String is a JSON string value (not an object member name).
	String
	// MemberName is a JSON string used as an object member's name.
	MemberName

	// ObjectBegin is `{`.
	ObjectBegin
	// ObjectEnd is `}`.
	ObjectEnd

	// ArrayBegin is `[`.
	ArrayBegin
	// ArrayEnd is `]`.
	ArrayEnd
)

var tokenNames = [...]string{
	Invalid:        "INVALID",
	TooDeep:        "TOO_DEEP",
	End:            "END",
	Continue:       "CONTINUE",
	MemberNamePart: "MEMBER_NAME_PART",
	NumberPart:     "NUMBER_PART",
	StringPart:     "STRING_PART",
	Null:           "NULL",
	True:           "TRUE",
	False:          "FALSE",
	Integer:        "INTEGER",
	Decimal:        "DECIMAL",
	FloatingPoint:  "FLOATING_POINT",
	String:         "STRING",
	MemberName:     "MEMBER_NAME",
	ObjectBegin:    "OBJECT_BEGIN",
	ObjectEnd:      "OBJECT_END",
	ArrayBegin:     "ARRAY_BEGIN",
	ArrayEnd:       "ARRAY_END",
}

// String returns the token's name, e.g. "STRING" or "OBJECT_BEGIN".
func (t Token) String() string {
	if int(t) < len(tokenNames) {
		if name := tokenNames[t]; name != "" {
			return name
		}
	}
	return "<unknown>"
}

// IsTerminal reports whether t is one of the sticky terminal outcomes
// (Invalid, TooDeep, End) that a Parser keeps returning until Start is
// called again.
func (t Token) IsTerminal() bool {
	return t <= End
}

// IsPartial reports whether t is a *Part sentinel indicating a token
// was split across a fragment boundary.
func (t Token) IsPartial() bool {
	return t >= MemberNamePart && t <= StringPart
}
