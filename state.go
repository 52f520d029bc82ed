package jspp

// state is the internal scanner/grammar-driver state space. It is a
// superset of Token: the numerically low band of state values mirrors
// Token exactly (a "final" state IS, numerically, the token it
// produces), and the remaining bands hold in-progress scanner states,
// parser expectation states, and "reducing" parser expectation states
// whose satisfaction emits a token and pops the stack.
//
// This mirrors the original C source's single `uint8_t` state space
// (tokens and states share one enum there); Go keeps Token and state as
// distinct named types for type safety, bridged by the two conversion
// helpers below, since Go has no equivalent of C's implicit enum-to-int
// sharing.
type state uint8

// token converts a final state (one for which isFinal is true) to its
// Token. The caller is responsible for only calling this on final
// states; state values have no other meaningful Token mapping.
func (s state) token() Token { return Token(s) }

// tokenState converts a Token to the state value occupying the same
// numeric slot, for pushing a just-emitted nesting opener (ObjectBegin,
// ArrayBegin) onto the expectation stack.
func tokenState(t Token) state { return state(t) }

// Scanner states: a multi-character token is in progress. Mirrors
// jspp.c's `enum _states` band starting at __SCANNER_STATES (0x20).
const (
	scannerStates state = 0x20 + iota
	nullN
	nullU
	nullL
	trueT
	trueR
	trueU
	falseF
	falseA
	falseL
	falseS

	stringBegin
	stringChars
	stringEsc
	stringEndMarker // sentinel: one past the last string-scanning state

	numberBegin
	intDigits
	decDigits
	exp
	expDigits
	numberEndMarker // sentinel: one past the last number-scanning state
)

// Parser states that only "shift" (consume a character and move to
// another parser state) rather than reduce. Mirrors __PARSER_STATES
// (0x40).
const (
	parserStates state = 0x40 + iota
	expectingArrayTail
	expectingObjectTail
	expectingObjectMemberNameValueSeparator
)

// Reducing parser states: satisfying one of these emits a token and
// pops the expectation stack. Mirrors __REDUCING_PARSER_STATES (0x50).
const (
	reducingParserStates state = 0x50 + iota
	expectingJSON
	expectingArrayElementOrEnd
	expectingArrayElement
	expectingObjectMemberNameOrEnd
	expectingObjectMemberName
	expectingObjectMemberValue
)

// isFinal reports whether s represents a token that should be returned
// to the caller, as opposed to an in-progress scan or a waiting parser
// expectation.
func isFinal(s state) bool { return s < scannerStates }

// isTokenStart reports whether s is the scanner state entered on the
// first byte of a multi-character token (the parser must push a new
// stack level to track it).
func isTokenStart(s state) bool {
	switch s {
	case nullN, trueT, falseF, numberBegin, stringBegin:
		return true
	}
	return false
}

// isNestedLevelStart reports whether s is a token that begins a
// composite JSON value and therefore also requires a stack push.
func isNestedLevelStart(s state) bool {
	return s == tokenState(ObjectBegin) || s == tokenState(ArrayBegin)
}

// isStringAMemberName reports whether the expectation one level below
// the current one calls for an object member name, so that a
// completed string there should be relabeled MemberName.
func isStringAMemberName(s state) bool {
	return s == expectingObjectMemberName || s == expectingObjectMemberNameOrEnd
}

// isStringState reports whether s is one of the scanner's string
// in-progress states (used to classify a *Part/sticky outcome).
func isStringState(s state) bool {
	return stringBegin <= s && s < stringEndMarker
}

// isNumberState reports whether s is one of the scanner's number
// in-progress states.
func isNumberState(s state) bool {
	return numberBegin <= s && s < numberEndMarker
}
