package jspp

// MaxDepth bounds the nesting depth (arrays and objects combined) a
// Parser can track. It is a compile-time constant rather than a
// runtime option, mirroring the original C source's JSON_MAX_STACK
// #define: the expectation stack is a fixed-size array with no
// fallback to heap growth, so raising the limit means recompiling
// against a larger constant, not passing a bigger number at runtime.
const MaxDepth = 14

// Parser is the fixed-size, caller-allocated state for an incremental,
// push-style JSON tokenizer. The zero value is ready to use: call
// Start with the first fragment to begin a document.
//
// A Parser holds no owning references. text aliases whatever fragment
// was most recently passed to Start or Continue; the caller must keep
// that fragment's backing array alive for as long as it still needs to
// read token text via Text. A Parser is not safe for concurrent use,
// but independent Parsers (e.g. one per connection) do not interact.
type Parser struct {
	text        []byte
	tokenStart  uint16
	tokenLength uint16

	// lastOutcome is the actual Token most recently returned by Next. It
	// is kept distinct from the raw in-progress scanner state (which can
	// exceed Token's range while a token is mid-scan) and is updated
	// after any end-of-token relabeling (e.g. String -> MemberName), so
	// it is safe to compare against String/MemberName or any *Part
	// sentinel. Next keeps this field in sync at every return point.
	lastOutcome Token

	skipToken Token
	skipLevel uint8

	level uint8
	stack [MaxDepth]state

	err error
}

// NewParser returns a Parser ready for Start. Equivalent to a zero
// Parser{} — provided for symmetry with the rest of the public API and
// so callers don't need to know the zero value is meaningful.
func NewParser() *Parser {
	return &Parser{}
}

// Reset returns p to its initial, pre-Start state so it can be reused
// for a new document without allocating a new Parser. Mirrors the
// reuse pattern of resumable/stateful decoders such as
// rmarsh.Parser.Reset.
func (p *Parser) Reset() {
	*p = Parser{}
}

// Err returns the error, if any, behind the most recent sticky Invalid
// outcome caused by a fragment too large for this Parser's uint16
// offsets to address (see ErrFragmentTooLarge). It is nil in every
// other case, including ordinary syntax errors, which are reported
// solely through the Invalid token per the tokenizer's no-allocation,
// no-error-channel contract.
func (p *Parser) Err() error {
	return p.err
}

func (p *Parser) getState() state  { return p.stack[p.level] }
func (p *Parser) setState(s state) { p.stack[p.level] = s }

// setTokenStart records where the current token's text begins within
// the current fragment. For strings and member names (s == stringBegin)
// the opening quote is excluded, matching spec.md §3's invariant that
// token text for strings/member-names excludes the surrounding quotes.
func (p *Parser) setTokenStart(s state, pos int) {
	if s == stringBegin {
		pos++
	}
	p.tokenStart = uint16(pos)
}

// setTokenEnd records the token kind and computes its text length. For
// the single-byte-terminated tokens (literals and structural
// delimiters) pos is advanced past the terminating byte itself, since
// unlike numbers that byte was consumed as part of the token.
func (p *Parser) setTokenEnd(s state, pos int) {
	switch s {
	case tokenState(Null), tokenState(True), tokenState(False),
		tokenState(ObjectBegin), tokenState(ObjectEnd),
		tokenState(ArrayBegin), tokenState(ArrayEnd):
		pos++
	}
	p.tokenLength = uint16(pos) - p.tokenStart
}

// Start initializes the parser and returns the first token found in
// the initial fragment.
func (p *Parser) Start(fragment []byte) Token {
	if err := checkFragmentLength(len(fragment)); err != nil {
		p.err = err
		p.level = 0
		p.stack[0] = tokenState(Invalid)
		p.lastOutcome = Invalid
		return Invalid
	}
	p.err = nil
	p.text = fragment
	p.tokenStart = 0
	p.tokenLength = 0
	p.lastOutcome = Invalid
	p.skipToken = Invalid
	p.skipLevel = 0
	p.level = 0
	p.stack[0] = expectingJSON

	return p.Next()
}

// Continue feeds the next fragment to a parser previously initialized
// by Start, resuming any token or skip that was in progress when the
// previous fragment ended, and returns the next token.
func (p *Parser) Continue(fragment []byte) Token {
	if err := checkFragmentLength(len(fragment)); err != nil {
		p.err = err
		if p.level < MaxDepth && p.getState() > tokenState(End) {
			p.setState(tokenState(Invalid))
		}
		p.lastOutcome = Invalid
		return Invalid
	}
	p.err = nil
	p.text = fragment
	p.tokenStart = 0
	p.tokenLength = 0
	p.lastOutcome = Invalid

	switch p.skipToken {
	case Continue:
		return p.SkipNext()
	case ArrayEnd, ObjectEnd:
		return p.skipComposite()
	}
	return p.Next()
}

// Text returns the current token's text as a slice of the current
// fragment. The slice is a borrow: it is valid only until the next
// Start or Continue call. For strings and member names it excludes the
// surrounding quotes; escape sequences are not decoded.
func (p *Parser) Text() []byte {
	return p.text[p.tokenStart : p.tokenStart+p.tokenLength]
}

// Next returns the next token found in the current fragment. If the
// fragment is exhausted before a token completes, it returns Continue
// or one of the *Part sentinels; feed the next fragment via Continue to
// resume.
func (p *Parser) Next() Token {
	if p.level >= MaxDepth {
		p.lastOutcome = TooDeep
		return TooDeep
	}

	s := p.getState()
	if s <= tokenState(End) {
		p.lastOutcome = s.token()
		return p.lastOutcome
	}

	pos := int(p.tokenStart) + int(p.tokenLength)
	if p.lastOutcome == String || p.lastOutcome == MemberName {
		// Advance past the closing quote, which was excluded from the
		// token's own text.
		pos++
	}
	if pos >= len(p.text) {
		p.lastOutcome = Continue
		return Continue
	}

	for {
		s = nextScanState(s, p.text[pos])

		switch {
		case isTokenStart(s) || isNestedLevelStart(s):
			p.setTokenStart(s, pos)
			p.level++
			if p.level == MaxDepth {
				p.lastOutcome = TooDeep
				return TooDeep
			}
		case s > reducingParserStates:
			p.setState(s)
		}

		if isFinal(s) {
			break
		}
		pos++
		if pos >= len(p.text) {
			break
		}
	}

	if isFinal(s) {
		tok := s
		if tok == tokenState(ArrayEnd) || tok == tokenState(ObjectEnd) {
			// These never passed through the token-start branch above
			// (they aren't token starts or nesting opens), so their
			// start position hasn't been recorded yet.
			p.setTokenStart(tok, pos)
		}
		p.setTokenEnd(tok, pos)

		if tok == tokenState(Invalid) {
			// Keep Invalid sticky regardless of nesting depth. The
			// original's unconditional pop-and-reduce can unwind a
			// syntax error found inside a composite value back down
			// to the root expectation, which then reduces to End on
			// the very next call instead of staying Invalid.
			p.setState(tok)
			p.lastOutcome = tok.token()
			return p.lastOutcome
		}

		if !isNestedLevelStart(s) {
			p.level--
			s = p.getState()
			if tok == tokenState(String) && isStringAMemberName(s) {
				tok = tokenState(MemberName)
			}
		}
		s = nextParsingState(s)
		p.setState(s)
		p.lastOutcome = tok.token()
		return p.lastOutcome
	}

	// The fragment ended mid-token: persist the scan state so Continue
	// can resume it, and report the right partial sentinel.
	p.setState(s)
	p.setTokenEnd(s, pos)

	switch {
	case isStringState(s):
		if isStringAMemberName(p.stack[p.level-1]) {
			p.lastOutcome = MemberNamePart
		} else {
			p.lastOutcome = StringPart
		}
		return p.lastOutcome
	case isNumberState(s):
		p.lastOutcome = NumberPart
		return p.lastOutcome
	default:
		p.lastOutcome = Continue
		return Continue
	}
}
