package jspp_test

import (
	"testing"
	"testing/quick"

	"github.com/mcvoid/jspp"
)

// tokenKinds drives a fresh Parser to completion over doc, split into at
// most two fragments at the given offset (clamped into range), and
// returns the sequence of token kinds with Continue/*Part sentinels
// filtered out.
func tokenKinds(doc []byte, split int) []jspp.Token {
	if split < 0 {
		split = 0
	}
	if split > len(doc) {
		split = len(doc)
	}

	p := jspp.NewParser()
	var out []jspp.Token

	tok := p.Start(doc[:split])
	rest := doc[split:]
	fed := false
	for {
		switch {
		case tok == jspp.Continue || tok.IsPartial():
			if fed || len(rest) == 0 {
				// No more input to give; avoid spinning forever on a
				// document that was truncated mid-token.
				return out
			}
			tok = p.Continue(rest)
			fed = true
		case tok.IsTerminal():
			out = append(out, tok)
			return out
		default:
			out = append(out, tok)
			tok = p.Next()
		}
	}
}

// TestFragmentationInvariant checks that splitting a fixed well-formed
// document at any byte offset never changes the sequence of complete
// token kinds the parser reports, matching spec.md §8's fragmentation
// invariance property.
func TestFragmentationInvariant(t *testing.T) {
	doc := []byte(`{ "id": 42, "name": "A \"quoted\" value", "tags": ["a","bb","ccc"], ` +
		`"nested": { "x": 1.5, "y": -2e10, "ok": true, "missing": null }, "empty": {}, "list": [] }`)

	reference := tokenKinds(doc, 0)
	if len(reference) == 0 {
		t.Fatal("reference parse produced no tokens")
	}

	f := func(raw uint16) bool {
		split := int(raw) % (len(doc) + 1)
		got := tokenKinds(doc, split)
		if len(got) != len(reference) {
			return false
		}
		for i := range got {
			if got[i] != reference[i] {
				return false
			}
		}
		return true
	}

	if err := quick.Check(f, &quick.Config{MaxCount: 500}); err != nil {
		t.Error(err)
	}
}
