package jspp_test

import (
	"fmt"

	"github.com/mcvoid/jspp"
)

// Example_parser shows the core loop: feed a fragment, drain tokens
// with Next until Continue/End, and use Text to read the current
// token's content.
func Example_parser() {
	p := jspp.NewParser()

	tok := p.Start([]byte(`{"id":7,"tags":["a","b"]}`))
	for tok != jspp.Continue && !tok.IsTerminal() {
		switch tok {
		case jspp.MemberName, jspp.Integer, jspp.String:
			fmt.Printf("%s %q\n", tok, p.Text())
		default:
			fmt.Println(tok)
		}
		tok = p.Next()
	}
	fmt.Println(tok)

	// Output:
	// OBJECT_BEGIN
	// MEMBER_NAME "id"
	// INTEGER "7"
	// MEMBER_NAME "tags"
	// ARRAY_BEGIN
	// STRING "a"
	// STRING "b"
	// ARRAY_END
	// OBJECT_END
	// END
}

// Example_fragmented shows resuming a parse across fragments that
// split a token in the middle.
func Example_fragmented() {
	p := jspp.NewParser()

	tok := p.Start([]byte(`["long str`))
	fmt.Println(tok)
	tok = p.Next()
	fmt.Println(tok, string(p.Text()))

	tok = p.Continue([]byte(`ing"]`))
	fmt.Println(tok, string(p.Text()))

	fmt.Println(p.Next())
	fmt.Println(p.Next())

	// Output:
	// ARRAY_BEGIN
	// STRING_PART long str
	// STRING ing
	// ARRAY_END
	// END
}
