package jspp_test

import (
	"strings"
	"testing"

	"github.com/mcvoid/jspp"
	"github.com/stretchr/testify/require"
)

func TestOversizedFragmentReportsInvalidAndErr(t *testing.T) {
	p := jspp.NewParser()
	huge := make([]byte, 1<<16)

	require.Equal(t, jspp.Invalid, p.Start(huge))
	require.Error(t, p.Err())
	require.True(t, strings.Contains(p.Err().Error(), "65536"))
}

func TestFragmentAtTheLimitIsAccepted(t *testing.T) {
	p := jspp.NewParser()
	fragment := append([]byte{'"'}, append(make([]byte, 1<<16-3), '"')...)
	for i := 1; i < len(fragment)-1; i++ {
		fragment[i] = 'a'
	}

	tok := p.Start(fragment)
	require.NoError(t, p.Err())
	require.True(t, tok == jspp.String || tok == jspp.StringPart)
}
