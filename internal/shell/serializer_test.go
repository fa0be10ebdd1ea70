package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xv6sh/shell/internal/shell"
)

func TestSerialize_RoundTripsThroughParse(t *testing.T) {
	cases := []string{
		"echo hi",
		"a|b|c",
		"a;b",
		"sort<in>out",
		"sort>>out",
		"(echo a;echo b)>out",
	}
	for _, line := range cases {
		cc, err := parse(t, line)
		require.NoError(t, err)

		serialized := shell.Serialize(*cc)

		cc2, err := parse(t, serialized)
		require.NoError(t, err, "re-parsing %q", serialized)

		assert.Equal(t, shell.Serialize(*cc), shell.Serialize(*cc2), "serialize is idempotent for %q", line)
	}
}

func TestSerialize_SimpleCommand(t *testing.T) {
	cc, err := parse(t, "echo a b")
	require.NoError(t, err)
	assert.Equal(t, "echo a b", shell.Serialize(*cc))
}

func TestSerialize_PipelineJoinedByPipe(t *testing.T) {
	cc, err := parse(t, "a|b")
	require.NoError(t, err)
	assert.Equal(t, "a|b", shell.Serialize(*cc))
}

func TestSerialize_PipelinesJoinedBySemicolon(t *testing.T) {
	cc, err := parse(t, "a;b")
	require.NoError(t, err)
	assert.Equal(t, "a;b", shell.Serialize(*cc))
}

func TestSerialize_Subshell(t *testing.T) {
	cc, err := parse(t, "(a;b)>out")
	require.NoError(t, err)
	assert.Equal(t, "(a;b)>out", shell.Serialize(*cc))
}
