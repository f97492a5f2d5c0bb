package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input string
		want  Policy
	}{
		{"FIFO", PolicyFIFO},
		{"fifo", PolicyFIFO},
		{" lru ", PolicyLRU},
		{"Optimal", PolicyOptimal},
		{"opt", PolicyOptimal},
		{"MIN", PolicyOptimal},
		{"lfu", PolicyLFU},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePolicy(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePolicy_Unknown(t *testing.T) {
	for _, name := range []string{"", "clock", "mru", "second-chance"} {
		_, err := ParsePolicy(name)
		assert.Error(t, err, "policy %q", name)
	}
}

func TestAllPolicies_MatchesValidPolicies(t *testing.T) {
	assert.Len(t, ValidPolicies, len(AllPolicies))
	for _, p := range AllPolicies {
		assert.True(t, IsValidPolicy(p), "policy %s", p)
		assert.NotNil(t, NewVictimSelector(p))
	}
}

func TestNewVictimSelector_UnknownPolicy_Panics(t *testing.T) {
	assert.Panics(t, func() { NewVictimSelector("fifo") }, "names are case-sensitive after parsing")
	assert.Panics(t, func() { NewVictimSelector("clock") })
}
