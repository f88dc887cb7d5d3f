package migrate_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nvup/nvup/pkg/migrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdinConfirmer_Answers(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"s\n", true},
		{"S\n", true},
		{"  y  \n", true},
		{"n\n", false},
		{"N\n", false},
		{"yes\n", false}, // only a lone letter counts
		{"\n", false},
		{"whatever\n", false},
		{"", false}, // EOF defaults to no
	}

	for _, tc := range cases {
		t.Run(strings.TrimSpace(tc.input)+"_input", func(t *testing.T) {
			var out bytes.Buffer
			c := &migrate.StdinConfirmer{In: strings.NewReader(tc.input), Out: &out}

			got, err := c.Confirm("Back it up?")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Contains(t, out.String(), "Back it up?")
			assert.Contains(t, out.String(), "[y/N]")
		})
	}
}
