package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arden28/studely-client/pkg/sdk"
)

func TestParseScoreArgs(t *testing.T) {
	rows, err := parseScoreArgs([]string{"1=8", "2=9.5:clean proof"})
	require.NoError(t, err)
	assert.Equal(t, []sdk.ScoreRow{
		{CriterionID: 1, Score: 8},
		{CriterionID: 2, Score: 9.5, Comment: "clean proof"},
	}, rows)
}

func TestParseScoreArgsRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"empty", nil},
		{"missing equals", []string{"18"}},
		{"bad criterion", []string{"x=8"}},
		{"bad score", []string{"1=high"}},
		{"negative score", []string{"1=-2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseScoreArgs(tt.args)
			assert.Error(t, err)
		})
	}
}
