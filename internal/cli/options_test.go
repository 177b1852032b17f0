// internal/cli/options_test.go
package cli

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func TestParseOK(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--fasta", "in.fa", "--output", "json"})
	require.NoError(t, err)
	assert.Equal(t, "in.fa", o.FastaFile)
	assert.Equal(t, OutputJSON, o.Output)
}

func TestParseDefaults(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--fasta", "-"})
	require.NoError(t, err)
	assert.Equal(t, OutputText, o.Output)
}

func TestParseMissingFasta(t *testing.T) {
	_, err := ParseArgs(newFS(), nil)
	require.Error(t, err)
}

func TestParseBadOutput(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--fasta", "in.fa", "--output", "xml"})
	require.Error(t, err)
}

func TestParseVersionSkipsValidation(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--version"})
	require.NoError(t, err)
	assert.True(t, o.Version)
}
