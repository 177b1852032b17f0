// internal/output/output_test.go
package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dnascan/internal/report"
)

func TestEncodePretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodePretty(&buf, map[string]int{"length": 9}))
	assert.Contains(t, buf.String(), "\n  \"length\": 9\n")
}

func TestWriteAnalysisText(t *testing.T) {
	rep, err := report.Analyze("seq1", "ATGAAATAG")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteAnalysisText(&buf, rep))
	out := buf.String()
	assert.Contains(t, out, "# seq1\n")
	assert.Contains(t, out, "length\t9")
	assert.Contains(t, out, "counts\tA=4 T=2 C=0 G=2")
	assert.Contains(t, out, "revcomp\tCTATTTCAT")
	assert.Contains(t, out, "orf1\tframe=0\t0..9\tlen=9\tATGAAATAG\tMK*")
}

func TestWriteComparisonText(t *testing.T) {
	rep := report.Compare("a", "ATG", "b", "ATGAA")

	var buf bytes.Buffer
	require.NoError(t, WriteComparisonText(&buf, rep))
	out := buf.String()
	assert.Contains(t, out, "# a vs b\n")
	assert.Contains(t, out, "mutations\t1 (sub=0 ins=1 del=0)")
	assert.Contains(t, out, "insertion\t3\tlen=2\tAA")
}

func TestWriteComparisonTextSubstitution(t *testing.T) {
	rep := report.Compare("a", "ATGC", "b", "ATTC")

	var buf bytes.Buffer
	require.NoError(t, WriteComparisonText(&buf, rep))
	assert.Contains(t, buf.String(), "substitution\t2\tG>T")
}

func TestAnalysisJSONRoundTrip(t *testing.T) {
	rep, err := report.Analyze("seq1", "ATGAAATAG")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodePretty(&buf, rep))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, true, decoded["success"])
	assert.Contains(t, decoded, "full_translation")
}
