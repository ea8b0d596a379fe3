package shamir

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testcase1 = `{
    "keys": { "n": 4, "k": 3 },
    "1": { "base": "10", "value": "4" },
    "2": { "base": "2", "value": "111" },
    "3": { "base": "10", "value": "12" },
    "6": { "base": "4", "value": "213" }
}`

// testcase2 ships with a corrupted share at x=8 (its true value on the
// shared polynomial ends in ...08707, the document says ...08713).
const testcase2 = `{
  "keys": { "n": 10, "k": 7 },
  "1": { "base": "6", "value": "13444211440455345511" },
  "2": { "base": "15", "value": "aed7015a346d63" },
  "3": { "base": "15", "value": "6aeeb69631c227c" },
  "4": { "base": "16", "value": "e1b5e05623d881f" },
  "5": { "base": "8", "value": "316034514573652620673" },
  "6": { "base": "3", "value": "2122212201122002221120200210011020220200" },
  "7": { "base": "3", "value": "20120221122211000100210021102001201112121" },
  "8": { "base": "6", "value": "20220554335330240002224253" },
  "9": { "base": "12", "value": "45153788322a1255483" },
  "10": { "base": "7", "value": "1101613130313526312514143" }
}`

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(testcase1))
	require.NoError(t, err)

	assert.Equal(t, 4, doc.N)
	assert.Equal(t, 3, doc.K)
	require.Len(t, doc.Records, 4)

	// records come back sorted by x.
	want := []Record{
		{X: 1, Base: 10, Value: "4"},
		{X: 2, Base: 2, Value: "111"},
		{X: 3, Base: 10, Value: "12"},
		{X: 6, Base: 4, Value: "213"},
	}
	assert.True(t, reflect.DeepEqual(doc.Records, want), "records = %v", doc.Records)
}

func TestParseDocumentRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"not json", `{"keys"`},
		{"missing keys entry", `{"1": {"base": "10", "value": "4"}}`},
		{"zero threshold", `{"keys": {"n": 1, "k": 0}, "1": {"base": "10", "value": "4"}}`},
		{"non-decimal share key", `{"keys": {"n": 1, "k": 1}, "one": {"base": "10", "value": "4"}}`},
		{"negative share key", `{"keys": {"n": 1, "k": 1}, "-1": {"base": "10", "value": "4"}}`},
		{"share not an object", `{"keys": {"n": 1, "k": 1}, "1": "4"}`},
		{"base not decimal", `{"keys": {"n": 1, "k": 1}, "1": {"base": "ten", "value": "4"}}`},
	}

	for _, c := range cases {
		_, err := ParseDocument([]byte(c.doc))
		assert.ErrorIs(t, err, ErrBadDocument, c.name)
	}
}

func TestSolveDocumentWorkedExample(t *testing.T) {
	res, err := SolveDocument([]byte(testcase1), NewSolver(ExactArithmetic{}), true)
	require.NoError(t, err)

	assert.Equal(t, "3", res.Secret.String())
	assert.Equal(t, []int{0, 1, 2}, res.Subset)
}

func TestSolveDocumentSetsAsideCorruptedShare(t *testing.T) {
	res, err := SolveDocument([]byte(testcase2), NewSolver(ExactArithmetic{}), true)
	require.NoError(t, err)

	assert.Equal(t, "79836264049851", res.Secret.String())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, res.Subset)
}

func TestSolveDocumentPrimeField(t *testing.T) {
	f, err := NewPrimeArithmetic(2147483647)
	require.NoError(t, err)

	res, err := SolveDocument([]byte(testcase2), NewSolver(f), true)
	require.NoError(t, err)

	// 79836264049851 mod 2147483647
	assert.Equal(t, "1411988979", res.Secret.String())
}

func TestDecodeRecordsPermissiveDropsBadShare(t *testing.T) {
	records := []Record{
		{X: 1, Base: 10, Value: "4"},
		{X: 2, Base: 2, Value: "119"}, // 9 is not a binary digit
		{X: 3, Base: 10, Value: "12"},
	}

	shares, err := DecodeRecords(records, ExactArithmetic{}, false)
	require.NoError(t, err)
	require.Len(t, shares, 2)
	assert.Equal(t, int64(1), shares[0].X.Int64())
	assert.Equal(t, int64(3), shares[1].X.Int64())
}

func TestDecodeRecordsStrictAborts(t *testing.T) {
	records := []Record{
		{X: 1, Base: 10, Value: "4"},
		{X: 2, Base: 2, Value: "119"},
	}

	_, err := DecodeRecords(records, ExactArithmetic{}, true)
	assert.ErrorIs(t, err, ErrDigitOutOfRange)
}

func TestSolveDocumentPermissiveSurvivesOneBadValue(t *testing.T) {
	doc := `{
		"keys": { "n": 4, "k": 3 },
		"1": { "base": "10", "value": "4" },
		"2": { "base": "2", "value": "111" },
		"3": { "base": "10", "value": "1!2" },
		"6": { "base": "4", "value": "213" }
	}`

	res, err := SolveDocument([]byte(doc), NewSolver(ExactArithmetic{}), false)
	require.NoError(t, err)

	// the dropped share leaves exactly k clean ones, still enough.
	assert.Equal(t, "3", res.Secret.String())
}
