package imma

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_SampleLineIsByteExact(t *testing.T) {
	rec, err := Decode(sampleLine)
	require.NoError(t, err)

	out, err := rec.Encode()
	require.NoError(t, err)
	assert.Equal(t, sampleLine+"\n", out)
}

func TestEncode_Headers(t *testing.T) {
	rec := NewRecord()
	require.NoError(t, rec.AddAttachment(CoreID))
	require.NoError(t, rec.AddAttachment(5))
	require.NoError(t, rec.AddAttachment(SupplementalID))
	rec.Set("YR", IntValue(1854))
	rec.Set("XN", IntValue(12))
	rec.Set("SUPD", TextValue("log page 7"))

	out, err := rec.Encode()
	require.NoError(t, err)

	core := out[:CoreWidth]
	assert.Equal(t, "1854", core[:4])
	assert.Equal(t, strings.Repeat(" ", CoreWidth-4), core[4:])

	rest := out[CoreWidth:]
	assert.Equal(t, " 523", rest[:4])
	assert.Equal(t, "12", rest[4+17:4+19])
	assert.Equal(t, "99 0 log page 7\n", rest[4+19:])
}

func TestEncode_TrimsTrailingBlanks(t *testing.T) {
	rec := NewRecord()
	require.NoError(t, rec.AddAttachment(CoreID))
	require.NoError(t, rec.AddAttachment(1))
	rec.Set("YR", IntValue(2004))

	out, err := rec.Encode()
	require.NoError(t, err)
	assert.Equal(t, "2004"+strings.Repeat(" ", CoreWidth-4)+" 165\n", out)

	rec = NewRecord()
	require.NoError(t, rec.AddAttachment(CoreID))
	rec.Set("YR", IntValue(2004))
	out, err = rec.Encode()
	require.NoError(t, err)
	assert.Equal(t, "2004\n", out)

	rec = NewRecord()
	require.NoError(t, rec.AddAttachment(CoreID))
	require.NoError(t, rec.AddAttachment(SupplementalID))
	rec.Set("YR", IntValue(2004))
	rec.Set("SUPD", TextValue("log page 7\v\f\t "))
	out, err = rec.Encode()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "99 0log page 7\n"), "got %q", out)
}

func TestEncode_MissingValuesAreBlank(t *testing.T) {
	rec := &Record{Attachments: []int{CoreID}, Values: map[string]Value{"MO": IntValue(3)}}
	out, err := rec.Encode()
	require.NoError(t, err)
	assert.Equal(t, "     3\n", out)
}

func TestEncode_UnsupportedAttachment(t *testing.T) {
	rec := &Record{Attachments: []int{CoreID, 77}}
	_, err := rec.Encode()
	assert.ErrorIs(t, err, ErrBadFormat)
}

func TestEncode_ChainMustStartWithCore(t *testing.T) {
	for _, chain := range [][]int{nil, {1}, {CoreID, 1, CoreID}} {
		rec := &Record{Attachments: chain}
		_, err := rec.Encode()
		assert.ErrorIs(t, err, ErrBadFormat, "chain %v", chain)
	}
}

func TestEncode_SupplementalMustBeLast(t *testing.T) {
	rec := NewRecord()
	require.NoError(t, rec.AddAttachment(CoreID))
	require.NoError(t, rec.AddAttachment(SupplementalID))
	require.NoError(t, rec.AddAttachment(1))
	rec.Set("DCK", IntValue(926))

	_, err := rec.Encode()
	require.ErrorIs(t, err, ErrBadFormat)
	assert.Contains(t, err.Error(), "supplemental")

	rec.Attachments = []int{CoreID, 1, SupplementalID}
	out, err := rec.Encode()
	require.NoError(t, err)

	decoded, err := Decode(out)
	require.NoError(t, err)
	assert.Equal(t, []int{CoreID, 1, SupplementalID}, decoded.Attachments)
	assert.Equal(t, IntValue(926), decoded.Get("DCK"))
}

func TestEncode_ValueKindMismatch(t *testing.T) {
	rec := NewRecord()
	require.NoError(t, rec.AddAttachment(CoreID))
	rec.Set("LAT", TextValue("north"))

	_, err := rec.Encode()
	require.ErrorIs(t, err, ErrValueKind)
	assert.Contains(t, err.Error(), "attachment 0")
}

func TestAddAttachment(t *testing.T) {
	rec := NewRecord()
	require.NoError(t, rec.AddAttachment(CoreID))
	assert.Len(t, rec.Values, 48)
	assert.True(t, rec.HasAttachment(CoreID))

	assert.Error(t, rec.AddAttachment(CoreID))
	assert.ErrorIs(t, rec.AddAttachment(42), ErrBadFormat)
}

func TestRoundTrip(t *testing.T) {
	chains := [][]int{
		{CoreID},
		{CoreID, 1, 2, 3, 4, 5, SupplementalID},
		{CoreID, 6, SupplementalID},
		{CoreID, 4, 1},
	}

	for _, chain := range chains {
		rec := filledRecord(t, chain)

		line, err := rec.Encode()
		require.NoError(t, err)

		decoded, err := Decode(line)
		require.NoError(t, err)
		assert.Equal(t, rec, decoded, "chain %v", chain)

		again, err := decoded.Encode()
		require.NoError(t, err)
		assert.Equal(t, line, again, "chain %v", chain)
	}
}

func TestRoundTrip_UndefinedValues(t *testing.T) {
	rec, err := Decode("2004 1 1 0")
	require.NoError(t, err)

	line, err := rec.Encode()
	require.NoError(t, err)

	decoded, err := Decode(line)
	require.NoError(t, err)
	assert.Equal(t, rec, decoded)
}

func TestIdempotentReencode(t *testing.T) {
	lines := []string{
		sampleLine,
		// zero-padded integers re-encode with blanks
		withField(4, "07"),
		// trimmed icoads payload
		sampleCore + " 165" + sampleICOADS[:20],
		sampleCore + "99  " + "0free text",
	}

	for _, line := range lines {
		rec, err := Decode(line)
		require.NoError(t, err)
		first, err := rec.Encode()
		require.NoError(t, err)

		rec2, err := Decode(first)
		require.NoError(t, err)
		second, err := rec2.Encode()
		require.NoError(t, err)

		assert.Equal(t, first, second)
	}
}

func TestRecordJSON(t *testing.T) {
	rec, err := Decode(sampleLine)
	require.NoError(t, err)

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"attachments":[0,1,99]`)
	assert.Contains(t, string(data), `"BSI":null`)
	assert.Contains(t, string(data), `"ID":"WDC6920  "`)

	var back Record
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, rec, &back)
}

func TestRecordJSON_CoercesNumbers(t *testing.T) {
	var rec Record
	require.NoError(t, json.Unmarshal([]byte(`{"attachments":[0],"values":{"LAT":-9,"YR":2004.0}}`), &rec))

	assert.Equal(t, RealValue(-9), rec.Get("LAT"))
	assert.Equal(t, IntValue(2004), rec.Get("YR"))

	out, err := rec.Encode()
	require.NoError(t, err)
	assert.Equal(t, "2004"+strings.Repeat(" ", 9)+"-900\n", out)
}

func TestRecordJSON_UnsupportedAttachment(t *testing.T) {
	var rec Record
	err := json.Unmarshal([]byte(`{"attachments":[0,77],"values":{}}`), &rec)
	assert.ErrorIs(t, err, ErrBadFormat)
}

func TestReaderWriter(t *testing.T) {
	input := strings.Join([]string{
		sampleLine,
		"",
		sampleCore + "7765",
		"2004 1 1 0",
	}, "\n") + "\n"

	r := NewReader(strings.NewReader(input))
	var buf bytes.Buffer
	w := NewWriter(&buf)

	var failures []int
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			assert.ErrorIs(t, err, ErrBadFormat)
			assert.Contains(t, err.Error(), "line 3")
			failures = append(failures, r.Line())
			continue
		}
		require.NoError(t, w.Write(rec))
	}

	assert.Equal(t, []int{3}, failures)
	assert.Equal(t, sampleLine+"\n"+"2004 1 1   0\n", buf.String())
}

// filledRecord builds a record for chain with a representable value in every field.
func filledRecord(t *testing.T, chain []int) *Record {
	t.Helper()
	rec := NewRecord()
	seed := 1
	for _, id := range chain {
		require.NoError(t, rec.AddAttachment(id))
		a, _ := Lookup(id)
		for _, name := range a.Params() {
			f, _ := a.Field(name)
			rec.Set(name, sampleValue(f, seed))
			seed++
		}
	}
	return rec
}

func sampleValue(f Field, seed int) Value {
	switch f.Encoding {
	case Base36:
		return IntValue(seed % 36)
	case Character:
		if f.Width == 0 {
			return TextValue("trailing text")
		}
		return TextValue(strings.Repeat(string(rune('A'+seed%26)), f.Width))
	}

	limit := 1
	for range f.Width - 1 {
		limit *= 10
	}
	n := (seed * 7) % limit
	if f.HasScale() && f.Scale != 1 {
		return RealValue(float64(n) * f.Scale)
	}
	return IntValue(n)
}
