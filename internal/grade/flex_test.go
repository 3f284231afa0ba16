package grade

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`1200`, "1200"},
		{`1200.50`, "1200.5"},
		{`"1200"`, "1200"},
		{`"1,200.50"`, "1200.5"},
		{`"$4,000"`, "4000"},
		{`"₱ 2 500"`, "2500"},
		{`""`, "0"},
		{`null`, "0"},
		{`"not a number"`, "0"},
		{`true`, "0"},
		{`{"nested": 1}`, "0"},
		{`[1,2]`, "0"},
	}
	for _, tt := range tests {
		var a Amount
		err := json.Unmarshal([]byte(tt.in), &a)
		require.NoError(t, err, tt.in)
		assert.True(t, a.Decimal.Equal(dec(tt.want)), "%s -> %s, want %s", tt.in, a.Decimal, tt.want)
	}
}

func TestAmount_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(amt("1250.75"))
	require.NoError(t, err)
	assert.Equal(t, "1250.75", string(b))
}

func TestAmount_InStruct(t *testing.T) {
	var row JournalRow
	err := json.Unmarshal([]byte(`{"particulars":"Cash","debit":"10,000","credit":null}`), &row)
	require.NoError(t, err)
	assert.True(t, row.Debit.Equal(dec("10000")))
	assert.True(t, row.Credit.IsZero())
}
