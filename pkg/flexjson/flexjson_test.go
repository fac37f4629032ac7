package flexjson

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Number
	}{
		{"plain number", `42000`, Num(42000)},
		{"float", `1234.5`, Num(1234.5)},
		{"numeric string", `"1500"`, Num(1500)},
		{"numeric string with spaces", `" 1500 "`, Num(1500)},
		{"null", `null`, Number{}},
		{"empty string", `""`, Number{}},
		{"non-numeric string", `"n/a"`, Number{}},
		{"object", `{"amount":5}`, Number{}},
		{"array", `[1]`, Number{}},
		{"nan string", `"NaN"`, Number{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			require.NoError(t, json.Unmarshal([]byte(tt.input), &n))
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestNumberPtr(t *testing.T) {
	assert.Nil(t, Number{}.Ptr())

	p := Num(99).Ptr()
	require.NotNil(t, p)
	assert.Equal(t, 99.0, *p)
}

func TestFirstValid(t *testing.T) {
	assert.Equal(t, Num(1), FirstValid(Num(1), Num(2)))
	assert.Equal(t, Num(2), FirstValid(Number{}, Num(2)))
	assert.Equal(t, Number{}, FirstValid(Number{}, Number{}))
	assert.Equal(t, Number{}, FirstValid())
}

func TestStringUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  String
	}{
		{"string", `"hello"`, "hello"},
		{"number", `4281282242`, "4281282242"},
		{"float", `12.5`, "12.5"},
		{"bool", `true`, "true"},
		{"null", `null`, ""},
		{"object", `{"a":1}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s String
			require.NoError(t, json.Unmarshal([]byte(tt.input), &s))
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, String("a"), FirstNonEmpty("a", "b"))
	assert.Equal(t, String("b"), FirstNonEmpty("", "b"))
	assert.Equal(t, String(""), FirstNonEmpty("", ""))
}

func TestNumberMarshal(t *testing.T) {
	out, err := json.Marshal(struct {
		A Number `json:"a"`
		B Number `json:"b"`
	}{A: Num(10), B: Number{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":10,"b":null}`, string(out))
}
