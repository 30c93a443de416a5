package candihelper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommon(t *testing.T) {
	StringGreen("green")
	StringYellow("yellow")
	assert.Equal(t, true, StringInSlice("a", []string{"a", "b", "c"}))
	assert.Equal(t, false, StringInSlice("z", []string{"a", "b", "c"}))
}

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "Testcase #1: Positive", input: "http://a.com, http://b.com", want: []string{"http://a.com", "http://b.com"}},
		{name: "Testcase #2: Skip empty item", input: "a,,b, ", want: []string{"a", "b"}},
		{name: "Testcase #3: Empty input", input: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCSV(tt.input))
		})
	}
}

func TestParseKeyValueCSV(t *testing.T) {
	got := ParseKeyValueCSV("shopA:random, shopB : sequential,invalid,:x")
	assert.Equal(t, map[string]string{"shopA": "random", "shopB": "sequential"}, got)
}

func TestCopyMap(t *testing.T) {
	src := map[string]interface{}{"a": 1}
	dst := CopyMap(src)
	dst["b"] = 2
	assert.Len(t, src, 1)
	assert.Len(t, dst, 2)
	assert.NotNil(t, CopyMap(nil))
}

func TestMultiError(t *testing.T) {
	mErr := NewMultiError()
	assert.True(t, mErr.IsNil())

	mErr.Append("b", errors.New("second"))
	mErr.Append("a", errors.New("first"))
	mErr.Append("c", nil)
	assert.True(t, mErr.HasError())
	assert.Equal(t, "a: first\nb: second", mErr.Error())

	other := NewMultiError().Append("d", errors.New("third"))
	mErr.Merge(other)
	assert.Len(t, mErr.ToMap(), 3)

	mErr.Clear()
	assert.True(t, mErr.IsNil())
}

func TestSecureCompare(t *testing.T) {
	assert.True(t, SecureCompare("abc", "abc"))
	assert.False(t, SecureCompare("abd", "abc"))
	assert.False(t, SecureCompare("", ""))
}
