package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsFloat(t *testing.T) {
	cases := []struct {
		in   interface{}
		want float64
		ok   bool
	}{
		{3.5, 3.5, true},
		{float32(2), 2, true},
		{7, 7, true},
		{int64(-4), -4, true},
		{complex(2, 0), 2, true},
		{complex(2, 1), 0, false},
		{"five", 0, false},
		{nil, 0, false},
	}
	for _, c := range cases {
		got, ok := AsFloat(c.in)
		assert.Equal(t, c.ok, ok, "AsFloat(%v)", c.in)
		if ok {
			assert.Equal(t, c.want, got)
		}
	}
}

func TestIsNumber(t *testing.T) {
	assert.True(t, IsNumber(1))
	assert.True(t, IsNumber(1.5))
	assert.True(t, IsNumber(complex(0, 1)))
	assert.False(t, IsNumber("1"))
	assert.False(t, IsNumber([]float64{1}))
	assert.False(t, IsNumber(nil))
}
