package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color int

const (
	red color = iota
	green
)

var colors = NewEnum(map[color]string{red: "red", green: "green"})

func TestEnum(t *testing.T) {
	assert.Equal(t, []string{"green", "red"}, colors.Options())
	assert.Equal(t, "green", colors.ToString(green))

	v, err := colors.Parse("GREEN")
	require.NoError(t, err)
	assert.Equal(t, green, v)

	_, err = colors.Parse("blue")
	assert.EqualError(t, err, `invalid value "blue", expected one of: green, red`)
}

func TestEnumValue(t *testing.T) {
	c := red
	flag := colors.Value(&c)
	assert.Equal(t, "red", flag.String())
	require.NoError(t, flag.Set("green"))
	assert.Equal(t, green, c)
	assert.Error(t, flag.Set("nope"))
	assert.Equal(t, green, c)
}
