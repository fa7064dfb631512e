package location

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse("33.5731,-7.5898")
	require.NoError(t, err)
	assert.Equal(t, Coordinates{Latitude: 33.5731, Longitude: -7.5898}, c)

	c, err = Parse(" 34.02 , -6.83 ")
	require.NoError(t, err)
	assert.Equal(t, Coordinates{Latitude: 34.02, Longitude: -6.83}, c)
}

func TestParse_Invalid(t *testing.T) {
	for _, bad := range []string{"", "33.5", "abc,def", "91,0", "0,181"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrUnavailable, "input %q", bad)
	}
}

func TestCoordinates_String(t *testing.T) {
	c := Coordinates{Latitude: 33.5731, Longitude: -7.5898}
	assert.Equal(t, "33.5731,-7.5898", c.String())
}

func TestParse_RoundTrip(t *testing.T) {
	c, err := Parse(Coordinates{Latitude: 34.02, Longitude: -6.83}.String())
	require.NoError(t, err)
	assert.Equal(t, Coordinates{Latitude: 34.02, Longitude: -6.83}, c)
}

func TestPromptLocator(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("33.5731,-7.5898\n"))
	var out bytes.Buffer

	loc := NewPromptLocator(in, &out)
	c, err := loc.Current(context.Background())

	require.NoError(t, err)
	assert.Equal(t, Coordinates{Latitude: 33.5731, Longitude: -7.5898}, c)
	assert.Contains(t, out.String(), "lat,lon")
}

func TestPromptLocator_BadInput(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("nowhere\n"))
	var out bytes.Buffer

	loc := NewPromptLocator(in, &out)
	_, err := loc.Current(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
