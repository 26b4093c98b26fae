package menu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/KaramelBytes/iris-cli/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldRepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("7\nstamen length\n3\n"), &out)
	f, err := p.Field("Pick")
	require.NoError(t, err)
	assert.Equal(t, dataset.PetalLength, f)
	assert.Equal(t, 3, strings.Count(out.String(), "Pick [1-4]: "))
	assert.Contains(t, out.String(), "1) sepal_length_cm")
	assert.Contains(t, out.String(), `"stamen length"`)
}

func TestFieldAbortsOnEOF(t *testing.T) {
	p := New(strings.NewReader("nope\n"), &bytes.Buffer{})
	_, err := p.Field("Pick")
	assert.True(t, errors.Is(err, ErrAborted))
}

func TestPairRefusesSameField(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("petal width\n4\nsepal_width_cm\n"), &out)
	x, y, err := p.Pair()
	require.NoError(t, err)
	assert.Equal(t, dataset.PetalWidth, x)
	assert.Equal(t, dataset.SepalWidth, y)
	assert.Contains(t, out.String(), "y must differ from x")
}
