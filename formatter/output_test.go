package formatter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project/ip-filter/address"
	"project/ip-filter/config"
)

func TestParseStyle(t *testing.T) {
	for name, want := range map[string]Style{"": Dotted, config.FormatDotted: Dotted, config.FormatPTR: PTR} {
		got, err := ParseStyle(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseStyle("json")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	a := address.MustParse("010.001.000.255")

	got, err := Render(a, Dotted)
	require.NoError(t, err)
	assert.Equal(t, "10.1.0.255", got)

	got, err = Render(a, PTR)
	require.NoError(t, err)
	assert.Equal(t, "255.0.1.10.in-addr.arpa.", got)
}

func TestLines(t *testing.T) {
	p := address.Pool{{5, 1, 1, 1}, {68, 2, 2, 1}, {5, 1, 1, 1}}

	lines, err := Lines(p, Dotted)
	require.NoError(t, err)
	assert.Equal(t, []string{"5.1.1.1", "68.2.2.1", "5.1.1.1"}, lines)

	lines, err = Lines(address.Pool{}, Dotted)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, address.Pool{{1, 1, 1, 1}, {46, 70, 0, 1}}, Dotted))
	assert.Equal(t, "1.1.1.1\n46.70.0.1\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, address.Pool{{1, 2, 3, 4}}, PTR))
	assert.Equal(t, "4.3.2.1.in-addr.arpa.\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, nil, Dotted))
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteError(t *testing.T) {
	err := Write(failingWriter{}, address.Pool{{1, 1, 1, 1}}, Dotted)
	assert.EqualError(t, err, "closed")
}

func TestWriteMatchesLines(t *testing.T) {
	p := address.Pool{{46, 70, 1, 2}, {1, 2, 3, 4}}
	for _, s := range []Style{Dotted, PTR} {
		lines, err := Lines(p, s)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, Write(&buf, p, s))
		assert.Equal(t, strings.Join(lines, "\n")+"\n", buf.String())
	}
}
