//go:build unit

package scanner

import (
	"testing"

	"github.com/lerenn/depub/pkg/visibility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_Next_Public(t *testing.T) {
	s := NewScanner()
	buf := "pub fn a() {}"

	occ, ok := s.Next(buf, 0)
	require.True(t, ok)
	assert.Equal(t, 0, occ.Start)
	assert.Equal(t, 4, occ.End)
	assert.Equal(t, visibility.Public, occ.Level)
	assert.True(t, occ.Supported)
	assert.Equal(t, "pub ", buf[occ.Start:occ.End])
}

func TestScanner_Next_Qualifiers(t *testing.T) {
	tests := []struct {
		name      string
		buf       string
		level     visibility.Level
		qualifier string
		span      string
		spaced    bool
	}{
		{name: "crate", buf: "pub(crate) fn b() {}", level: visibility.Crate, qualifier: "crate", span: "pub(crate) ", spaced: true},
		{name: "super", buf: "pub(super) struct S;", level: visibility.Super, qualifier: "super", span: "pub(super) ", spaced: true},
		{name: "interior whitespace", buf: "pub ( \tcrate  ) fn c()", level: visibility.Crate, qualifier: "crate", span: "pub ( \tcrate  ) ", spaced: true},
		{name: "no trailing space", buf: "pub(crate)\nfn d()", level: visibility.Crate, qualifier: "crate", span: "pub(crate)"},
		{name: "bare keyword at line break", buf: "pub\nfn x()", level: visibility.Public, span: "pub"},
		{name: "trailing tab", buf: "pub\tfn y()", level: visibility.Public, span: "pub\t", spaced: true},
	}

	s := NewScanner()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occ, ok := s.Next(tt.buf, 0)
			require.True(t, ok)
			assert.True(t, occ.Supported)
			assert.Equal(t, tt.level, occ.Level)
			assert.Equal(t, tt.qualifier, occ.Qualifier)
			assert.Equal(t, tt.span, tt.buf[occ.Start:occ.End])
			assert.Equal(t, tt.spaced, occ.Spaced)
		})
	}
}

func TestScanner_Next_Unsupported(t *testing.T) {
	s := NewScanner()
	buf := "pub(in crate::a) fn e() {}"

	occ, ok := s.Next(buf, 0)
	require.True(t, ok)
	assert.False(t, occ.Supported)
	assert.Equal(t, "in crate::a", occ.Qualifier)
	assert.Equal(t, "pub(in crate::a) ", buf[occ.Start:occ.End])
}

func TestScanner_Next_SkipsIdentifiers(t *testing.T) {
	s := NewScanner()
	buf := "let republish = public; pub fn f() {}"

	occ, ok := s.Next(buf, 0)
	require.True(t, ok)
	assert.Equal(t, 24, occ.Start)
	assert.Equal(t, visibility.Public, occ.Level)
}

func TestScanner_Next_IdentifierBoundaryAtCursor(t *testing.T) {
	s := NewScanner()
	// Scanning from the middle of "xpub" must not report an annotation.
	_, ok := s.Next("xpub", 1)
	assert.False(t, ok)
}

func TestScanner_Next_DoesNotSpanLines(t *testing.T) {
	s := NewScanner()
	buf := "pub(\ncrate) fn g()"

	occ, ok := s.Next(buf, 0)
	require.True(t, ok)
	assert.Equal(t, visibility.Public, occ.Level)
	assert.Equal(t, "pub", buf[occ.Start:occ.End])
}

func TestScanner_Next_FromOffset(t *testing.T) {
	s := NewScanner()
	buf := "pub fn a() {}\npub(crate) fn b() {}\n"

	first, ok := s.Next(buf, 0)
	require.True(t, ok)

	second, ok := s.Next(buf, first.End)
	require.True(t, ok)
	assert.Equal(t, 14, second.Start)
	assert.Equal(t, visibility.Crate, second.Level)

	_, ok = s.Next(buf, second.End)
	assert.False(t, ok)
}

func TestScanner_Next_OutOfRange(t *testing.T) {
	s := NewScanner()

	_, ok := s.Next("pub fn a()", 100)
	assert.False(t, ok)

	occ, ok := s.Next("pub fn a()", -3)
	require.True(t, ok)
	assert.Equal(t, 0, occ.Start)

	_, ok = s.Next("", 0)
	assert.False(t, ok)
}
