// format_test.go — renderers, fmt verbs and reports.
package exn

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var locRE = regexp.MustCompile(`at \S+\.go:\d+`)

// normalize replaces rendered source positions with <loc>.
func normalize(s string) string { return locRE.ReplaceAllString(s, "at <loc>") }

// linear builds C -> B -> A.
func linear() *Exn[textErr] {
	return Raise(Raise(New(textErr("A")), textErr("B")), textErr("C"))
}

// nested builds F{ X{ A }, Y }.
func nested() *Exn[textErr] {
	x := Raise(New(textErr("A")), textErr("X"))
	return RaiseAll(textErr("F"), x, New(textErr("Y")))
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		build  func() *Exn[textErr]
		layout Layout
		want   string
	}{
		{
			name:   "indented leaf",
			build:  func() *Exn[textErr] { return New(textErr("A")) },
			layout: LayoutIndented,
			want:   "A, at <loc>",
		},
		{
			name:   "indented linear chain collapses",
			build:  linear,
			layout: LayoutIndented,
			want:   "C, at <loc>\n|\n|-> B, at <loc>\n|\n|-> A, at <loc>",
		},
		{
			name: "indented siblings",
			build: func() *Exn[textErr] {
				return RaiseAll(textErr("F"), New(textErr("X")), New(textErr("Y")))
			},
			layout: LayoutIndented,
			want:   "F, at <loc>\n|\n|-> X, at <loc>\n|\n|-> Y, at <loc>",
		},
		{
			name:   "indented nested",
			build:  nested,
			layout: LayoutIndented,
			want: strings.Join([]string{
				"F, at <loc>",
				"|",
				"|-> X, at <loc>",
				"|   |",
				"|   |-> A, at <loc>",
				"|",
				"|-> Y, at <loc>",
			}, "\n"),
		},
		{
			name: "indented last child subtree gets blank prefix",
			build: func() *Exn[textErr] {
				y := Raise(New(textErr("A")), textErr("Y"))
				return RaiseAll(textErr("F"), New(textErr("X")), y)
			},
			layout: LayoutIndented,
			want: strings.Join([]string{
				"F, at <loc>",
				"|",
				"|-> X, at <loc>",
				"|",
				"|-> Y, at <loc>",
				"    |",
				"    |-> A, at <loc>",
			}, "\n"),
		},
		{
			name:   "compact leaf",
			build:  func() *Exn[textErr] { return New(textErr("A")) },
			layout: LayoutCompact,
			want:   "A, at <loc>",
		},
		{
			name: "compact siblings",
			build: func() *Exn[textErr] {
				return RaiseAll(textErr("F"), New(textErr("X")), New(textErr("Y")))
			},
			layout: LayoutCompact,
			want:   "F, at <loc>\n├─ X, at <loc>\n└─ Y, at <loc>",
		},
		{
			name:   "compact nested",
			build:  nested,
			layout: LayoutCompact,
			want: strings.Join([]string{
				"F, at <loc>",
				"├─ X, at <loc>",
				"│  └─ A, at <loc>",
				"└─ Y, at <loc>",
			}, "\n"),
		},
		{
			name:   "compact linear chain stays at root",
			build:  linear,
			layout: LayoutCompact,
			want:   "C, at <loc>\n├─ B, at <loc>\n└─ A, at <loc>",
		},
		{
			name:   "compact single child",
			build:  func() *Exn[textErr] { return Raise(New(textErr("A")), textErr("B")) },
			layout: LayoutCompact,
			want:   "B, at <loc>\n└─ A, at <loc>",
		},
		{
			name:   "outline nested",
			build:  nested,
			layout: LayoutOutline,
			want:   "F at <loc>\n  X at <loc>\n    A at <loc>\n  Y at <loc>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Sprint(tt.build().Frame(), tt.layout)
			assert.Equal(t, tt.want, normalize(got))
		})
	}
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	f := nested().Frame()
	for _, l := range []Layout{LayoutIndented, LayoutCompact, LayoutOutline} {
		assert.Equal(t, Sprint(f, l), Sprint(f, l), "layout %s", l)
	}
}

func TestRender_IncludesRealLocation(t *testing.T) {
	t.Parallel()

	line := thisLine() + 1
	x := New(textErr("A"))

	assert.Regexp(t, fmt.Sprintf(`^A, at \S+/format_test\.go:%d$`, line), Sprint(x.Frame(), LayoutIndented))
}

func TestRender_UnknownLocation(t *testing.T) {
	t.Parallel()

	f := newFrame(textErr("A"), Location{})
	assert.Equal(t, "A, at <unknown>", Sprint(f, LayoutCompact))
}

type failingWriter struct{ n int }

var errWrite = errors.New("write failed")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errWrite
	}
	w.n--
	return len(p), nil
}

func TestRender_PropagatesWriteErrors(t *testing.T) {
	t.Parallel()

	f := nested().Frame()
	for _, l := range []Layout{LayoutIndented, LayoutCompact, LayoutOutline} {
		err := Render(&failingWriter{n: 2}, f, l)
		assert.ErrorIs(t, err, errWrite, "layout %s", l)
	}
}

func TestFormat_Verbs(t *testing.T) {
	t.Parallel()

	x := linear()

	assert.Equal(t, "C", fmt.Sprintf("%v", x))
	assert.Equal(t, "C", fmt.Sprintf("%s", x))
	assert.Equal(t, `"C"`, fmt.Sprintf("%q", x))
	assert.Equal(t, "C", x.Error(), "display text never includes the tree")
	assert.Equal(t,
		"C, at <loc>\n|\n|-> B, at <loc>\n|\n|-> A, at <loc>",
		normalize(fmt.Sprintf("%+v", x)))
	assert.Equal(t, normalize(fmt.Sprintf("%+v", x)), normalize(fmt.Sprintf("%+v", x.Frame())))

	wrapped := fmt.Errorf("outer: %w", x)
	assert.Equal(t, "outer: C", wrapped.Error())
}

func TestReports(t *testing.T) {
	t.Parallel()

	t.Run("compact", func(t *testing.T) {
		src := nested()
		r := Compact(src)
		require.NotNil(t, r)

		assert.Equal(t, LayoutCompact, r.Layout())
		assert.Equal(t, "F", r.Error())
		assert.Equal(t, "F", fmt.Sprintf("%v", r))
		assert.Equal(t,
			"F, at <loc>\n├─ X, at <loc>\n│  └─ A, at <loc>\n└─ Y, at <loc>",
			normalize(fmt.Sprintf("%+v", r)))
		assert.PanicsWithValue(t, panicConsumed, func() { _ = src.Frame() }, "reports take ownership")
	})

	t.Run("native matches exn", func(t *testing.T) {
		want := normalize(fmt.Sprintf("%+v", linear()))
		assert.Equal(t, want, normalize(fmt.Sprintf("%+v", Native(linear()))))
	})

	t.Run("outline", func(t *testing.T) {
		r := Outline(nested())
		assert.Equal(t, "F at <loc>\n  X at <loc>\n    A at <loc>\n  Y at <loc>", normalize(fmt.Sprintf("%+v", r)))
	})

	t.Run("plain error", func(t *testing.T) {
		r := Compact(errors.New("plain"))
		assert.Equal(t, "plain, at <loc>", normalize(fmt.Sprintf("%+v", r)))
	})

	t.Run("nil panics", func(t *testing.T) {
		assert.PanicsWithValue(t, panicNilError, func() { Native(nil) })
		assert.PanicsWithValue(t, panicNilError, func() { Compact(nil) })
		assert.PanicsWithValue(t, panicNilError, func() { Outline(nil) })

		var typed *Exn[error]
		assert.PanicsWithValue(t, panicNilError, func() { Native(typed) })
	})

	t.Run("never a nil error", func(t *testing.T) {
		report := func(err error) error {
			if err == nil {
				return nil
			}
			return Native(err)
		}
		assert.NoError(t, report(nil))

		err := report(textErr("boom"))
		require.Error(t, err)
		assert.Equal(t, "boom", err.Error())
	})

	t.Run("unwraps to tree", func(t *testing.T) {
		r := Native(Raise(New(statusErr{status: 503}), textErr("up")))
		var se statusErr
		require.ErrorAs(t, r, &se)
		assert.Equal(t, 503, se.status)
	})
}

func TestLayout_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "indented", LayoutIndented.String())
	assert.Equal(t, "compact", LayoutCompact.String())
	assert.Equal(t, "outline", LayoutOutline.String())
	assert.Equal(t, "layout(9)", Layout(9).String())
}
