// codes_test.go — verification for built-in code registry & helpers.
package exn

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBuiltin_AllBuiltinCodesAreBuiltin(t *testing.T) {
	t.Parallel()

	for i, c := range BuiltinCodes() {
		assert.Truef(t, c.IsBuiltin(), "index=%d code=%q: expected IsBuiltin()=true", i, c)
	}
}

func TestIsBuiltin_CustomAndEmptyAreNotBuiltin(t *testing.T) {
	t.Parallel()

	t.Run("custom_code", func(t *testing.T) {
		assert.False(t, Code("custom_code").IsBuiltin())
	})
	t.Run("empty_string", func(t *testing.T) {
		var empty Code
		assert.False(t, empty.IsBuiltin())
	})
}

func TestBuiltinCodes_ReturnsCopy(t *testing.T) {
	t.Parallel()

	orig := BuiltinCodes()
	require.NotEmpty(t, orig)

	mut := BuiltinCodes()
	mut[0] = Code("custom_code")

	assert.Equal(t, orig, BuiltinCodes(), "mutation of a returned slice leaked into package state")
}

func TestBuiltinCodes_LengthAndOrder(t *testing.T) {
	t.Parallel()

	want := []Code{
		CodeBadRequest,
		CodeInvalid,
		CodeNotFound,
		CodeConflict,
		CodeForbidden,
		CodeTooManyRequests,
		CodeTimeout,
		CodeUnavailable,
		CodeInternal,
		CodeDefect,
	}
	assert.Equal(t, want, BuiltinCodes())
}

func TestCode_StringUnderlyingValue(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"bad_request", "internal", "custom_code", ""} {
		c := Code(s)
		assert.Equal(t, s, c.String())
		assert.Equal(t, s, fmt.Sprint(c))
	}
}

func TestCode_AttachedAsContext(t *testing.T) {
	t.Parallel()

	x := New(textErr("gone")).Attach(CodeNotFound)

	c, ok := ContextOf[Code](x.Frame())
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, c)
}
