package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethodDescriptor(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		params []Type
		ret    Type
	}{
		{
			name:   "primitives",
			in:     "(IDZ)V",
			params: []Type{NewPrimitiveType(Int, 0), NewPrimitiveType(Double, 0), NewPrimitiveType(Boolean, 0)},
			ret:    NewPrimitiveType(Void, 0),
		},
		{
			name:   "arrays",
			in:     "(I[[D[Z)V",
			params: []Type{NewPrimitiveType(Int, 0), NewPrimitiveType(Double, 2), NewPrimitiveType(Boolean, 1)},
			ret:    NewPrimitiveType(Void, 0),
		},
		{
			name:   "classes",
			in:     "(BLjava/util/List;I)Ljava/lang/String;",
			params: []Type{NewPrimitiveType(Byte, 0), MustClassType("java/util/List", 0), NewPrimitiveType(Int, 0)},
			ret:    MustClassType("java/lang/String", 0),
		},
		{
			name: "no params",
			in:   "()[Ljava/lang/Object;",
			ret:  MustClassType("java/lang/Object", 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMethodDescriptor(tt.in)
			require.NoError(t, err)
			require.Len(t, got.Params, len(tt.params))

			for i := range tt.params {
				assert.True(t, tt.params[i].Equal(got.Params[i]), "param %d: got %s", i, got.Params[i])
			}

			assert.True(t, tt.ret.Equal(got.Return), "return: got %s", got.Return)
			assert.True(t, NewMethodDescriptor(tt.ret, tt.params...).Equal(got))
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestParseMethodDescriptor_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no open paren", "I)V"},
		{"missing close paren", "(II"},
		{"unterminated class", "(Ljava/lang/String)V"},
		{"unterminated return class", "()Ljava/lang/String"},
		{"trailing characters", "(I)VI"},
		{"no return", "(I)"},
		{"unknown primitive", "(Q)V"},
		{"dangling array", "([)V"},
		{"empty class name", "(L;)V"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMethodDescriptor(tt.in)
			require.ErrorIs(t, err, ErrMalformedDescriptor)
		})
	}
}

func TestParseMethodDescriptor_UnknownPrimitiveIsWrapped(t *testing.T) {
	_, err := ParseMethodDescriptor("(Q)V")
	require.ErrorIs(t, err, ErrMalformedDescriptor)
	require.ErrorIs(t, err, ErrUnknownPrimitiveKey)
}

func TestMethodDescriptor_RoundTrip(t *testing.T) {
	for _, in := range []string{
		"()V",
		"(IDZ)V",
		"([[I[La$b;J)[[Ljava/lang/String;",
		"(Ljava/lang/Object;Ljava/lang/Object;)Z",
	} {
		d, err := ParseMethodDescriptor(in)
		require.NoError(t, err)
		assert.Equal(t, in, d.String())
	}
}

func TestMethodDescriptor_Equal_OrderMatters(t *testing.T) {
	a, err := ParseMethodDescriptor("(IJ)V")
	require.NoError(t, err)

	b, err := ParseMethodDescriptor("(JI)V")
	require.NoError(t, err)

	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a))
}
