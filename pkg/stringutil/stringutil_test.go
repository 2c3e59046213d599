package stringutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malywonsz/mpu/pkg/stringutil"
)

func TestIsEmail(t *testing.T) {
	valid := []string{"info@martin-thoma.de", "a.b+c@example.co.uk"}
	invalid := []string{"", "plain", "a@b", "a b@example.com", "a@@example.com"}

	for _, s := range valid {
		assert.True(t, stringutil.IsEmail(s), s)
	}
	for _, s := range invalid {
		assert.False(t, stringutil.IsEmail(s), s)
	}
}

func TestIsInt(t *testing.T) {
	assert.True(t, stringutil.IsInt("42"))
	assert.True(t, stringutil.IsInt("-7"))
	assert.False(t, stringutil.IsInt("3.5"))
	assert.False(t, stringutil.IsInt("forty"))
	assert.False(t, stringutil.IsInt(""))
}

func TestIsFloat(t *testing.T) {
	assert.True(t, stringutil.IsFloat("3.5"))
	assert.True(t, stringutil.IsFloat("-2e10"))
	assert.True(t, stringutil.IsFloat("42"))
	assert.False(t, stringutil.IsFloat("1,5"))
	assert.False(t, stringutil.IsFloat(""))
}

func TestIsUUID(t *testing.T) {
	assert.True(t, stringutil.IsUUID("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.False(t, stringutil.IsUUID("6ba7b810-9dad-11d1-80b4"))
	assert.False(t, stringutil.IsUUID("6ba7b8109dad11d180b400c04fd430c8zzzz"))
	assert.False(t, stringutil.IsUUID(""))
}

func TestIsIBAN(t *testing.T) {
	valid := []string{
		"DE89370400440532013000",
		"DE89 3704 0044 0532 0130 00",
		"GB82WEST12345698765432",
		"fr1420041010050500013M02606",
	}
	invalid := []string{
		"",
		"DE89370400440532013001",   // wrong checksum
		"DE8937040044053201300",    // wrong length
		"XX89370400440532013000",   // unknown country
		"DE89-3704-0044-0532-0130", // stray characters
	}

	for _, s := range valid {
		assert.True(t, stringutil.IsIBAN(s), s)
	}
	for _, s := range invalid {
		assert.False(t, stringutil.IsIBAN(s), s)
	}
}

func TestStr2Bool(t *testing.T) {
	for _, s := range []string{"true", "True", "T", "1", "yes", "Y", " y "} {
		got, err := stringutil.Str2Bool(s)
		require.NoError(t, err, s)
		assert.True(t, got, s)
	}
	for _, s := range []string{"false", "F", "0", "NO", "n"} {
		got, err := stringutil.Str2Bool(s)
		require.NoError(t, err, s)
		assert.False(t, got, s)
	}

	_, err := stringutil.Str2Bool("maybe")
	assert.Error(t, err)
}

func TestHumanReadableBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{in: 0, want: "0 B"},
		{in: 1023, want: "1023 B"},
		{in: 1024, want: "1.0 KiB"},
		{in: 1536, want: "1.5 KiB"},
		{in: 1048576, want: "1.0 MiB"},
		{in: 5 * 1024 * 1024 * 1024, want: "5.0 GiB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stringutil.HumanReadableBytes(tt.in))
	}
}
