package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrim(t *testing.T) {
	t.Parallel()

	require.Equal(t, "abc", Trim(" abc "))
	require.Equal(t, "", Trim(""))
	require.Equal(t, "", Trim(" \t\r\n"))
	require.Equal(t, "a b", Trim("\ta b\n"))
}

func TestIsAlphanumeric(t *testing.T) {
	t.Parallel()

	require.True(t, IsAlphanumeric("S1"))
	require.True(t, IsAlphanumeric("abc123"))
	require.False(t, IsAlphanumeric(""))
	require.False(t, IsAlphanumeric("a b"))
	require.False(t, IsAlphanumeric("a,b"))
	require.False(t, IsAlphanumeric("a-b"))
}

func TestIsLettersOnly(t *testing.T) {
	t.Parallel()

	require.True(t, IsLettersOnly("Alice"))
	require.True(t, IsLettersOnly("Alice Smith"))
	require.False(t, IsLettersOnly(""))
	require.False(t, IsLettersOnly("   "))
	require.False(t, IsLettersOnly("Alice2"))
}

func TestIsWholeNumber(t *testing.T) {
	t.Parallel()

	require.True(t, IsWholeNumber("20"))
	require.True(t, IsWholeNumber("0"))
	require.False(t, IsWholeNumber("12a"))
	require.False(t, IsWholeNumber(""))
	require.False(t, IsWholeNumber("-1"))
	require.False(t, IsWholeNumber("1.5"))
}

func TestEqualsIgnoreCase(t *testing.T) {
	t.Parallel()

	require.True(t, EqualsIgnoreCase("ABC", "abc"))
	require.True(t, EqualsIgnoreCase("cs101", "CS101"))
	require.False(t, EqualsIgnoreCase("abc", "abd"))
	require.True(t, EqualsIgnoreCase("", ""))
}

func TestGenerateUUID(t *testing.T) {
	t.Parallel()

	a := GenerateUUID()
	b := GenerateUUID()
	require.NotEmpty(t, a)
	require.NotEqual(t, a, b)
}
