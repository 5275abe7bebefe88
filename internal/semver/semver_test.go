package semver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseValid(t *testing.T) {
	v, err := Parse("1.2.3")
	require.NoError(t, err)
	require.Equal(t, Version{Major: 1, Minor: 2, Patch: 3}, v)
	require.Equal(t, "1.2.3", v.String())
}

func TestParseTrimsWhitespace(t *testing.T) {
	v, err := Parse("  0.10.0\n")
	require.NoError(t, err)
	require.Equal(t, Version{Minor: 10}, v)
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"", "1.2", "1.2.3.4", "1.2.x", "a.b.c", "1.-2.3", "1.2.3-beta"} {
		_, err := Parse(input)
		require.Error(t, err, "input %q should not parse", input)
	}
}

func TestBumpTransformations(t *testing.T) {
	base, err := Parse("1.2.3")
	require.NoError(t, err)

	require.Equal(t, "1.2.4", base.Bump(PartPatch).String())
	require.Equal(t, "1.3.0", base.Bump(PartMinor).String())
	require.Equal(t, "2.0.0", base.Bump(PartMajor).String())
}

func TestBumpDoesNotMutateReceiver(t *testing.T) {
	base := Version{Major: 1, Minor: 2, Patch: 3}
	_ = base.Bump(PartMajor)
	require.Equal(t, Version{Major: 1, Minor: 2, Patch: 3}, base)
}

func TestParsePart(t *testing.T) {
	for input, want := range map[string]Part{
		"patch": PartPatch,
		"Minor": PartMinor,
		" MAJOR ": PartMajor,
	} {
		got, err := ParsePart(input)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParsePart("micro")
	require.Error(t, err)
}
