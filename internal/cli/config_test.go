package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadPrefixFile(t *testing.T) {
	path := writeFile(t, "prefixes.toml", `
[prefixes]
ex = "http://example.org/ns#"
foaf = "http://xmlns.com/foaf/0.1/"
`)
	pf, err := LoadPrefixFile(path)
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"ex":   "http://example.org/ns#",
		"foaf": "http://xmlns.com/foaf/0.1/",
	}, pf.Prefixes)
	require.Empty(t, pf.Context)
}

func TestLoadPrefixFileRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "prefixes.toml", `
[prefixes]
ex = "http://example.org/ns#"

[prefixs]
typo = "http://example.org/typo#"
`)
	_, err := LoadPrefixFile(path)
	require.ErrorContains(t, err, "unknown keys prefixs")
}

func TestLoadPrefixFileInvalidTOML(t *testing.T) {
	_, err := LoadPrefixFile(writeFile(t, "bad.toml", "[prefixes\n"))
	require.Error(t, err)

	_, err = LoadPrefixFile("does-not-exist.toml")
	require.Error(t, err)
}

func TestParseIndent(t *testing.T) {
	for _, tc := range []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "4", want: "    "},
		{in: "0", want: ""},
		{in: "tab", want: "\t"},
		{in: " TAB ", want: "\t"},
		{in: "-1", wantErr: true},
		{in: "17", wantErr: true},
		{in: "wide", wantErr: true},
	} {
		got, err := parseIndent(tc.in)
		if tc.wantErr {
			require.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, got)
	}
}

func TestSerializerOptionsDefaults(t *testing.T) {
	opts, err := DefaultConfig().serializerOptions()
	require.NoError(t, err)
	require.Len(t, opts, 2)
}
