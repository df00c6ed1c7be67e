package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"github.com/geoknoesis/rdf-serializer/rdf"
)

// Viper keys. Flags use the same names with dots replaced by dashes.
const (
	inputConf      = "input"
	outputConf     = "output"
	fromConf       = "from"
	toConf         = "to"
	prefixFileConf = "prefix-file"
	prefixesConf   = "prefixes"
	indentConf     = "indent"
	prettyConf     = "pretty"
	compactConf    = "jsonld.compact"
	listPolicyConf = "list-policy"
	logFormatConf  = "log.format"
	logLevelConf   = "log.level"
)

// LogConfig selects the log encoding and level.
type LogConfig struct {
	Format string
	Level  string
}

// Config is the resolved configuration of one conversion.
type Config struct {
	Input  string
	Output string
	From   string
	To     string

	PrefixFile string
	Prefixes   map[string]string

	Indent     string
	Pretty     bool
	Compact    bool
	ListPolicy string

	Log LogConfig
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Indent:     "4",
		ListPolicy: rdf.ListFoldFirst.String(),
		Log: LogConfig{
			Format: "text",
			Level:  "warn",
		},
	}
}

func configFrom(v *viper.Viper) Config {
	return Config{
		Input:      v.GetString(inputConf),
		Output:     v.GetString(outputConf),
		From:       v.GetString(fromConf),
		To:         v.GetString(toConf),
		PrefixFile: v.GetString(prefixFileConf),
		Prefixes:   v.GetStringMapString(prefixesConf),
		Indent:     v.GetString(indentConf),
		Pretty:     v.GetBool(prettyConf),
		Compact:    v.GetBool(compactConf),
		ListPolicy: v.GetString(listPolicyConf),
		Log: LogConfig{
			Format: v.GetString(logFormatConf),
			Level:  v.GetString(logLevelConf),
		},
	}
}

// PrefixFile is the TOML document accepted by --prefix-file:
//
//	[prefixes]
//	ex = "http://example.org/ns#"
//
//	[context]
//	name = "http://xmlns.com/foaf/0.1/name"
//
// A non-empty context is used for JSON-LD compaction instead of the one
// derived from the prefixes.
type PrefixFile struct {
	Prefixes map[string]string      `toml:"prefixes"`
	Context  map[string]interface{} `toml:"context"`
}

// LoadPrefixFile decodes a prefix file and rejects unknown keys.
func LoadPrefixFile(path string) (PrefixFile, error) {
	var pf PrefixFile
	md, err := toml.DecodeFile(path, &pf)
	if err != nil {
		return PrefixFile{}, fmt.Errorf("prefix file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return PrefixFile{}, fmt.Errorf("prefix file %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return pf, nil
}

// parseIndent accepts "tab" or a number of spaces.
func parseIndent(value string) (string, error) {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, "tab") {
		return "\t", nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || n > 16 {
		return "", fmt.Errorf("invalid indent %q: want \"tab\" or 0-16 spaces", value)
	}
	return strings.Repeat(" ", n), nil
}

// serializerOptions turns the configuration into serializer options. Prefixes
// from the file are registered before the ones given on the command line.
func (c Config) serializerOptions() ([]rdf.Option, error) {
	var opts []rdf.Option

	if c.PrefixFile != "" {
		pf, err := LoadPrefixFile(c.PrefixFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, rdf.OptPrefixes(pf.Prefixes))
		if len(pf.Context) > 0 && c.Compact {
			opts = append(opts, rdf.OptJSONLDContext(pf.Context))
		}
	}
	if len(c.Prefixes) > 0 {
		opts = append(opts, rdf.OptPrefixes(c.Prefixes))
	}

	indent, err := parseIndent(c.Indent)
	if err != nil {
		return nil, err
	}
	opts = append(opts, rdf.OptIndent(indent))

	if c.Pretty {
		opts = append(opts, rdf.OptPretty())
	}
	if c.Compact {
		opts = append(opts, rdf.OptJSONLDCompact())
	}

	policy, ok := rdf.ParseListPolicy(c.ListPolicy)
	if !ok {
		return nil, fmt.Errorf("invalid list policy %q", c.ListPolicy)
	}
	opts = append(opts, rdf.OptListPolicy(policy))
	return opts, nil
}
