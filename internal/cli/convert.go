package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geoknoesis/rdf-serializer/logger"
	"github.com/geoknoesis/rdf-serializer/rdf"
)

const stdio = "-"

func (a *app) newConvertCommand() *cobra.Command {
	defaults := DefaultConfig()

	cmd := &cobra.Command{
		Use:   "convert [input]",
		Short: "Convert an RDF dataset to another format",
		Long: `Convert reads a dataset from a file or stdin and writes it in the requested format.

The input format comes from --from, the input file extension, or a look at the
first bytes. The output format comes from --to or the --output file extension.
Output is written only when the whole conversion succeeds.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				a.v.Set(inputConf, args[0])
			}
			return Convert(cmd.Context(), configFrom(a.v), cmd.InOrStdin(), cmd.OutOrStdout(), a.log)
		},
	}

	flags := cmd.Flags()

	flags.StringP("input", "i", defaults.Input, "input file, - for stdin")
	mustBindPFlag(a.v, inputConf, flags.Lookup("input"))

	flags.StringP("output", "o", defaults.Output, "output file, - for stdout")
	mustBindPFlag(a.v, outputConf, flags.Lookup("output"))

	flags.StringP("from", "f", defaults.From, "input format: nquads, ntriples or jsonld")
	mustBindPFlag(a.v, fromConf, flags.Lookup("from"))

	flags.StringP("to", "t", defaults.To, "output format: turtle, trig, ntriples, nquads, rdfxml, jsonld or xrdf")
	mustBindPFlag(a.v, toConf, flags.Lookup("to"))

	flags.String("prefix-file", defaults.PrefixFile, "TOML file with [prefixes] and an optional JSON-LD [context]")
	mustBindPFlag(a.v, prefixFileConf, flags.Lookup("prefix-file"))

	flags.StringToString("prefix", defaults.Prefixes, "prefix binding, e.g. --prefix ex=http://example.org/ns#")
	mustBindPFlag(a.v, prefixesConf, flags.Lookup("prefix"))

	flags.String("indent", defaults.Indent, `indentation: number of spaces or "tab"`)
	mustBindPFlag(a.v, indentConf, flags.Lookup("indent"))

	flags.Bool("pretty", defaults.Pretty, "indent JSON-LD output")
	mustBindPFlag(a.v, prettyConf, flags.Lookup("pretty"))

	flags.Bool("compact", defaults.Compact, "compact JSON-LD output with the prefix bindings")
	mustBindPFlag(a.v, compactConf, flags.Lookup("compact"))
	mustBindEnv(a.v, compactConf, "RDFCONV_JSONLD_COMPACT", "RDFCONV_COMPACT")

	flags.String("list-policy", defaults.ListPolicy, "collection folding: fold-first, keep-shared or flat")
	mustBindPFlag(a.v, listPolicyConf, flags.Lookup("list-policy"))

	return cmd
}

// Convert runs one conversion. stdin and stdout are used when the input or
// output is unset or "-".
func Convert(ctx context.Context, cfg Config, stdin io.Reader, stdout io.Writer, log logger.Logger) error {
	log = logger.OrNoop(log)

	opts, err := cfg.serializerOptions()
	if err != nil {
		return err
	}
	to, err := outputFormat(cfg)
	if err != nil {
		return err
	}

	in := stdin
	if cfg.Input != "" && cfg.Input != stdio {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	br := bufio.NewReader(in)

	from, err := inputFormat(cfg, br)
	if err != nil {
		return err
	}

	quads, err := rdf.ReadQuads(ctx, br, from, &rdf.BlankNodes{})
	if err != nil {
		return fmt.Errorf("reading %s: %w", from, err)
	}

	var staged bytes.Buffer
	s, err := rdf.NewSerializer(&staged, to, opts...)
	if err != nil {
		return err
	}
	if err := s.Serialize(ctx, log, quads); err != nil {
		return err
	}

	if cfg.Output == "" || cfg.Output == stdio {
		if _, err := stdout.Write(staged.Bytes()); err != nil {
			return &rdf.WriteError{Format: to, Err: err}
		}
	} else if err := os.WriteFile(cfg.Output, staged.Bytes(), 0o644); err != nil {
		return &rdf.WriteError{Format: to, Err: err}
	}

	log.Info("converted dataset",
		zap.String("from", string(from)),
		zap.String("to", string(to)),
		zap.Int("bytes", staged.Len()))
	return nil
}

func outputFormat(cfg Config) (rdf.Format, error) {
	if cfg.To != "" {
		f, ok := rdf.ParseFormat(cfg.To)
		if !ok {
			return "", fmt.Errorf("%w: %q", rdf.ErrUnsupportedFormat, cfg.To)
		}
		return f, nil
	}
	if cfg.Output != "" && cfg.Output != stdio {
		return rdf.ResolveFormatFromPath(cfg.Output)
	}
	return "", errors.New("no output format: pass --to or an --output path with a known extension")
}

func inputFormat(cfg Config, br *bufio.Reader) (rdf.Format, error) {
	if cfg.From != "" {
		f, ok := rdf.ParseFormat(cfg.From)
		if !ok {
			return "", fmt.Errorf("%w: %q", rdf.ErrUnsupportedFormat, cfg.From)
		}
		return f, nil
	}
	if cfg.Input != "" && cfg.Input != stdio {
		if f, err := rdf.ResolveFormatFromPath(cfg.Input); err == nil {
			return f, nil
		}
	}
	if f, ok := rdf.DetectInputFormat(br); ok {
		return f, nil
	}
	return "", errors.New("cannot tell the input format: pass --from")
}

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, f := range rdf.Formats() {
				graphs := "triples"
				if f.SupportsGraphs() {
					graphs = "named graphs"
				}
				if _, err := fmt.Fprintf(out, "%-9s %s\n", f, graphs); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
