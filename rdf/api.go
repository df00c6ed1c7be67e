package rdf

// DefaultIndent is the indentation used for continuation lines and nested
// graph blocks.
const DefaultIndent = "    "

// Option configures serializer behavior.
type Option func(*Options)

// Options configures serializer behavior.
type Options struct {
	// Prefixes are registered, in order, after the built-in rdf, rdfs, xsd
	// and owl bindings.
	Prefixes []Binding

	// Indent is the unit of indentation. For JSON-LD it is only used when
	// Pretty is set.
	Indent string
	Pretty bool

	ListPolicy ListPolicy

	// JSON-LD compaction
	JSONLDCompact bool
	JSONLDContext map[string]interface{}
}

// OptPrefix registers one prefix binding.
func OptPrefix(prefix, namespace string) Option {
	return func(opts *Options) {
		opts.Prefixes = append(opts.Prefixes, Binding{Prefix: prefix, Namespace: namespace})
	}
}

// OptPrefixes registers bindings from a map, in prefix order.
func OptPrefixes(prefixes map[string]string) Option {
	return func(opts *Options) {
		for _, p := range sortedKeys(prefixes) {
			opts.Prefixes = append(opts.Prefixes, Binding{Prefix: p, Namespace: prefixes[p]})
		}
	}
}

// OptIndent sets the indentation unit.
func OptIndent(indent string) Option {
	return func(opts *Options) {
		opts.Indent = indent
	}
}

// OptPretty enables indented JSON-LD output.
func OptPretty() Option {
	return func(opts *Options) {
		opts.Pretty = true
	}
}

// OptListPolicy selects how collections are folded.
func OptListPolicy(policy ListPolicy) Option {
	return func(opts *Options) {
		opts.ListPolicy = policy
	}
}

// OptJSONLDCompact compacts JSON-LD output with a context built from the
// namespace bindings of the run.
func OptJSONLDCompact() Option {
	return func(opts *Options) {
		opts.JSONLDCompact = true
	}
}

// OptJSONLDContext compacts JSON-LD output against the given context.
func OptJSONLDContext(ctx map[string]interface{}) Option {
	return func(opts *Options) {
		opts.JSONLDCompact = true
		opts.JSONLDContext = ctx
	}
}

func defaultOptions() Options {
	return Options{
		Indent:     DefaultIndent,
		ListPolicy: ListFoldFirst,
	}
}

func applyOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
