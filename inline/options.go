package inline

import (
	"io"

	"github.com/KRTirtho/NewPipeCLI/argv"
	"github.com/KRTirtho/NewPipeCLI/extractor"
	"github.com/KRTirtho/NewPipeCLI/key"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Flag names of the command line grammar.
const (
	FlagStreams        = "streams"
	FlagSearch         = "search"
	FlagContentFilters = "content-filters"
	FlagSortFilter     = "sort-filter"
	FlagService        = "service"
	FlagOutput         = "output"
	FlagPretty         = "pretty"
	FlagHelp           = "help"
)

type Options struct {
	Out     io.Writer
	Err     io.Writer
	Service extractor.Service

	// ServiceName selects Service; empty means the default one.
	ServiceName    mo.Option[string]
	Streams        mo.Option[string]
	Search         mo.Option[string]
	ContentFilters []string
	SortFilter     mo.Option[string]

	// Output writes the JSON to a file instead of Out.
	Output mo.Option[string]
	Pretty bool
}

// OptionsFromArgs reads the options from parsed arguments.
// --pretty without a value turns indentation on regardless of config.
func OptionsFromArgs(args argv.Args) *Options {
	return &Options{
		ServiceName:    args.Single(FlagService),
		Streams:        args.Single(FlagStreams),
		Search:         args.Single(FlagSearch),
		ContentFilters: args.List(FlagContentFilters),
		SortFilter:     args.Single(FlagSortFilter),
		Output:         args.Single(FlagOutput),
		Pretty:         args.Has(FlagPretty) || viper.GetBool(key.OutputPretty),
	}
}

// Requested reports whether one of the operations was asked for.
func (o *Options) Requested() bool {
	return o.Streams.IsPresent() || o.Search.IsPresent()
}
