// Package inline runs the single-shot operations of the command line: fetching one
// stream's info or running a search, written out as JSON.
package inline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/KRTirtho/NewPipeCLI/log"
	"github.com/KRTirtho/NewPipeCLI/normalize"
	"github.com/google/uuid"
)

// Usage prints the operations and flags.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  --streams <url_or_id>")
	fmt.Fprintln(w, "  --search <query> [--content-filters f1 f2 ...] [--sort-filter sort]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --service <name|index>  service to query, the primary one by default")
	fmt.Fprintln(w, "  --output <path>         write the JSON to a file")
	fmt.Fprintln(w, "  --pretty                indent the JSON")
}

// Run performs the requested operation. On failure the error is written to
// options.Err as a JSON object and returned.
func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Err == nil {
		options.Err = os.Stderr
	}

	if !options.Requested() {
		Usage(options.Out)
		return nil
	}

	logger := log.WithField("run", uuid.NewString())

	var (
		result any
		err    error
	)

	switch {
	case options.Service == nil:
		err = fmt.Errorf("no service selected")
	case options.Streams.IsPresent():
		logger.Infof("stream info of %s from %s", options.Streams.MustGet(), options.Service.Name())
		result, err = streamInfo(ctx, options)
	default:
		logger.Infof("search %q on %s", options.Search.MustGet(), options.Service.Name())
		result, err = search(ctx, options)
	}

	if err == nil {
		err = writeJson(options, result)
	}

	if err != nil {
		logger.Errorf("failed: %v", err)
		WriteError(options.Err, err)
		return err
	}

	return nil
}

func streamInfo(ctx context.Context, options *Options) (normalize.Record, error) {
	info, err := options.Service.StreamInfo(ctx, options.Streams.MustGet())
	if err != nil {
		return normalize.Record{}, err
	}
	return normalize.StreamInfo(info), nil
}

func search(ctx context.Context, options *Options) ([]normalize.Record, error) {
	items, err := options.Service.Search(ctx, options.Search.MustGet(), options.ContentFilters, options.SortFilter.OrEmpty())
	if err != nil {
		return nil, err
	}
	return normalize.InfoItems(items), nil
}

// Fail reports an error that happened before an operation could start.
func Fail(w io.Writer, err error) error {
	if w == nil {
		w = os.Stderr
	}
	log.Errorf("%v", err)
	WriteError(w, err)
	return err
}
