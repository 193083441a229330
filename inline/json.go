package inline

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/KRTirtho/NewPipeCLI/filesystem"
)

// Failure is what gets written to standard error when an operation fails.
type Failure struct {
	Error string `json:"error"`
}

func asJson(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if pretty {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJson(options *Options, v any) error {
	data, err := asJson(v, options.Pretty)
	if err != nil {
		return err
	}

	if options.Output.IsPresent() {
		return filesystem.WriteFile(options.Output.MustGet(), data)
	}

	_, err = options.Out.Write(data)
	return err
}

// WriteError writes {"error": message} as compact JSON.
func WriteError(w io.Writer, err error) {
	data, marshalErr := asJson(Failure{Error: err.Error()}, false)
	if marshalErr != nil {
		return
	}
	_, _ = w.Write(data)
}
