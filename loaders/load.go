package loaders

import (
	"context"
	"net/url"
	"os"
	"strings"

	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/nets"
)

// Load reads a description from a file path or an http(s) URL.
type Load func(ctx context.Context, source string) (*machines.Description, error)

func (Module) Load(
	fetch nets.Fetch,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, source string) (*machines.Description, error) {
		var content []byte
		var contentType string
		name := source

		if isURL(source) {
			u, err := url.Parse(source)
			if err != nil {
				return nil, wrap(err)
			}
			name = u.Path
			content, contentType, err = fetch(ctx, source)
			if err != nil {
				return nil, wrap(err)
			}
		} else {
			var err error
			content, err = os.ReadFile(source)
			if err != nil {
				return nil, wrap(err)
			}
		}

		format, err := FormatOf(name, contentType)
		if err != nil {
			return nil, err
		}

		d, err := Decode(source, format, content)
		if err != nil {
			return nil, err
		}

		logger.InfoContext(ctx, "description loaded",
			"source", source,
			"format", format,
			"name", d.Name,
			"states", len(d.States),
		)
		return d, nil
	}
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") ||
		strings.HasPrefix(source, "https://")
}
