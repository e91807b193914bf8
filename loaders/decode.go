package loaders

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/machines"
	"go.yaml.in/yaml/v3"
)

//go:embed schema.cue
var schema string

var (
	ErrUnknownFormat = errors.New("unknown description format")
	ErrDecode        = errors.New("decode description")
)

type Format string

const (
	FormatCUE  Format = "cue"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf guesses the format from a file name, falling back to a MIME type.
func FormatOf(name string, contentType string) (Format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".cue":
		return FormatCUE, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	if contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err == nil {
			switch mediaType {
			case "application/json":
				return FormatJSON, nil
			case "application/yaml", "application/x-yaml", "text/yaml":
				return FormatYAML, nil
			case "application/toml":
				return FormatTOML, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, name)
}

// Decode parses content in format into a description. The result is
// normalized but not validated.
func Decode(name string, format Format, content []byte) (*machines.Description, error) {
	var d machines.Description

	switch format {

	case FormatCUE, FormatJSON:
		// JSON documents are CUE documents
		loader := configs.NewSourceLoader(func() ([]configs.Source, error) {
			return []configs.Source{
				{Name: name, Content: content},
			}, nil
		}, schema)
		if err := loader.DecodeRoot(&d); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrDecode, name, err)
		}

	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(&d); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrDecode, name, err)
		}

	case FormatTOML:
		decoder := toml.NewDecoder(bytes.NewReader(content))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&d); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrDecode, name, err)
		}

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	normalize(&d)
	return &d, nil
}
