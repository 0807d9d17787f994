// Package savebox provides deterministic save and load helpers for the
// toolbox: heterogeneous documents in gob, json, yaml or bson;
// integer-valued time series in ftdc or parquet; and figure and
// animation files rendered by plotbox.
package savebox

import (
	"compress/gzip"
	"context"
	"encoding/gob"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/evergreen-ci/utility"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	yaml "gopkg.in/yaml.v2"
)

// Document is the payload type of the non-columnar formats. Values
// must be encodable by the chosen format; for gob, custom value types
// need to be registered with gob.Register by the caller.
type Document map[string]interface{}

// SaveOptions controls where and how SaveData writes its payload.
type SaveOptions struct {
	// Path is a folder hierarchy passed to EnsurePath. Empty means the
	// working directory.
	Path []string
	// Format defaults to gob.
	Format DataFormat
	// Compression defaults to none. Compression is only available for
	// the document formats; ftdc and parquet already compress.
	Compression Compression
}

func (opts *SaveOptions) validate() error {
	if opts.Format == "" {
		opts.Format = FormatGob
	}
	if opts.Compression == "" {
		opts.Compression = CompressionNone
	}

	if err := opts.Format.Validate(); err != nil {
		return err
	}
	if err := opts.Compression.Validate(); err != nil {
		return err
	}
	if opts.Format.IsColumnar() && opts.Compression != CompressionNone {
		return errors.Errorf("format '%s' does not support additional compression", opts.Format)
	}

	return nil
}

// SaveData writes data under the directory named by opts.Path and
// returns the full path of the created file. The format extension is
// appended to name unless it is already present. Document formats
// expect a Document (or plain map); columnar formats expect a *Series.
func SaveData(data interface{}, name string, opts SaveOptions) (string, error) {
	if err := opts.validate(); err != nil {
		return "", errors.Wrap(err, "invalid save options")
	}

	dir, err := EnsurePath(opts.Path...)
	if err != nil {
		return "", errors.Wrap(err, "resolving save directory")
	}

	suffix := opts.Format.Extension() + opts.Compression.Extension()
	if !strings.HasSuffix(name, suffix) {
		name += suffix
	}
	fullPath := filepath.Join(dir, name)

	f, err := os.Create(fullPath)
	if err != nil {
		return "", errors.Wrapf(err, "creating %s", fullPath)
	}
	defer f.Close()

	var w io.Writer = f
	var gz *gzip.Writer
	if opts.Compression == CompressionGz {
		gz = gzip.NewWriter(f)
		w = gz
	}

	if err := encodeData(w, data, opts.Format); err != nil {
		return "", errors.Wrapf(err, "encoding %s data", opts.Format)
	}

	if gz != nil {
		if err := gz.Close(); err != nil {
			return "", errors.Wrap(err, "finalizing compressed stream")
		}
	}
	if err := f.Sync(); err != nil {
		return "", errors.Wrapf(err, "syncing %s", fullPath)
	}

	return fullPath, nil
}

func encodeData(w io.Writer, data interface{}, format DataFormat) error {
	if format.IsColumnar() {
		series, ok := data.(*Series)
		if !ok {
			return errors.Errorf("format '%s' requires a *Series payload, got %T", format, data)
		}

		if format == FormatFTDC {
			return series.writeFTDC(w)
		}
		return series.writeParquet(w)
	}

	doc, err := asDocument(data)
	if err != nil {
		return errors.Wrapf(err, "format '%s'", format)
	}

	switch format {
	case FormatGob:
		return errors.WithStack(gob.NewEncoder(w).Encode(doc))
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "   ")
		if err != nil {
			return errors.WithStack(err)
		}
		out = append(out, '\n')
		_, err = w.Write(out)
		return errors.WithStack(err)
	case FormatYAML:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = w.Write(out)
		return errors.WithStack(err)
	case FormatBSON:
		out, err := bson.Marshal(doc)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = w.Write(out)
		return errors.WithStack(err)
	default:
		return errors.Errorf("invalid data format '%s'", format)
	}
}

func asDocument(data interface{}) (Document, error) {
	switch d := data.(type) {
	case Document:
		return d, nil
	case map[string]interface{}:
		return Document(d), nil
	case bson.M:
		return Document(d), nil
	default:
		return nil, errors.Errorf("requires a Document payload, got %T", data)
	}
}

// Result is what LoadData found on disk: the resolved path, the
// detected format, and exactly one of Document or Series populated
// depending on the format kind.
type Result struct {
	Path        string
	Format      DataFormat
	Compression Compression
	Document    Document
	Series      *Series
}

// LoadData finds and decodes a file previously written by SaveData.
// When name carries a known extension the matching file is loaded
// directly; otherwise every known extension is probed. Zero matches is
// a not-found error and more than one match is an ambiguity error that
// names the candidates.
func LoadData(ctx context.Context, name string, parts ...string) (*Result, error) {
	dir, err := EnsurePath(parts...)
	if err != nil {
		return nil, errors.Wrap(err, "resolving load directory")
	}

	candidates, err := findCandidates(dir, name)
	if err != nil {
		return nil, err
	}

	switch len(candidates) {
	case 0:
		return nil, errors.Errorf("no saved data named '%s' in %s", name, dir)
	case 1:
		return decodeFile(ctx, candidates[0])
	default:
		paths := make([]string, len(candidates))
		for i, c := range candidates {
			paths[i] = filepath.Base(c.path)
		}
		return nil, errors.Errorf("name '%s' is ambiguous, found %s", name, strings.Join(paths, ", "))
	}
}

type candidate struct {
	path        string
	format      DataFormat
	compression Compression
}

func findCandidates(dir, name string) ([]candidate, error) {
	compression := CompressionNone
	if strings.HasSuffix(name, ".gz") {
		compression = CompressionGz
		name = strings.TrimSuffix(name, ".gz")
	}

	if ext := filepath.Ext(name); ext != "" {
		format, err := FormatFromExtension(ext)
		if err != nil {
			return nil, errors.Wrapf(err, "unrecognized extension '%s'", ext)
		}

		path := filepath.Join(dir, name+compression.Extension())
		if !utility.FileExists(path) {
			return nil, errors.Errorf("no such file %s", path)
		}
		return []candidate{{path: path, format: format, compression: compression}}, nil
	}

	var found []candidate
	for _, format := range dataFormats {
		for _, c := range []Compression{CompressionNone, CompressionGz} {
			if format.IsColumnar() && c == CompressionGz {
				continue
			}
			path := filepath.Join(dir, name+format.Extension()+c.Extension())
			if utility.FileExists(path) {
				found = append(found, candidate{path: path, format: format, compression: c})
			}
		}
	}

	return found, nil
}

func decodeFile(ctx context.Context, c candidate) (*Result, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", c.path)
	}
	defer f.Close()

	result := &Result{
		Path:        c.path,
		Format:      c.format,
		Compression: c.compression,
	}
	baseName := strings.TrimSuffix(filepath.Base(c.path), c.format.Extension()+c.compression.Extension())

	if c.format.IsColumnar() {
		result.Series, err = decodeSeries(ctx, f, c.format, baseName)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding %s", c.path)
		}
		return result, nil
	}

	var r io.Reader = f
	if c.compression == CompressionGz {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "opening compressed stream %s", c.path)
		}
		defer gz.Close()
		r = gz
	}

	result.Document, err = decodeDocument(r, c.format)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", c.path)
	}

	return result, nil
}

func decodeSeries(ctx context.Context, f *os.File, format DataFormat, name string) (*Series, error) {
	if format == FormatFTDC {
		return readSeriesFTDC(ctx, f, name)
	}

	return readSeriesParquet(f, name)
}

func decodeDocument(r io.Reader, format DataFormat) (Document, error) {
	doc := Document{}

	switch format {
	case FormatGob:
		if err := gob.NewDecoder(r).Decode(&doc); err != nil {
			return nil, errors.WithStack(err)
		}
	case FormatJSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.WithStack(err)
		}
	case FormatYAML:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.WithStack(err)
		}
	case FormatBSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if err := bson.Unmarshal(data, &doc); err != nil {
			return nil, errors.WithStack(err)
		}
	default:
		return nil, errors.Errorf("invalid data format '%s'", format)
	}

	return doc, nil
}
