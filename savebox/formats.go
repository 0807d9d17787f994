package savebox

import "github.com/pkg/errors"

// DataFormat identifies the on-disk encoding of a saved data file.
type DataFormat string

const (
	FormatGob     DataFormat = "gob"
	FormatJSON    DataFormat = "json"
	FormatYAML    DataFormat = "yaml"
	FormatBSON    DataFormat = "bson"
	FormatFTDC    DataFormat = "ftdc"
	FormatParquet DataFormat = "parquet"
)

// dataFormats is ordered; LoadData probes extensions in this order.
var dataFormats = []DataFormat{
	FormatGob,
	FormatJSON,
	FormatYAML,
	FormatBSON,
	FormatFTDC,
	FormatParquet,
}

func (f DataFormat) Validate() error {
	switch f {
	case FormatGob, FormatJSON, FormatYAML, FormatBSON, FormatFTDC, FormatParquet:
		return nil
	default:
		return errors.Errorf("invalid data format '%s'", string(f))
	}
}

// Extension returns the file extension owned by the format, including
// the leading dot.
func (f DataFormat) Extension() string {
	return "." + string(f)
}

// IsColumnar reports whether the format stores Series payloads rather
// than Documents.
func (f DataFormat) IsColumnar() bool {
	return f == FormatFTDC || f == FormatParquet
}

// FormatFromExtension maps a file extension (with or without the
// leading dot) back to its format.
func FormatFromExtension(ext string) (DataFormat, error) {
	if len(ext) > 0 && ext[0] == '.' {
		ext = ext[1:]
	}

	f := DataFormat(ext)
	if err := f.Validate(); err != nil {
		return "", errors.Wrapf(err, "no format owns extension '.%s'", ext)
	}

	return f, nil
}

// Compression identifies an optional whole-file compression wrapper.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionGz   Compression = "gz"
)

func (c Compression) Validate() error {
	switch c {
	case CompressionNone, CompressionGz:
		return nil
	default:
		return errors.Errorf("invalid compression '%s'", string(c))
	}
}

// Extension returns the extension suffix added by the compression
// wrapper, or the empty string for none.
func (c Compression) Extension() string {
	if c == CompressionGz {
		return ".gz"
	}

	return ""
}
