package csvtable

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/domonda/go-types/charset"
)

// ParseDetectFormat parses CSV data after detecting
// its encoding, line endings, and field separator.
// A nil config uses NewDefaultFormatDetectionConfig.
//
// The separator is taken from a "sep=X" first line if present,
// else the most frequent of comma, semicolon, and tab is used
// with comma as default.
func ParseDetectFormat(data []byte, config *FormatDetectionConfig) (rows [][]string, format *Format, err error) {
	if config == nil {
		config = NewDefaultFormatDetectionConfig()
	}

	encodings := make([]charset.Encoding, 0, len(config.Encodings))
	for _, name := range config.Encodings {
		enc, err := charset.GetEncoding(name)
		if err != nil {
			return nil, nil, err
		}
		encodings = append(encodings, enc)
	}

	format = new(Format)
	data, format.Encoding, err = charset.AutoDecode(data, encodings, config.EncodingTests)
	if err != nil {
		return nil, nil, err
	}
	if format.Encoding == "" {
		format.Encoding = "UTF-8"
	}
	data = sanitizeUTF8(data)

	if bytes.Contains(data, []byte{'\r', '\n'}) {
		format.Newline = "\r\n"
	} else {
		format.Newline = "\n"
	}

	data, format.Separator = trimSepHeaderLine(data, format.Newline)
	if format.Separator == "" {
		format.Separator = detectSeparator(data)
	}

	rows, err = readRows(data, format.Separator)
	return rows, format, err
}

// ParseWithFormat parses CSV data using an explicitly specified format.
// A "sep=X" first line is removed if it matches format.Separator.
func ParseWithFormat(data []byte, format *Format) (rows [][]string, err error) {
	err = format.Validate()
	if err != nil {
		return nil, err
	}

	if format.Encoding == "UTF-8" {
		data = charset.TrimBOM(data, charset.BOMUTF8)
	} else {
		enc, err := charset.GetEncoding(format.Encoding)
		if err != nil {
			return nil, err
		}
		data, err = enc.Decode(data)
		if err != nil {
			return nil, err
		}
	}
	data = sanitizeUTF8(data)

	data, headerSep := trimSepHeaderLine(data, format.Newline)
	if headerSep != "" && headerSep != format.Separator {
		return nil, fmt.Errorf("separator '%s' in header line is different from format.Separator '%s'", headerSep, format.Separator)
	}
	return readRows(data, format.Separator)
}

func readRows(data []byte, separator string) ([][]string, error) {
	if len(separator) != 1 {
		return nil, fmt.Errorf("invalid separator: %q", separator)
	}
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = rune(separator[0])
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("can't parse CSV line %d: %w", parseErr.Line, parseErr.Err)
		}
		return nil, err
	}
	return rows, nil
}

func detectSeparator(data []byte) string {
	commas := bytes.Count(data, []byte{','})
	semicolons := bytes.Count(data, []byte{';'})
	tabs := bytes.Count(data, []byte{'\t'})
	switch {
	case semicolons > commas && semicolons > tabs:
		return ";"
	case tabs > commas && tabs > semicolons:
		return "\t"
	default:
		return ","
	}
}

// trimSepHeaderLine removes a first line of the form
// "sep=X", "SEP=X" or quoted "\"sep=X\"" and returns X.
func trimSepHeaderLine(data []byte, newline string) (rest []byte, sep string) {
	line, rest, found := bytes.Cut(data, []byte(newline))
	if !found {
		rest = nil
	}
	if len(line) >= 2 && line[0] == '"' && line[len(line)-1] == '"' {
		line = line[1 : len(line)-1]
	}
	if len(line) != 5 || !(bytes.HasPrefix(line, []byte("sep=")) || bytes.HasPrefix(line, []byte("SEP="))) {
		return data, ""
	}
	return rest, string(line[4:5])
}

func sanitizeUTF8(str []byte) []byte {
	return bytes.Map(
		func(r rune) rune {
			switch r {
			case '\uFFFD', '\u00a0':
				return ' '
			default:
				return r
			}
		},
		str,
	)
}
