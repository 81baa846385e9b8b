package fileutil

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CSVReader provides a helper/utility to read CSV file(s)
type CSVReader struct {
	FilePath string
}

// NewCSVReader returns a CSVReader instance for a specified CSV file
func NewCSVReader(fp string) *CSVReader {
	return &CSVReader{
		FilePath: fp,
	}
}

// ReadHeader reads ONLY the header of the specified CSV file
func (r *CSVReader) ReadHeader() ([]string, error) {
	reader, err := r.open()
	if err != nil {
		return nil, err
	}

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading CSV header: empty file")
		}
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	return header, nil
}

// ReadAndProcessByRow reads a CSV file and hands every data row to processorFn.
// Rows keep the length they have in the file; callers pad or truncate.
func (r *CSVReader) ReadAndProcessByRow(processorFn func(line int, row []string) error) error {
	reader, err := r.open()
	if err != nil {
		return err
	}

	// Skip header
	if _, err = reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("reading CSV header: empty file")
		}
		return fmt.Errorf("reading CSV header: %w", err)
	}

	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break // end of file, stop
		}
		line++
		if err != nil {
			return fmt.Errorf("reading CSV row %d: %w", line, err)
		}

		if err = processorFn(line, row); err != nil {
			return err
		}
	}

	return nil
}

func (r *CSVReader) open() (*csv.Reader, error) {
	data, err := os.ReadFile(r.FilePath)
	if err != nil {
		return nil, fmt.Errorf("opening a csv file: %w", err)
	}

	decoded, _, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", r.FilePath, err)
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader, nil
}

// Encodings reported by Decode
const (
	EncodingUTF8        = "utf-8"
	EncodingUTF8BOM     = "utf-8-bom"
	EncodingUTF16       = "utf-16"
	EncodingWindows1252 = "windows-1252"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode converts exported CSV bytes to UTF-8. Byte order marks are honoured and
// stripped; bytes that are not valid UTF-8 are read as Windows-1252, which is what
// spreadsheet exports without a BOM usually are.
func Decode(data []byte) ([]byte, string, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return data[len(bomUTF8):], EncodingUTF8BOM, nil
	case bytes.HasPrefix(data, bomUTF16LE), bytes.HasPrefix(data, bomUTF16BE):
		dec := unicode.BOMOverride(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder())
		out, _, err := transform.Bytes(dec, data)
		if err != nil {
			return nil, "", fmt.Errorf("utf-16 decode: %w", err)
		}
		return out, EncodingUTF16, nil
	case utf8.Valid(data):
		return data, EncodingUTF8, nil
	}

	out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	if err != nil {
		return nil, "", fmt.Errorf("windows-1252 decode: %w", err)
	}
	return out, EncodingWindows1252, nil
}
