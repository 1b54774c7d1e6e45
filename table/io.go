/*
 * io.go, part of geoanal.
 *
 * Copyright 2024 The geoanal authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package table

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Extensions returns the table formats supported for saving.
func Extensions() []string {
	return []string{".csv", ".json", ".xlsx", ".txt", ".bolt"}
}

// splitExt returns the format extension and the compression suffix, if any, of filename.
// i.e. "a.csv.zst" gives ".csv" and ".zst".
func splitExt(filename string) (format, compression string) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".zst" || ext == ".gz" {
		compression = ext
		ext = strings.ToLower(filepath.Ext(strings.TrimSuffix(filename, filepath.Ext(filename))))
	}
	return ext, compression
}

// Save writes t to filename, in the format given by its extension. A .zst or .gz suffix
// after the extension compresses the file with z-standard or gzip.
func Save(t *Table, filename string) error {
	format, compression := splitExt(filename)
	if format == ".bolt" {
		if compression != "" {
			return &UnsupportedFormatError{Ext: format + compression, deco: []string{"Save"}}
		}
		return saveBolt(t, filename)
	}
	var enc func(*Table, io.Writer) error
	switch format {
	case ".csv":
		enc = writeCSV
	case ".json":
		enc = writeJSON
	case ".xlsx":
		enc = writeXLSX
	case ".txt":
		enc = writeText
	default:
		return &UnsupportedFormatError{Ext: format, deco: []string{"Save"}}
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	w, err := compressor(f, compression)
	if err != nil {
		f.Close()
		return err
	}
	if err = enc(t, w); err != nil {
		w.Close()
		f.Close()
		return err
	}
	if err = w.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a table saved in the .csv, .json or .bolt formats, possibly compressed. The table
// gets the given name. For .bolt files, name is also the name of the bucket to read.
func Load(filename, name string) (*Table, error) {
	format, compression := splitExt(filename)
	if format == ".bolt" {
		if compression != "" {
			return nil, &UnsupportedFormatError{Ext: format + compression, deco: []string{"Load"}}
		}
		return loadBolt(filename, name)
	}
	var dec func(string, io.Reader) (*Table, error)
	switch format {
	case ".csv":
		dec = readCSV
	case ".json":
		dec = readJSON
	default:
		return nil, &UnsupportedFormatError{Ext: format, deco: []string{"Load"}}
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := decompressor(f, compression)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return dec(name, r)
}

// LoadOrNew loads the table from filename if the file exists, and returns a new empty
// table otherwise.
func LoadOrNew(filename, name string) (*Table, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return New(name), nil
	}
	return Load(filename, name)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func compressor(w io.Writer, compression string) (io.WriteCloser, error) {
	switch compression {
	case ".zst":
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case ".gz":
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	}
	return nopCloser{w}, nil
}

// zstd.Decoder doesn't implement io.ReadCloser.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

func decompressor(r io.Reader, compression string) (io.ReadCloser, error) {
	switch compression {
	case ".zst":
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdCloser{d}, nil
	case ".gz":
		return gzip.NewReader(r)
	}
	return io.NopCloser(r), nil
}
