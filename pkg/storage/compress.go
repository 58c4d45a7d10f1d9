package storage

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/hts/bgzf"
	"github.com/klauspost/compress/zstd"
)

// Compression algorithms accepted for report artifacts.
const (
	CompressionNone = "none"
	CompressionZstd = "zstd"
)

// Suffix returns the filename suffix for a compression algorithm
func Suffix(algorithm string) string {
	if algorithm == CompressionZstd {
		return ".zst"
	}
	return ""
}

// Compress compresses data with the given algorithm
func Compress(data []byte, algorithm string) ([]byte, error) {
	switch algorithm {
	case CompressionNone, "":
		return data, nil
	case CompressionZstd:
		encoder, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		defer encoder.Close()
		return encoder.EncodeAll(data, make([]byte, 0, len(data))), nil
	default:
		return nil, fmt.Errorf("unsupported compression algorithm %q", algorithm)
	}
}

// Decompress expands data according to the path's compression suffix.
// .zst is zstd; .gz and .bgz are bgzip (the block-gzip variant produced by
// bgzip, standard for genomics tables). Other paths pass through unchanged.
func Decompress(path string, data []byte) ([]byte, error) {
	switch {
	case strings.HasSuffix(path, ".zst"):
		decoder, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		defer decoder.Close()
		out, err := io.ReadAll(decoder)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
		}
		return out, nil

	case strings.HasSuffix(path, ".gz"), strings.HasSuffix(path, ".bgz"):
		reader, err := bgzf.NewReader(bytes.NewReader(data), 0)
		if err != nil {
			return nil, fmt.Errorf("failed to open bgzip stream %s: %w", path, err)
		}
		defer reader.Close()
		out, err := io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
		}
		return out, nil

	default:
		return data, nil
	}
}
