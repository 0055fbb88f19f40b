package payload

import (
	"bytes"
	"errors"
	"testing"
)

func TestBuild(t *testing.T) {
	stream, err := Build([]byte("hello"), ".txt")
	if err != nil {
		t.Fatalf("Error building stream: %s", err)
	}
	expected := []byte{0, 0, 0, 5, 'h', 'e', 'l', 'l', 'o', '.', 't', 'x', 't', 0}
	if !bytes.Equal(stream, expected) {
		t.Errorf("Built stream was %v, expected %v", stream, expected)
	}
	if len(stream) != StreamSize(5, 4) {
		t.Errorf("StreamSize disagrees with built stream: %d vs %d", StreamSize(5, 4), len(stream))
	}
}

func TestBuildRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		file      []byte
		extension string
		err       error
	}{
		{"empty file", nil, ".txt", ErrEmptyFile},
		{"no dot", []byte("a"), "txt", ErrInvalidExtension},
		{"only dot", []byte("a"), ".", ErrInvalidExtension},
		{"empty extension", []byte("a"), "", ErrInvalidExtension},
		{"non alphanumeric", []byte("a"), ".t-t", ErrInvalidExtension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.file, tt.extension)
			if !errors.Is(err, tt.err) {
				t.Errorf("Expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestBuildParseRoundTrip(t *testing.T) {
	for _, ext := range []string{".txt", ".tar.gz", ".PNG", ".7z"} {
		file := []byte("some\x00binary\x00content.with dots")
		stream, err := Build(file, ext)
		if err != nil {
			t.Fatalf("Error building stream for %s: %s", ext, err)
		}
		p, err := Parse(stream)
		if err != nil {
			t.Fatalf("Error parsing stream for %s: %s", ext, err)
		}
		if !bytes.Equal(p.Data, file) || p.Extension != ext {
			t.Errorf("Round trip for %s produced %q %q", ext, p.Data, p.Extension)
		}
		if p.DeclaredSize != uint32(len(file)) || p.StreamSize != len(stream) {
			t.Errorf("Unexpected sizes declared=%d stream=%d", p.DeclaredSize, p.StreamSize)
		}
	}
}

func TestParseIgnoresTrailingBytes(t *testing.T) {
	stream, _ := Build([]byte("abc"), ".md")
	padded := append(append([]byte{}, stream...), 0xFF, 0x13, 0x00)
	p, err := Parse(padded)
	if err != nil {
		t.Fatalf("Error parsing padded stream: %s", err)
	}
	if p.StreamSize != len(stream) || p.Extension != ".md" {
		t.Errorf("Expected stream size %d and .md, got %d and %s", len(stream), p.StreamSize, p.Extension)
	}
}

func TestParseRejectsMalformedStreams(t *testing.T) {
	valid, _ := Build([]byte("hello"), ".txt")

	tests := map[string][]byte{
		"missing terminator":     valid[:len(valid)-1],
		"non alphanumeric":       append(append([]byte{}, valid[:10]...), '$', 't', 0),
		"empty extension":        {0, 0, 0, 1, 'x', '.', 0},
		"no dot":                 {0, 0, 0, 1, 'x', 't', 'x', 't', 0},
		"zero length":            {0, 0, 0, 0, '.', 't', 0},
		"shorter than declared":  {0, 0, 0, 9, 'x', '.', 't', 0},
		"shorter than prefix":    {0, 0},
		"declared past the end":  {0xFF, 0xFF, 0xFF, 0xFF, '.', 'a', 0},
		"terminator immediately": {0, 0, 0, 1, 'x'},
	}
	for name, stream := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(stream); !errors.Is(err, ErrMalformedPayload) {
				t.Errorf("Expected ErrMalformedPayload, got %v", err)
			}
		})
	}
}

func TestExtensionScanStopsAtFirstNUL(t *testing.T) {
	stream := []byte{0, 0, 0, 1, 'x', '.', 'a', 0, 'b', 0}
	p, err := Parse(stream)
	if err != nil {
		t.Fatalf("Error parsing: %s", err)
	}
	if p.Extension != ".a" {
		t.Errorf("Expected .a, got %s", p.Extension)
	}
}

func TestExtensionFromName(t *testing.T) {
	ext, err := ExtensionFromName("dir.v2/secret.tar.gz")
	if err != nil || ext != ".gz" {
		t.Errorf("Expected .gz, got %q (%v)", ext, err)
	}
	if _, err = ExtensionFromName("dir.v2/README"); !errors.Is(err, ErrMissingExtension) {
		t.Errorf("Expected ErrMissingExtension, got %v", err)
	}
	if FileName("out", ".txt") != "out.txt" {
		t.Errorf("Unexpected output name %s", FileName("out", ".txt"))
	}
}
