// Package loader resolves document paths and extracts their text.
package loader

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DefaultExtensions lists the file types read when no configuration overrides them.
var DefaultExtensions = []string{".txt", ".md", ".html", ".xhtml", ".xml", ".pdf"}

// Loader expands globs and directories into document paths and reads them as text.
type Loader struct {
	extensions map[string]struct{}
}

// New creates a Loader whose directory walks keep files with the given
// extensions (".txt" or "txt"). No extensions means DefaultExtensions.
func New(extensions []string) *Loader {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	return &Loader{extensions: set}
}

// Expand resolves glob patterns, files and directories to document paths, in
// first-seen order and without duplicates. Only files found by walking a
// directory are filtered by extension; named files and glob matches are kept.
func (l *Loader) Expand(patterns []string) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})
	add := func(p string) {
		p = filepath.Clean(p)
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("Expand: bad pattern %q: %w", pattern, err)
		}
		if matches == nil {
			matches = []string{pattern}
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil {
				return nil, fmt.Errorf("Expand: cannot stat %s: %w", m, err)
			}
			if !info.IsDir() {
				add(m)
				continue
			}
			err = filepath.WalkDir(m, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.Type().IsRegular() && l.accepts(path) {
					add(path)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("Expand: failed walking the directory %s: %w", m, err)
			}
		}
	}
	return out, nil
}

// Read returns the text of the document at path, dispatching on its extension.
// Unknown extensions are read as plain text.
func (l *Loader) Read(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".xhtml", ".xml", ".svg":
		return readMarkup(path)
	case ".pdf":
		return readPDF(path)
	default:
		return readText(path)
	}
}

func (l *Loader) accepts(path string) bool {
	_, ok := l.extensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("ReadText: failed reading %s: %w", path, err)
	}
	return string(data), nil
}

// readMarkup collects the character data of an HTML or XML document,
// skipping script and style elements.
func readMarkup(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("ReadMarkup: failed reading %s: %w", path, err)
	}
	defer f.Close()

	dec := xml.NewDecoder(f)
	dec.Strict = false
	dec.AutoClose = xml.HTMLAutoClose
	dec.Entity = xml.HTMLEntity

	var sb strings.Builder
	skip := 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("ReadMarkup: failed parsing %s: %w", path, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if isHidden(t.Name.Local) {
				skip++
			}
		case xml.EndElement:
			if isHidden(t.Name.Local) && skip > 0 {
				skip--
			}
		case xml.CharData:
			if skip == 0 {
				sb.Write(t)
				sb.WriteString(" ")
			}
		}
	}
	return sb.String(), nil
}

func isHidden(name string) bool {
	switch strings.ToLower(name) {
	case "script", "style":
		return true
	}
	return false
}

func readPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("ReadPDF: failed opening %s: %w", path, err)
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("ReadPDF: failed extracting text from %s: %w", path, err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("ReadPDF: failed reading text from %s: %w", path, err)
	}
	return buf.String(), nil
}
