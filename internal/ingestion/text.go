// Package ingestion turns resume files into analyzable plain text.
// PDF and DOCX files are parsed; anything else is treated as plain
// text. Extracted text is normalized but never lowercased or reflowed,
// since later heuristics depend on line structure and casing.
package ingestion

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrEmptyDocument is returned when a file parses but yields no text.
var ErrEmptyDocument = fmt.Errorf("document contains no extractable text")

// ReadFile reads a resume file and returns its cleaned text with
// metadata. The format is chosen by file extension.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("resume file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	return Read(data, filepath.Base(path))
}

// Read extracts text from resume file bytes. The filename's extension
// selects the parser: .pdf and .docx are parsed, everything else is
// read as plain text.
func Read(data []byte, filename string) (*Document, error) {
	var text string
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err = extractPDFText(data)
	case ".docx":
		text, err = extractDocxText(data)
	default:
		text = string(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to extract text from %s: %w", filename, err)
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return nil, fmt.Errorf("%s: %w", filename, ErrEmptyDocument)
	}

	return &Document{
		Filename: filename,
		Text:     cleaned,
		Metadata: NewMetadata(cleaned, filename),
	}, nil
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

var (
	spaceRunPattern  = regexp.MustCompile(`[ \t]+`)
	blankRunPattern  = regexp.MustCompile(`\n\n\n+`)
	docxTagPattern   = regexp.MustCompile(`<[^>]*>`)
	docxBreakPattern = regexp.MustCompile(`(?i)</w:p>|<w:br[^>]*/?>`)
)

// CleanText normalizes extracted resume text: line endings become LF,
// space runs collapse within lines, and runs of blank lines collapse
// to one blank line. Line boundaries and casing are preserved.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// DOCX content can arrive with raw WordprocessingML; map paragraph
	// breaks to newlines before stripping the remaining markup.
	if strings.Contains(content, "<w:") {
		content = docxBreakPattern.ReplaceAllString(content, "\n")
		content = docxTagPattern.ReplaceAllString(content, "")
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = spaceRunPattern.ReplaceAllString(line, " ")
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = blankRunPattern.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
