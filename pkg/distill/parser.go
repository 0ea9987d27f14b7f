package distill

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat is returned for uploads that are neither PDF nor DOCX.
var ErrUnsupportedFormat = errors.New("unsupported file format: only pdf and docx are allowed")

// ExtractText pulls plain text out of an uploaded document. The format is
// chosen by file extension.
func ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractTextFromPDF(data)
	case ".docx":
		return extractTextFromDocx(data)
	default:
		return "", ErrUnsupportedFormat
	}
}

func extractTextFromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return normalizeWhitespace(buf.String()), nil
}

// extractTextFromDocx reads word/document.xml out of the archive and collects
// the <w:t> text runs, one line per paragraph. Lesson material rarely uses
// anything beyond paragraphs, runs and tabs, so headers, tables and drawings
// are ignored.
func extractTextFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", err
			}
			defer rc.Close()
			docXML, err = io.ReadAll(rc)
			if err != nil {
				return "", err
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", errors.New("docx archive has no document body")
	}

	var b strings.Builder
	for _, para := range strings.Split(string(docXML), "</w:p>") {
		for _, m := range docxTokens.FindAllStringSubmatch(para, -1) {
			if strings.HasPrefix(m[0], "<w:tab") {
				b.WriteString(" ")
				continue
			}
			b.WriteString(docxEntities.Replace(m[1]))
		}
		b.WriteString("\n")
	}
	return normalizeWhitespace(b.String()), nil
}

var (
	// docxTokens matches a text run or an inline tab.
	docxTokens  = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>|<w:tab/>`)
	blankRuns   = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRuns = regexp.MustCompile(`\n+`)
)

var docxEntities = strings.NewReplacer(
	"&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'",
)

func normalizeWhitespace(s string) string {
	s = blankRuns.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = newlineRuns.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
