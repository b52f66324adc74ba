package util

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// maxExtractedChars bounds what is kept from a document's text layer.
const maxExtractedChars = 20000

type PDFText struct {
	PageCount int
	Text      string
}

// ExtractPDFText reads the embedded text layer of a PDF held in memory.
// Pages whose text cannot be read are skipped; an error is returned only when
// the document itself cannot be opened.
func ExtractPDFText(data []byte) (*PDFText, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			continue
		}
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n\n")
		if sb.Len() >= maxExtractedChars {
			break
		}
	}

	text := strings.TrimSpace(sb.String())
	if runes := []rune(text); len(runes) > maxExtractedChars {
		text = string(runes[:maxExtractedChars])
	}
	return &PDFText{PageCount: doc.NumPage(), Text: text}, nil
}

func IsPDF(filename, contentType string) bool {
	if contentType == "application/pdf" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}
