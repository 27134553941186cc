// Package pdf extrahiert Text aus PDF-Dateien für die Zusammenfassung.
package pdf

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// MaxPages begrenzt die Extraktion auf die ersten Seiten eines Dokuments.
	MaxPages = 20
	// MaxChars begrenzt die Textlänge, die an das Sprachmodell geht.
	MaxChars = 8000
)

// ExtractText liest den Text der ersten MaxPages Seiten einer PDF-Datei und
// kürzt das Ergebnis auf MaxChars Zeichen.
func ExtractText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("fehler beim Öffnen der PDF: %w", err)
	}
	defer f.Close()

	var content strings.Builder
	totalPages := r.NumPage()
	if totalPages > MaxPages {
		totalPages = MaxPages
	}

	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		content.WriteString(text)
		content.WriteString("\n")
	}

	result := strings.TrimSpace(content.String())
	if result == "" {
		return "", fmt.Errorf("kein Text in %s gefunden", filePath)
	}

	runes := []rune(result)
	if len(runes) > MaxChars {
		result = string(runes[:MaxChars])
	}
	return result, nil
}
