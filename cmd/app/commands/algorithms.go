package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/allisson/hashcipher/internal/transform/domain"
	"github.com/allisson/hashcipher/internal/transform/http/dto"
	"github.com/allisson/hashcipher/internal/transform/service"
)

// RunAlgorithms writes the documented choices and every algorithm name the providers
// accept. The JSON form matches GET /v1/transform/algorithms.
func RunAlgorithms(w io.Writer, format string) error {
	response := dto.MapAlgorithmsResponse(
		domain.DefaultCatalog(),
		service.DigestNames(),
		service.CipherNames(),
	)

	if format == "json" {
		return writeJSON(w, response)
	}
	return outputAlgorithmsText(w, response)
}

// outputAlgorithmsText outputs the catalog in human-readable text format.
func outputAlgorithmsText(w io.Writer, response dto.AlgorithmsResponse) error {
	var b strings.Builder

	writeChoices(&b, "Hash algorithms", response.Hash)
	writeChoices(&b, "Cipher algorithms", response.Cipher)
	writeChoices(&b, "Output formats", response.OutputFormat)

	fmt.Fprintf(&b, "Accepted hash names:\n  %s\n\n", strings.Join(response.SupportedHash, ", "))
	fmt.Fprintf(&b, "Accepted cipher names:\n  %s\n", strings.Join(response.SupportedCipher, ", "))

	_, err := io.WriteString(w, b.String())
	return err
}

func writeChoices(b *strings.Builder, title string, choices []domain.Choice) {
	fmt.Fprintf(b, "%s:\n", title)
	for _, choice := range choices {
		fmt.Fprintf(b, "  %-20s %s\n", choice.Value, choice.Text)
	}
	b.WriteString("\n")
}
