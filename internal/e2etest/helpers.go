package e2etest

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Text returns the whitespace-normalised text of the first element matching selector.
func Text(doc *goquery.Document, selector string) (string, error) {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", fmt.Errorf("element not found: %s", selector)
	}
	return strings.Join(strings.Fields(sel.Text()), " "), nil
}

// Texts returns the whitespace-normalised text of every element matching selector.
func Texts(doc *goquery.Document, selector string) []string {
	return doc.Find(selector).Map(func(_ int, s *goquery.Selection) string {
		return strings.Join(strings.Fields(s.Text()), " ")
	})
}
