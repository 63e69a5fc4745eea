// ABOUTME: Decodes OGC OWS exception reports out of error response bodies
// ABOUTME: Surfaces catalog-side failure detail inside FetchError

package search

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"

	"geocatalog-client/core/domain"
)

// decodeExceptionReport extracts human-readable exception detail from an
// error body. Geospatial catalogs commonly answer failed searches with an
// OWS exception report; a body that is not one yields nil.
func decodeExceptionReport(body []byte) []string {
	doc, err := xmlquery.Parse(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	var detail []string
	for _, n := range xmlquery.Find(doc, "//*[local-name()='Exception']") {
		if n.NamespaceURI != domain.NSOWS {
			continue
		}
		msg := n.SelectAttr("exceptionCode")
		if locator := n.SelectAttr("locator"); locator != "" {
			msg = fmt.Sprintf("%s (locator %s)", msg, locator)
		}
		if text := exceptionText(n); text != "" {
			msg = fmt.Sprintf("%s: %s", msg, text)
		}
		if msg != "" {
			detail = append(detail, msg)
		}
	}

	// SOAP fault texts appear in some older catalogs.
	for _, n := range xmlquery.Find(doc, "//*[local-name()='Text']") {
		if n.NamespaceURI == "http://www.w3.org/2003/05/soap-envelope" {
			if text := strings.TrimSpace(n.InnerText()); text != "" {
				detail = append(detail, text)
			}
		}
	}

	return detail
}

// exceptionText returns the trimmed ExceptionText child content, if any.
func exceptionText(exception *xmlquery.Node) string {
	for child := exception.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode && child.Data == "ExceptionText" {
			return strings.TrimSpace(child.InnerText())
		}
	}
	return ""
}
