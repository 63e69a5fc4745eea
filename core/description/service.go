// ABOUTME: Description resolver fetches and parses OpenSearch description documents
// ABOUTME: Also discovers description URLs from endpoints via autodiscovery links

package description

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/xmlquery"

	"geocatalog-client/core/domain"
	cerrors "geocatalog-client/core/errors"
	"geocatalog-client/core/interfaces"
)

// descriptionMIME is the media type of OpenSearch description documents,
// used for autodiscovery link matching.
const descriptionMIME = "application/opensearchdescription+xml"

// resultTypePreference orders Url elements by result media type. When a
// description declares several templates, the first element in document
// order of the most preferred type wins.
var resultTypePreference = []string{
	"application/atom+xml",
	"application/rss+xml",
	"text/html",
}

// Resolver fetches and parses OpenSearch description documents.
type Resolver struct {
	deps interfaces.Dependencies
}

// NewResolver creates a new description resolver.
func NewResolver(deps interfaces.Dependencies) *Resolver {
	return &Resolver{deps: deps}
}

// Resolve fetches the description document at descriptionURL and extracts
// the search URL template and its parameters. It performs exactly one
// synchronous GET and never retries.
func (r *Resolver) Resolve(ctx context.Context, descriptionURL string) (*domain.Description, error) {
	if r.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}
	if descriptionURL == "" {
		return nil, errors.New("description URL cannot be empty")
	}

	body, err := r.fetch(ctx, descriptionURL)
	if err != nil {
		return nil, err
	}

	doc, err := xmlquery.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &cerrors.ParseError{Source: "description", Err: err}
	}

	urlNode := selectTemplateNode(doc)
	if urlNode == nil {
		return nil, &cerrors.ParseError{
			Source: "description",
			Err:    errors.New("no Url element with a template attribute"),
		}
	}

	template := urlNode.SelectAttr("template")
	params := ScanPlaceholders(template)
	enrichFromExtension(urlNode, params)

	desc := &domain.Description{
		URL:        descriptionURL,
		Template:   template,
		Parameters: params,
	}

	r.deps.Log().Debug("resolved description", map[string]interface{}{
		"url":        descriptionURL,
		"template":   template,
		"parameters": len(params),
	})

	return desc, nil
}

// Discover finds the description URL advertised by a search endpoint.
// Atom feeds link it via <link rel="search" type="application/opensearchdescription+xml">,
// HTML pages via the equivalent <link> element in the document head.
// Relative hrefs are resolved against the endpoint URL.
func (r *Resolver) Discover(ctx context.Context, endpoint string) (string, error) {
	if r.deps.HTTPClient == nil {
		return "", errors.New("HTTP client not configured")
	}

	body, err := r.fetch(ctx, endpoint)
	if err != nil {
		return "", err
	}

	href := discoveryLinkFromXML(body)
	if href == "" {
		href, err = discoveryLinkFromHTML(body)
		if err != nil {
			return "", &cerrors.ParseError{Source: "endpoint", Err: err}
		}
	}
	if href == "" {
		return "", &cerrors.ParseError{
			Source: "endpoint",
			Err:    errors.New("no opensearch description link found"),
		}
	}

	abs, err := absoluteURL(endpoint, href)
	if err != nil {
		return "", &cerrors.ParseError{Source: "endpoint", Err: err}
	}

	r.deps.Log().Debug("discovered description URL", map[string]interface{}{
		"endpoint": endpoint,
		"url":      abs,
	})

	return abs, nil
}

// fetch performs one GET and returns the body, mapping transport failures
// and non-2xx statuses to FetchError.
func (r *Resolver) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	resp, err := r.deps.HTTPClient.Get(ctx, rawURL)
	if err != nil {
		return nil, &cerrors.FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &cerrors.FetchError{URL: rawURL, Err: err}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &cerrors.FetchError{URL: rawURL, StatusCode: resp.StatusCode()}
	}

	return body, nil
}

// selectTemplateNode picks the Url element to use. Elements outside the
// OpenSearch namespace are ignored unless the document declares none in it.
func selectTemplateNode(doc *xmlquery.Node) *xmlquery.Node {
	all := xmlquery.Find(doc, "//*[local-name()='Url']")

	var candidates []*xmlquery.Node
	for _, n := range all {
		if n.SelectAttr("template") == "" {
			continue
		}
		if n.NamespaceURI == domain.NSOpenSearch || n.NamespaceURI == "" {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	for _, wanted := range resultTypePreference {
		for _, n := range candidates {
			if strings.HasPrefix(n.SelectAttr("type"), wanted) {
				return n
			}
		}
	}
	return candidates[0]
}

// enrichFromExtension copies metadata from OpenSearch parameter-extension
// children of the Url element onto the scanned parameters.
func enrichFromExtension(urlNode *xmlquery.Node, params []domain.Parameter) {
	for child := urlNode.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode || child.Data != "Parameter" {
			continue
		}
		value := child.SelectAttr("value")
		if value == "" {
			continue
		}
		for i := range params {
			if !strings.Contains(value, params[i].Name) {
				continue
			}
			applyParameterNode(&params[i], child)
			break
		}
	}
}

// applyParameterNode fills one parameter from its extension element.
func applyParameterNode(p *domain.Parameter, node *xmlquery.Node) {
	if name := node.SelectAttr("name"); name != "" {
		p.FormName = name
	}
	if title := node.SelectAttr("title"); title != "" {
		p.Title = title
	}
	p.Pattern = node.SelectAttr("pattern")
	p.Minimum = node.SelectAttr("minimum")
	p.MinInclusive = node.SelectAttr("minInclusive")
	p.MaxInclusive = node.SelectAttr("maxInclusive")

	var options map[string]string
	for opt := node.FirstChild; opt != nil; opt = opt.NextSibling {
		if opt.Type != xmlquery.ElementNode || opt.Data != "Option" {
			continue
		}
		value := opt.SelectAttr("value")
		label := opt.SelectAttr("label")
		if label == "" {
			label = value
		}
		if options == nil {
			options = make(map[string]string)
		}
		options[label] = value
	}
	if options != nil {
		p.Type = domain.ParamSelect
		p.Options = options
	}
}

// discoveryLinkFromXML looks for the autodiscovery link in an Atom or
// RSS body. Returns "" when the body is not XML or carries no link.
func discoveryLinkFromXML(body []byte) string {
	doc, err := xmlquery.Parse(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	for _, n := range xmlquery.Find(doc, "//*[local-name()='link']") {
		if n.SelectAttr("rel") == "search" && n.SelectAttr("type") == descriptionMIME {
			if href := n.SelectAttr("href"); href != "" {
				return href
			}
		}
	}
	return ""
}

// discoveryLinkFromHTML looks for the autodiscovery link element in an
// HTML page head.
func discoveryLinkFromHTML(body []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	href, _ := doc.Find(`link[rel="search"][type="application/opensearchdescription+xml"]`).Attr("href")
	return href, nil
}

// absoluteURL resolves href against base when href is relative.
func absoluteURL(base, href string) (string, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", err
	}
	if ref.IsAbs() {
		return href, nil
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	return baseURL.ResolveReference(ref).String(), nil
}
