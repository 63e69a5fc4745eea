package description

import (
	"context"
	"errors"
	"testing"

	"geocatalog-client/core/domain"
	cerrors "geocatalog-client/core/errors"
	"geocatalog-client/core/interfaces"
)

const descriptionXML = `<?xml version="1.0" encoding="UTF-8"?>
<OpenSearchDescription xmlns="http://a9.com/-/spec/opensearch/1.1/"
    xmlns:param="http://a9.com/-/spec/opensearch/extensions/parameters/1.0/">
  <ShortName>Example Catalog</ShortName>
  <Url type="text/html"
      template="https://catalog.example.org/html?q={searchTerms}"/>
  <Url type="application/atom+xml"
      template="https://catalog.example.org/search?q={searchTerms}&amp;instrument={eop:instrument?}">
    <param:Parameter name="q" value="{searchTerms}" title="Free text query"/>
    <param:Parameter name="instrument" value="{eop:instrument}" title="Instrument">
      <param:Option value="SAR" label="Radar"/>
      <param:Option value="MSI"/>
    </param:Parameter>
  </Url>
  <Url type="application/rss+xml"
      template="https://catalog.example.org/rss?q={searchTerms}"/>
</OpenSearchDescription>`

func clientReturning(status int, body string) *mockHTTPClient {
	return &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: status, body: body}, nil
		},
	}
}

func TestNewResolver(t *testing.T) {
	resolver := NewResolver(interfaces.Dependencies{})

	if resolver == nil {
		t.Error("NewResolver returned nil")
	}
}

func TestResolve_PrefersAtomTemplate(t *testing.T) {
	resolver := NewResolver(interfaces.Dependencies{
		HTTPClient: clientReturning(200, descriptionXML),
	})

	desc, err := resolver.Resolve(context.Background(), "https://catalog.example.org/description.xml")

	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if desc.Template != "https://catalog.example.org/search?q={searchTerms}&instrument={eop:instrument?}" {
		t.Errorf("Template = %v, Atom Url should win over text/html and rss", desc.Template)
	}
}

func TestResolve_ParameterCount(t *testing.T) {
	resolver := NewResolver(interfaces.Dependencies{
		HTTPClient: clientReturning(200, descriptionXML),
	})

	desc, err := resolver.Resolve(context.Background(), "https://catalog.example.org/description.xml")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if len(desc.Parameters) != 2 {
		t.Fatalf("Parameters = %d, want 2", len(desc.Parameters))
	}

	q, ok := desc.Param("searchTerms")
	if !ok || q.Optional {
		t.Error("searchTerms should be declared and required")
	}
	instrument, ok := desc.Param("eop:instrument")
	if !ok || !instrument.Optional {
		t.Error("eop:instrument should be declared and optional")
	}
}

func TestResolve_ParameterExtensionMetadata(t *testing.T) {
	resolver := NewResolver(interfaces.Dependencies{
		HTTPClient: clientReturning(200, descriptionXML),
	})

	desc, err := resolver.Resolve(context.Background(), "https://catalog.example.org/description.xml")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	instrument, _ := desc.Param("eop:instrument")
	if instrument.Title != "Instrument" {
		t.Errorf("Title = %v, want Instrument", instrument.Title)
	}
	if instrument.FormName != "instrument" {
		t.Errorf("FormName = %v, want instrument", instrument.FormName)
	}
	if instrument.Type != domain.ParamSelect {
		t.Errorf("Type = %v, want %v", instrument.Type, domain.ParamSelect)
	}
	if instrument.Options["Radar"] != "SAR" {
		t.Errorf("Options[Radar] = %v, want SAR", instrument.Options["Radar"])
	}
	if instrument.Options["MSI"] != "MSI" {
		t.Error("Option without label should use its value as label")
	}

	q, _ := desc.Param("searchTerms")
	if q.Title != "Free text query" || q.FormName != "q" {
		t.Errorf("searchTerms extension metadata not applied: %+v", q)
	}
}

func TestResolve_TransportError(t *testing.T) {
	resolver := NewResolver(interfaces.Dependencies{
		HTTPClient: &mockHTTPClient{
			getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
				return nil, errors.New("connection refused")
			},
		},
	})

	_, err := resolver.Resolve(context.Background(), "https://catalog.example.org/description.xml")

	if !cerrors.IsFetch(err) {
		t.Errorf("Resolve error = %v, want FetchError", err)
	}
}

func TestResolve_NonSuccessStatus(t *testing.T) {
	resolver := NewResolver(interfaces.Dependencies{
		HTTPClient: clientReturning(404, "not found"),
	})

	_, err := resolver.Resolve(context.Background(), "https://catalog.example.org/description.xml")

	if !cerrors.IsFetch(err) {
		t.Fatalf("Resolve error = %v, want FetchError", err)
	}
	var fetchErr *cerrors.FetchError
	errors.As(err, &fetchErr)
	if fetchErr.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", fetchErr.StatusCode)
	}
}

func TestResolve_MalformedXML(t *testing.T) {
	resolver := NewResolver(interfaces.Dependencies{
		HTTPClient: clientReturning(200, "<OpenSearchDescription><Url template="),
	})

	_, err := resolver.Resolve(context.Background(), "https://catalog.example.org/description.xml")

	if !cerrors.IsParse(err) {
		t.Errorf("Resolve error = %v, want ParseError", err)
	}
}

func TestResolve_NoTemplate(t *testing.T) {
	xml := `<OpenSearchDescription xmlns="http://a9.com/-/spec/opensearch/1.1/">
	  <ShortName>No templates here</ShortName>
	</OpenSearchDescription>`
	resolver := NewResolver(interfaces.Dependencies{
		HTTPClient: clientReturning(200, xml),
	})

	_, err := resolver.Resolve(context.Background(), "https://catalog.example.org/description.xml")

	if !cerrors.IsParse(err) {
		t.Errorf("Resolve error = %v, want ParseError", err)
	}
}

func TestResolve_FirstAtomURLWins(t *testing.T) {
	xml := `<OpenSearchDescription xmlns="http://a9.com/-/spec/opensearch/1.1/">
	  <Url type="application/atom+xml" template="https://catalog.example.org/a?q={searchTerms}"/>
	  <Url type="application/atom+xml" template="https://catalog.example.org/b?q={searchTerms}"/>
	</OpenSearchDescription>`
	resolver := NewResolver(interfaces.Dependencies{
		HTTPClient: clientReturning(200, xml),
	})

	desc, err := resolver.Resolve(context.Background(), "https://catalog.example.org/description.xml")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if desc.Template != "https://catalog.example.org/a?q={searchTerms}" {
		t.Errorf("Template = %v, first declared Atom Url should win", desc.Template)
	}
}

func TestResolve_EmptyURL(t *testing.T) {
	resolver := NewResolver(interfaces.Dependencies{HTTPClient: &mockHTTPClient{}})

	_, err := resolver.Resolve(context.Background(), "")

	if err == nil {
		t.Error("Resolve should return error for empty description URL")
	}
}

func TestResolve_NoHTTPClient(t *testing.T) {
	resolver := NewResolver(interfaces.Dependencies{})

	_, err := resolver.Resolve(context.Background(), "https://catalog.example.org/description.xml")

	if err == nil {
		t.Error("Resolve should return error without an HTTP client")
	}
}

func TestDiscover_FromAtomFeed(t *testing.T) {
	feed := `<feed xmlns="http://www.w3.org/2005/Atom">
	  <title>results</title>
	  <link rel="search" type="application/opensearchdescription+xml"
	      href="https://catalog.example.org/description.xml"/>
	</feed>`
	resolver := NewResolver(interfaces.Dependencies{
		HTTPClient: clientReturning(200, feed),
	})

	url, err := resolver.Discover(context.Background(), "https://catalog.example.org/opensearch")

	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if url != "https://catalog.example.org/description.xml" {
		t.Errorf("Discover = %v, want the advertised description URL", url)
	}
}

func TestDiscover_FromHTMLPage(t *testing.T) {
	page := `<!DOCTYPE html>
	<html><head>
	  <title>Catalog</title>
	  <link rel="search" type="application/opensearchdescription+xml" href="/opensearch/description.xml">
	</head><body><p>welcome</body></html>`
	resolver := NewResolver(interfaces.Dependencies{
		HTTPClient: clientReturning(200, page),
	})

	url, err := resolver.Discover(context.Background(), "https://catalog.example.org/portal/")

	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if url != "https://catalog.example.org/opensearch/description.xml" {
		t.Errorf("Discover = %v, relative href should resolve against the endpoint", url)
	}
}

func TestDiscover_NoLink(t *testing.T) {
	resolver := NewResolver(interfaces.Dependencies{
		HTTPClient: clientReturning(200, "<html><head></head><body>nothing</body></html>"),
	})

	_, err := resolver.Discover(context.Background(), "https://catalog.example.org/portal/")

	if !cerrors.IsParse(err) {
		t.Errorf("Discover error = %v, want ParseError", err)
	}
}
