// Package geocatalog is a client library for querying OpenSearch-compliant
// geospatial and Earth-observation catalogs.
//
// The client resolves an OpenSearch description document, builds
// parameterized search URLs from its template, issues synchronous HTTP
// searches (optionally with basic auth) and extracts whitelisted fields
// from the Atom-formatted results.
//
// Construction performs no I/O; the description is fetched by Resolve
// (or by Connect, which combines both steps):
//
//	client, err := geocatalog.Connect(ctx, "https://catalog.example.org/description.xml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	raw, err := client.Search(ctx, map[string]string{
//	    "{searchTerms}": "flood",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	entries, err := client.FilterEntries(raw, []geocatalog.FieldRule{
//	    {Tag: geocatalog.AtomTag("id"), Name: "id"},
//	    {Tag: geocatalog.AtomTag("title"), Name: "title"},
//	    {Tag: geocatalog.AtomTag("link"), Name: "download",
//	        AttrMatch: &geocatalog.AttrMatch{Key: "rel", Value: "enclosure"}},
//	})
package geocatalog
