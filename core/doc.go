// Package core contains the business logic of the catalog client.
// It is designed to be framework-agnostic and can be used independently
// of the root facade.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Description, FieldRule, Pagination, etc.)
// - description: Description document resolution and autodiscovery
// - search: Search URL construction and query execution
// - result: Entry field filtering and pagination extraction
// - feed: Typed feed summaries over raw results
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No HTTP transport or logging backend dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are immutable once constructed
//
// # Usage Example
//
//	import (
//	    "geocatalog-client/core/description"
//	    "geocatalog-client/core/interfaces"
//	    "geocatalog-client/core/search"
//	)
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	resolver := description.NewResolver(deps)
//	desc, err := resolver.Resolve(ctx, "https://catalog.example.org/description.xml")
//	if err != nil {
//	    // handle error
//	}
//
//	searcher := search.NewService(deps)
//	raw, err := searcher.Search(ctx, desc, params, nil)
package core
