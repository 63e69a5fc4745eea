package description

import (
	"testing"

	"geocatalog-client/core/domain"
)

func TestScanPlaceholders_RequiredAndOptional(t *testing.T) {
	template := "https://example.org/search?instrument={eop:instrument?}&q={searchTerms}"

	params := ScanPlaceholders(template)

	if len(params) != 2 {
		t.Fatalf("ScanPlaceholders returned %d parameters, want 2", len(params))
	}

	if params[0].Token != "{eop:instrument?}" {
		t.Errorf("first token = %v, want {eop:instrument?}", params[0].Token)
	}
	if !params[0].Optional {
		t.Error("eop:instrument should be optional")
	}
	if params[0].Prefix != "eop" || params[0].Local != "instrument" {
		t.Errorf("prefix/local = %v/%v, want eop/instrument", params[0].Prefix, params[0].Local)
	}

	if params[1].Token != "{searchTerms}" {
		t.Errorf("second token = %v, want {searchTerms}", params[1].Token)
	}
	if params[1].Optional {
		t.Error("searchTerms should be required")
	}
	if params[1].Prefix != "" {
		t.Errorf("searchTerms prefix = %v, want empty", params[1].Prefix)
	}
}

func TestScanPlaceholders_CountMatchesTemplate(t *testing.T) {
	// 2 required + 3 optional placeholders
	template := "https://example.org/search?q={searchTerms}&bbox={geo:box?}" +
		"&start={time:start?}&end={time:end?}&page={startPage}"

	params := ScanPlaceholders(template)

	if len(params) != 5 {
		t.Fatalf("ScanPlaceholders returned %d parameters, want 5", len(params))
	}

	optional := 0
	for _, p := range params {
		if p.Optional {
			optional++
		}
	}
	if optional != 3 {
		t.Errorf("optional count = %d, want 3", optional)
	}
}

func TestScanPlaceholders_NoPlaceholders(t *testing.T) {
	params := ScanPlaceholders("https://example.org/search?q=fixed")

	if len(params) != 0 {
		t.Errorf("ScanPlaceholders returned %d parameters, want 0", len(params))
	}
}

func TestScanPlaceholders_DuplicateTokens(t *testing.T) {
	template := "https://example.org/{searchTerms}/search?q={searchTerms}"

	params := ScanPlaceholders(template)

	if len(params) != 1 {
		t.Errorf("duplicate tokens should collapse, got %d parameters", len(params))
	}
}

func TestScanPlaceholders_TimeTokensFlaggedAsDate(t *testing.T) {
	params := ScanPlaceholders("https://example.org/search?start={time:start?}&q={searchTerms}")

	for _, p := range params {
		switch p.Name {
		case "time:start":
			if p.Type != domain.ParamDate {
				t.Errorf("time:start type = %v, want %v", p.Type, domain.ParamDate)
			}
		case "searchTerms":
			if p.Type != domain.ParamText {
				t.Errorf("searchTerms type = %v, want %v", p.Type, domain.ParamText)
			}
		}
	}
}
