package validation

import (
	"strings"
	"testing"
)

func TestValidateFacetName(t *testing.T) {
	tests := []struct {
		name     string
		facet    string
		expected bool
	}{
		{
			name:     "single word",
			facet:    "Industry",
			expected: true,
		},
		{
			name:     "two words",
			facet:    "Company Size",
			expected: true,
		},
		{
			name:     "digits allowed",
			facet:    "Tier 2",
			expected: true,
		},
		{
			name:     "empty string",
			facet:    "",
			expected: false,
		},
		{
			name:     "leading space",
			facet:    " Industry",
			expected: false,
		},
		{
			name:     "double space",
			facet:    "Company  Size",
			expected: false,
		},
		{
			name:     "punctuation",
			facet:    "Industry;DROP",
			expected: false,
		},
		{
			name:     "too long",
			facet:    strings.Repeat("a", 65),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateFacetName(tt.facet); got != tt.expected {
				t.Errorf("ValidateFacetName(%q) = %v, want %v", tt.facet, got, tt.expected)
			}
		})
	}
}

func TestValidateFacetValue(t *testing.T) {
	if !ValidateFacetValue("Privately Held") {
		t.Error("ordinary value rejected")
	}
	if !ValidateFacetValue("") {
		t.Error("empty value should be allowed (treated as All)")
	}
	if ValidateFacetValue(strings.Repeat("x", 257)) {
		t.Error("overlong value accepted")
	}
}
