package formatters

import (
	"encoding/json"
	"strings"
	"testing"

	"cvscore/internal/types"
)

func sampleAnalysisResult() types.AnalysisResult {
	return types.AnalysisResult{
		Score:   72,
		Summary: "Good resume with room for improvement. Focus on the areas highlighted below.",
		Sections: types.SectionScores{
			Impact:    types.CategoryResult{Score: 60, Feedback: []string{"Add more quantifiable achievements (numbers, percentages, dollar amounts)"}},
			Brevity:   types.CategoryResult{Score: 100, Feedback: []string{"Resume length is appropriate"}},
			Style:     types.CategoryResult{Score: 100, Feedback: []string{"Contact information is complete"}},
			Structure: types.CategoryResult{Score: 80, Feedback: []string{"Consider adding a Projects section"}},
			Skills:    types.CategoryResult{Score: 50, Feedback: []string{"Missing keywords: docker, kubernetes"}},
		},
		Keywords: types.KeywordMatch{
			Present: []string{"python", "react"},
			Missing: []string{"docker", "kubernetes"},
		},
	}
}

func TestTextFormatter(t *testing.T) {
	formatter := &AnalysisTextFormatter{}
	output, err := formatter.Format(sampleAnalysisResult())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	expected := []string{
		"=== RESUME ANALYSIS ===",
		"Overall Score: 72/100",
		"Good resume with room for improvement",
		"=== CATEGORY SCORES ===",
		"Impact: 60/100",
		"Brevity: 100/100",
		"Style: 100/100",
		"Structure: 80/100",
		"Skills: 50/100",
		"=== KEYWORDS ===",
		"Present:",
		"- python",
		"Missing:",
		"- docker",
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}

	// Categories appear in a fixed order
	if strings.Index(output, "Impact:") > strings.Index(output, "Brevity:") {
		t.Error("Expected Impact before Brevity in output")
	}
	if strings.Index(output, "Structure:") > strings.Index(output, "Skills:") {
		t.Error("Expected Structure before Skills in output")
	}
}

func TestTextFormatterNoKeywords(t *testing.T) {
	result := sampleAnalysisResult()
	result.Keywords = types.KeywordMatch{}

	formatter := &AnalysisTextFormatter{}
	output, err := formatter.Format(result)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	if !strings.Contains(output, "No keywords were checked.") {
		t.Error("Expected a note that no keywords were checked")
	}
	if strings.Contains(output, "Present:") || strings.Contains(output, "Missing:") {
		t.Error("Did not expect keyword lists for an empty keyword match")
	}
}

func TestTextFormatterWrongType(t *testing.T) {
	formatter := &AnalysisTextFormatter{}
	if _, err := formatter.Format("not an analysis result"); err == nil {
		t.Error("Expected an error for a non-AnalysisResult value")
	}
}

func TestMarkdownFormatter(t *testing.T) {
	formatter := &AnalysisMarkdownFormatter{}
	output, err := formatter.Format(sampleAnalysisResult())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	expected := []string{
		"# Resume Analysis",
		"**Overall Score:** 72/100",
		"## Summary",
		"## Category Scores",
		"### Impact",
		"**Score:** 60/100",
		"### Skills",
		"## Keywords",
		"### Present",
		"- react",
		"### Missing",
		"- kubernetes",
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
}

func TestJSONFormatter(t *testing.T) {
	formatter := &JSONFormatter{}
	output, err := formatter.Format(sampleAnalysisResult())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded types.AnalysisResult
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded.Score != 72 {
		t.Errorf("Expected score 72, got %d", decoded.Score)
	}
	if len(decoded.Keywords.Missing) != 2 {
		t.Errorf("Expected 2 missing keywords, got %d", len(decoded.Keywords.Missing))
	}
}

func TestRegistryFormat(t *testing.T) {
	registry := NewFormatterRegistry()
	result := sampleAnalysisResult()

	tests := []struct {
		name     string
		format   string
		contains string
		wantErr  bool
	}{
		{name: "text format", format: "text", contains: "=== RESUME ANALYSIS ==="},
		{name: "markdown format", format: "markdown", contains: "# Resume Analysis"},
		{name: "json format", format: "json", contains: `"score": 72`},
		{name: "unknown format", format: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := registry.Format(result, tt.format)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Format failed: %v", err)
			}
			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q", tt.contains)
			}
		})
	}
}

func TestRegistryFallsBackToGenericFormatter(t *testing.T) {
	registry := NewFormatterRegistry()

	// A type with no specific JSON formatter uses the generic one
	output, err := registry.Format(map[string]string{"key": "value"}, "json")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(output, `"key": "value"`) {
		t.Errorf("Expected generic JSON output, got %q", output)
	}

	// Markdown has no generic fallback registered
	if _, err := registry.Format(map[string]string{"key": "value"}, "markdown"); err == nil {
		t.Error("Expected an error for markdown with an unsupported type")
	}
}

func TestGetSupportedFormats(t *testing.T) {
	registry := NewFormatterRegistry()
	formats := registry.GetSupportedFormats()

	found := map[string]bool{}
	for _, f := range formats {
		found[f] = true
	}
	for _, want := range []string{"json", "text", "markdown"} {
		if !found[want] {
			t.Errorf("Expected format %q to be supported", want)
		}
	}
}
