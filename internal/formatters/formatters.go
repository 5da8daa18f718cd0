package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"cvscore/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "AnalysisResult", &AnalysisTextFormatter{})
	registry.RegisterFormatter("markdown", "AnalysisResult", &AnalysisMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.AnalysisResult:
		return "AnalysisResult"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// categoryOrder fixes the display order of the scoring categories
var categoryOrder = []string{"Impact", "Brevity", "Style", "Structure", "Skills"}

func orderedCategories(sections types.SectionScores) map[string]types.CategoryResult {
	return map[string]types.CategoryResult{
		"Impact":    sections.Impact,
		"Brevity":   sections.Brevity,
		"Style":     sections.Style,
		"Structure": sections.Structure,
		"Skills":    sections.Skills,
	}
}

// AnalysisTextFormatter handles text formatting for analysis results
type AnalysisTextFormatter struct{}

func (atf *AnalysisTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected AnalysisResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== RESUME ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Overall Score: %d/100\n\n", result.Score))
	output.WriteString("Summary:\n")
	output.WriteString(result.Summary)
	output.WriteString("\n\n")

	output.WriteString("=== CATEGORY SCORES ===\n\n")
	categories := orderedCategories(result.Sections)
	for _, name := range categoryOrder {
		category := categories[name]
		output.WriteString(fmt.Sprintf("%s: %d/100\n", name, category.Score))
		for _, feedback := range category.Feedback {
			output.WriteString(fmt.Sprintf("- %s\n", feedback))
		}
		output.WriteString("\n")
	}

	output.WriteString("=== KEYWORDS ===\n")
	if len(result.Keywords.Present) > 0 {
		output.WriteString("Present:\n")
		for _, keyword := range result.Keywords.Present {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}
	if len(result.Keywords.Missing) > 0 {
		output.WriteString("Missing:\n")
		for _, keyword := range result.Keywords.Missing {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
	}
	if len(result.Keywords.Present) == 0 && len(result.Keywords.Missing) == 0 {
		output.WriteString("No keywords were checked.\n")
	}

	return output.String(), nil
}

func (atf *AnalysisTextFormatter) SupportedType() string {
	return "AnalysisResult"
}

// AnalysisMarkdownFormatter handles markdown formatting for analysis results
type AnalysisMarkdownFormatter struct{}

func (amf *AnalysisMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected AnalysisResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Resume Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Overall Score:** %d/100\n\n", result.Score))
	output.WriteString("## Summary\n\n")
	output.WriteString(result.Summary)
	output.WriteString("\n\n")

	output.WriteString("## Category Scores\n\n")
	categories := orderedCategories(result.Sections)
	for _, name := range categoryOrder {
		category := categories[name]
		output.WriteString(fmt.Sprintf("### %s\n\n", name))
		output.WriteString(fmt.Sprintf("**Score:** %d/100\n\n", category.Score))
		for _, feedback := range category.Feedback {
			output.WriteString(fmt.Sprintf("- %s\n", feedback))
		}
		output.WriteString("\n")
	}

	output.WriteString("## Keywords\n\n")
	if len(result.Keywords.Present) > 0 {
		output.WriteString("### Present\n")
		for _, keyword := range result.Keywords.Present {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}
	if len(result.Keywords.Missing) > 0 {
		output.WriteString("### Missing\n")
		for _, keyword := range result.Keywords.Missing {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}
	if len(result.Keywords.Present) == 0 && len(result.Keywords.Missing) == 0 {
		output.WriteString("No keywords were checked.\n")
	}

	return output.String(), nil
}

func (amf *AnalysisMarkdownFormatter) SupportedType() string {
	return "AnalysisResult"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
