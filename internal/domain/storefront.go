package domain

import "time"

type Typography struct {
	Headings string `json:"headings"`
	Body     string `json:"body"`
}

type DesignStyle struct {
	LayoutSummary       string     `json:"layout_summary"`
	ColorPalette        []string   `json:"color_palette"`
	Typography          Typography `json:"typography"`
	InteractiveElements string     `json:"interactive_elements"`
}

// StoreDesign é o tema publicado atualmente na loja
type StoreDesign struct {
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	LastUpdated    string      `json:"last_updated"`
	StyleElements  DesignStyle `json:"style_elements"`
	MockPreviewURL string      `json:"mock_preview_url"`
}

type CurrentStoreDesign struct {
	Design StoreDesign `json:"current_store_design"`
}

// DesignBrief é o dado enviado ao gerador de texto para descrever um novo conceito visual
type DesignBrief struct {
	Trend              string      `json:"trend"`
	StoreType          string      `json:"store_type"`
	SuggestedStyle     DesignStyle `json:"suggested_style"`
	CurrentDesignNotes StoreDesign `json:"current_design_notes"`
}

type DesignIdea struct {
	Trend             string      `json:"trend"`
	StoreType         string      `json:"store_type"`
	Description       string      `json:"description"`
	StyleElements     DesignStyle `json:"style_elements"`
	UniqueElementIdea string      `json:"unique_element_idea"`
	DesignDescription Narration   `json:"design_description"`
	MockPreviewURL    string      `json:"mock_preview_url"`
}

type LogLevel string

const (
	LogLevelInfo    LogLevel = "INFO"
	LogLevelWarning LogLevel = "WARNING"
	LogLevelError   LogLevel = "ERROR"
)

// SiteLogEntry é uma linha do log da loja virtual
type SiteLogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     LogLevel  `json:"level"`
	Message   string    `json:"message"`
}

type WebsiteProblem struct {
	Timestamp    time.Time `json:"timestamp"`
	Type         LogLevel  `json:"type"`
	Description  string    `json:"description"`
	SuggestedFix string    `json:"suggested_fix"`
}

type WebsiteHealth struct {
	Problems []WebsiteProblem `json:"website_problems"`
}
