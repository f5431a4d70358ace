package domain

// InsightType drives the icon and accent of an insight card
type InsightType string

const (
	InsightInfo         InsightType = "info"
	InsightProductivity InsightType = "productivity"
	InsightSuccess      InsightType = "success"
	InsightWarning      InsightType = "warning"
)

// Insight is a server-generated observation about the user's focus habits
type Insight struct {
	Description string      `json:"description" yaml:"description"`
	Score       *float64    `json:"score,omitempty" yaml:"score,omitempty"`
	Title       string      `json:"title" yaml:"title"`
	Type        InsightType `json:"type" yaml:"type"`
}

// Icon returns the glyph shown next to the insight
func (t InsightType) Icon() string {
	switch t {
	case InsightProductivity:
		return "↗"
	case InsightWarning:
		return "⚠"
	case InsightSuccess:
		return "✦"
	default:
		return "ℹ"
	}
}
