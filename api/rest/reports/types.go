package reports

import "codeberg.org/hitlog/analyzer/internal/influence"

// PolicyInfo describes one attribution policy for API consumers.
type PolicyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Normalized  bool   `json:"normalized"`
}

// AnalysisResponse is the JSON body for a completed one-shot analysis.
// Nothing is stored server-side; the id correlates logs with the response.
type AnalysisResponse struct {
	AnalysisID string          `json:"analysis_id"`
	Policy     string          `json:"policy"`
	Journeys   int             `json:"journeys"`
	Rows       []influence.Row `json:"rows"`
}
