package influence

// Row is one article's aggregated influence across the population. Rows are
// built once by Aggregate and only read afterwards.
type Row struct {
	PageName string  `json:"page_name"`
	PageURL  string  `json:"page_url"`
	Total    float64 `json:"total"`
}
