package domain

// Summary counts resolution outcomes across an inventory.
type Summary struct {
	Total          int `json:"total"`
	Found          int `json:"found"`
	Exact          int `json:"exact"`
	Close          int `json:"close"`
	SameLayer      int `json:"same_layer"`
	DifferentLayer int `json:"different_layer"`
	WithoutLayer   int `json:"without_layer"`
}

// Summarize tallies the Match state of resolved recipes.
func Summarize(recipes []*LocalRecipe) Summary {
	var s Summary
	for _, r := range recipes {
		s.Add(r)
	}
	return s
}

// Add accounts for a single recipe.
func (s *Summary) Add(r *LocalRecipe) {
	s.Total++
	if r.Layer == "" {
		s.WithoutLayer++
	}
	if !r.Match.Found() {
		return
	}

	s.Found++
	if r.Match.ExactVersion {
		s.Exact++
	} else {
		s.Close++
	}
	if r.Match.SameLayer {
		s.SameLayer++
	} else {
		s.DifferentLayer++
	}
}
