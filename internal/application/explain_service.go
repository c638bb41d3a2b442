package application

import "github.com/depguard/depguard/internal/domain"

// CheckInfo is one registered check in catalog listings.
type CheckInfo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ExplainService serves the check documentation catalog.
type ExplainService struct{}

func NewExplainService() *ExplainService {
	return &ExplainService{}
}

// Explain resolves a check id or finding code to its documentation.
func (s *ExplainService) Explain(identifier string) (domain.Explanation, bool) {
	return domain.LookupExplanation(identifier)
}

// ListChecks lists every registered check in registration order.
func (s *ExplainService) ListChecks() []CheckInfo {
	ids := domain.AllCheckIDs()
	out := make([]CheckInfo, 0, len(ids))
	for _, id := range ids {
		exp, _ := domain.LookupExplanation(id)
		out = append(out, CheckInfo{
			ID:          id,
			Title:       exp.Title,
			Description: exp.Description,
		})
	}
	return out
}
