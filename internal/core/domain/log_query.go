package domain

// LogQuery narrows a user's exercise log. Nil fields are not applied.
type LogQuery struct {
	From  *Date
	To    *Date
	Limit *int
}

// Apply returns the entries on or after From and on or before To, in their
// original order, truncated to Limit. The input slice is not modified.
func (q LogQuery) Apply(entries []*Exercise) []*Exercise {
	result := make([]*Exercise, 0, len(entries))
	for _, e := range entries {
		if q.From != nil && e.Date.Before(*q.From) {
			continue
		}
		if q.To != nil && e.Date.After(*q.To) {
			continue
		}
		result = append(result, e)
	}

	if q.Limit != nil && *q.Limit >= 0 && *q.Limit < len(result) {
		result = result[:*q.Limit]
	}

	return result
}
