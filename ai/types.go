package ai

// ExtractedStatement is one atomic knowledge statement identified in
// compound text. Asks are statements expressing a request or need rather
// than a fact.
type ExtractedStatement struct {
	// Text is the statement itself, one discrete fact or request.
	Text string

	// IsAsk is true when the statement is a request/need.
	IsAsk bool
}

// ExtractedEntity is a candidate topic or intention identified in compound
// text. The pipeline decides the namespace; the extractor only names it.
type ExtractedEntity struct {
	// Name is a short noun phrase, e.g. "climate tech".
	Name string

	// Description is a one-sentence gloss of the entity. May be empty.
	Description string
}

// Extraction is the structured result of a single extraction call over a
// note's compound text. Slices are never nil; absent fields in the model
// output are coerced to empty.
type Extraction struct {
	// Summary is a one- or two-sentence natural-language summary of the
	// compound text. Empty when the model produced none.
	Summary string

	// Knowledge holds the atomic knowledge statements, asks included.
	Knowledge []ExtractedStatement

	// Topics holds candidate topics named by the model.
	Topics []ExtractedEntity

	// Intentions holds candidate intentions. Populated only when the
	// provider is configured with the intentions variant.
	Intentions []ExtractedEntity
}

// Asks returns the text of every statement flagged as an ask.
func (e *Extraction) Asks() []string {
	asks := make([]string, 0, len(e.Knowledge))
	for _, s := range e.Knowledge {
		if s.IsAsk {
			asks = append(asks, s.Text)
		}
	}
	return asks
}
