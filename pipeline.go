package urth

// Pipeline runs extraction followed by the optional enrichment stage.
type Pipeline struct {
	Config Config

	// Enricher is optional. When nil, entries keep their single key.
	Enricher *Enricher
}

// NewPipeline creates a new Pipeline.
func NewPipeline(cfg Config, enricher *Enricher) *Pipeline {
	return &Pipeline{Config: cfg, Enricher: enricher}
}

// ExtractStream runs delimiter-stream extraction over text.
func (p *Pipeline) ExtractStream(text string) (*Result, error) {
	result, err := ExtractStream(text, p.Config)
	if err != nil {
		return nil, err
	}
	p.enrich(result)
	return result, nil
}

// ExtractTree runs tree-walk extraction over elements.
func (p *Pipeline) ExtractTree(elements []Element) (*Result, error) {
	result, err := ExtractTree(elements, p.Config)
	if err != nil {
		return nil, err
	}
	p.enrich(result)
	return result, nil
}

func (p *Pipeline) enrich(result *Result) {
	if p.Enricher == nil {
		return
	}
	enriched, warnings := p.Enricher.Enrich(result.Entries)
	result.Enriched = enriched
	result.Warnings = append(result.Warnings, warnings...)
	if enriched > 0 {
		result.index.Reindex()
	}
}
