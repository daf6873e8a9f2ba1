package assessment

// Category tags a facet of mental health. Questions sharing a category accumulate into one score.
type Category string

const (
	EmotionalRegulation Category = "emotional_regulation"
	EmotionalAwareness  Category = "emotional_awareness"
	CognitivePatterns   Category = "cognitive_patterns"
	Depression          Category = "depression"
	Social              Category = "social"
	Interpersonal       Category = "interpersonal"
	CopingMechanisms    Category = "coping_mechanisms"
	FunctionalImpact    Category = "functional_impact"
	Dissociation        Category = "dissociation"
	Identity            Category = "identity"
	Trauma              Category = "trauma"
	Anxiety             Category = "anxiety"
	CognitiveFunction   Category = "cognitive_function"
	Sleep               Category = "sleep"
	Crisis              Category = "crisis"
	OCD                 Category = "ocd"
	Attention           Category = "attention"
)

var knownCategories = map[Category]struct{}{
	EmotionalRegulation: {},
	EmotionalAwareness:  {},
	CognitivePatterns:   {},
	Depression:          {},
	Social:              {},
	Interpersonal:       {},
	CopingMechanisms:    {},
	FunctionalImpact:    {},
	Dissociation:        {},
	Identity:            {},
	Trauma:              {},
	Anxiety:             {},
	CognitiveFunction:   {},
	Sleep:               {},
	Crisis:              {},
	OCD:                 {},
	Attention:           {},
}

// Valid reports whether c is one of the declared category constants.
func (c Category) Valid() bool {
	_, ok := knownCategories[c]
	return ok
}

// Severity is the weight of a selected option, 0 (none) to 3 (severe).
type Severity int

const (
	SeverityNone Severity = iota
	SeverityMild
	SeverityModerate
	SeveritySevere
)

func (s Severity) Valid() bool {
	return s >= SeverityNone && s <= SeveritySevere
}
