package survey

// Definition is an immutable survey: questions in step order and categories
// in declaration order. Declaration order is the tie-break order used by
// scoring. Build one with New, Load or Default; the zero value is empty.
type Definition struct {
	Version     string     `json:"version"`
	Title       string     `json:"title"`
	Tagline     string     `json:"tagline"`
	Description string     `json:"description"`
	Categories  []Category `json:"categories"`
	Questions   []Question `json:"questions"`

	questionIdx map[string]int
	categoryIdx map[CategoryID]int
}

// New validates the given content and returns an indexed Definition.
func New(d Definition) (*Definition, error) {
	if err := validateDefinition(&d); err != nil {
		return nil, err
	}
	d.buildIndex()
	return &d, nil
}

func (d *Definition) buildIndex() {
	d.questionIdx = make(map[string]int, len(d.Questions))
	for i, q := range d.Questions {
		d.questionIdx[q.ID] = i
	}
	d.categoryIdx = make(map[CategoryID]int, len(d.Categories))
	for i, c := range d.Categories {
		d.categoryIdx[c.ID] = i
	}
}

// Len returns the number of questions (steps).
func (d *Definition) Len() int {
	return len(d.Questions)
}

// QuestionAt returns the question shown at the given step.
func (d *Definition) QuestionAt(step int) (Question, bool) {
	if step < 0 || step >= len(d.Questions) {
		return Question{}, false
	}
	return d.Questions[step], true
}

// Question returns the question with the given ID.
func (d *Definition) Question(id string) (Question, bool) {
	i, ok := d.questionIdx[id]
	if !ok {
		return Question{}, false
	}
	return d.Questions[i], true
}

// Option returns the option optionID of question questionID. It reports
// false when either ID is unknown, including an option ID that exists only
// on a different question.
func (d *Definition) Option(questionID, optionID string) (Option, bool) {
	q, ok := d.Question(questionID)
	if !ok {
		return Option{}, false
	}
	return q.Option(optionID)
}

// ListCategories returns the categories in declaration order.
func (d *Definition) ListCategories() []Category {
	out := make([]Category, len(d.Categories))
	copy(out, d.Categories)
	return out
}

// Category returns the category with the given ID.
func (d *Definition) Category(id CategoryID) (Category, bool) {
	i, ok := d.categoryIdx[id]
	if !ok {
		return Category{}, false
	}
	return d.Categories[i], true
}

// CategoryIDs returns category IDs in declaration order.
func (d *Definition) CategoryIDs() []CategoryID {
	ids := make([]CategoryID, len(d.Categories))
	for i, c := range d.Categories {
		ids[i] = c.ID
	}
	return ids
}
