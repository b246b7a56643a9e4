package survey

// CategoryID identifies a scoring category.
type CategoryID string

// Category is a scoring dimension with the copy shown when it wins.
type Category struct {
	ID          CategoryID `json:"id"`
	Title       string     `json:"title"`
	Headline    string     `json:"headline"`
	Description string     `json:"description"`
	Accent      string     `json:"accent"` // hex colour, e.g. "#6366F1"
	Moves       []string   `json:"moves"`
}

// Option is one selectable answer to a question.
type Option struct {
	ID          string                 `json:"id"`
	Label       string                 `json:"label"`
	Description string                 `json:"description"`
	Badge       string                 `json:"badge,omitempty"`
	Weights     map[CategoryID]float64 `json:"weights"`
}

// Weight returns the option's contribution to the given category.
// Categories absent from the weight map contribute 0.
func (o Option) Weight(id CategoryID) float64 {
	return o.Weights[id]
}

// Question is a single survey step.
type Question struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Prompt  string   `json:"prompt"`
	Helper  string   `json:"helper,omitempty"`
	Options []Option `json:"options"`
}

// Option looks up an option of this question by ID.
func (q Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// OptionIndex returns the position of the option with the given ID, or -1.
func (q Question) OptionIndex(id string) int {
	for i, o := range q.Options {
		if o.ID == id {
			return i
		}
	}
	return -1
}
