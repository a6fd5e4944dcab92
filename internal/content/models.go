package content

// Kind tells the session engines how a question takes answers.
type Kind string

const (
	KindSingle   Kind = "single"
	KindMultiple Kind = "multiple"
)

type Question struct {
	ID          string        `json:"id"`
	Prompt      string        `json:"question"`
	Options     []string      `json:"options"`
	Answer      CorrectAnswer `json:"correctAnswer"`
	Explanation string        `json:"explanation,omitempty"`
	Type        string        `json:"type,omitempty"` // "single" | "multiple" | ""
}

// Kind is multiple when the question is tagged so or its answer is a set.
func (q Question) Kind() Kind {
	if q.Type == string(KindMultiple) || q.Answer.IsMultiple() {
		return KindMultiple
	}
	return KindSingle
}

// CorrectIndices returns the correct option indices in ascending order.
// A single answer yields a one-element slice.
func (q Question) CorrectIndices() []int {
	return q.Answer.Indices()
}

type Quiz struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

type Card struct {
	ID    string `json:"id"`
	Front string `json:"front"`
	Back  string `json:"back"`
}

type FlashcardSet struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Cards       []Card `json:"cards"`
}

type QuizSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	QuestionCount int    `json:"questionCount"`
}

type SetSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CardCount   int    `json:"cardCount"`
}

func (q Quiz) Summary() QuizSummary {
	return QuizSummary{ID: q.ID, Title: q.Title, Description: q.Description, QuestionCount: len(q.Questions)}
}

func (s FlashcardSet) Summary() SetSummary {
	return SetSummary{ID: s.ID, Title: s.Title, Description: s.Description, CardCount: len(s.Cards)}
}

func SummarizeQuizzes(list []Quiz) []QuizSummary {
	out := make([]QuizSummary, 0, len(list))
	for _, q := range list {
		out = append(out, q.Summary())
	}
	return out
}

func SummarizeFlashcardSets(list []FlashcardSet) []SetSummary {
	out := make([]SetSummary, 0, len(list))
	for _, s := range list {
		out = append(out, s.Summary())
	}
	return out
}
