package content

import (
	"errors"
	"fmt"
)

// Validate checks a quiz for structural problems and reports all of them.
func (q Quiz) Validate() error {
	var errs []error
	if q.ID == "" {
		errs = append(errs, errors.New("quiz: id required"))
	}
	seen := map[string]bool{}
	for i, qu := range q.Questions {
		if qu.ID != "" && seen[qu.ID] {
			errs = append(errs, fmt.Errorf("quiz %s: duplicate question id %q", q.ID, qu.ID))
		}
		seen[qu.ID] = true
		if err := qu.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("quiz %s: question %d: %w", q.ID, i, err))
		}
	}
	return errors.Join(errs...)
}

func (q Question) Validate() error {
	var errs []error
	if q.ID == "" {
		errs = append(errs, errors.New("id required"))
	}
	if len(q.Options) == 0 {
		errs = append(errs, errors.New("at least one option required"))
	}
	switch q.Type {
	case "", string(KindSingle), string(KindMultiple):
	default:
		errs = append(errs, fmt.Errorf("unknown type %q", q.Type))
	}
	if q.Type == string(KindSingle) && q.Answer.IsMultiple() {
		errs = append(errs, errors.New("single-select question has a set answer"))
	}
	idx := q.Answer.Indices()
	if len(idx) == 0 {
		errs = append(errs, errors.New("correct answer required"))
	}
	for i, v := range idx {
		if v < 0 || v >= len(q.Options) {
			errs = append(errs, fmt.Errorf("answer index %d out of range [0,%d)", v, len(q.Options)))
		}
		if i > 0 && idx[i-1] == v {
			errs = append(errs, fmt.Errorf("duplicate answer index %d", v))
		}
	}
	return errors.Join(errs...)
}

func (s FlashcardSet) Validate() error {
	var errs []error
	if s.ID == "" {
		errs = append(errs, errors.New("flashcard set: id required"))
	}
	seen := map[string]bool{}
	for i, c := range s.Cards {
		if c.ID == "" {
			errs = append(errs, fmt.Errorf("flashcard set %s: card %d: id required", s.ID, i))
			continue
		}
		if seen[c.ID] {
			errs = append(errs, fmt.Errorf("flashcard set %s: duplicate card id %q", s.ID, c.ID))
		}
		seen[c.ID] = true
	}
	return errors.Join(errs...)
}

func ValidateQuizzes(list []Quiz) error {
	var errs []error
	seen := map[string]bool{}
	for _, q := range list {
		if seen[q.ID] {
			errs = append(errs, fmt.Errorf("duplicate quiz id %q", q.ID))
		}
		seen[q.ID] = true
		errs = append(errs, q.Validate())
	}
	return errors.Join(errs...)
}

func ValidateFlashcardSets(list []FlashcardSet) error {
	var errs []error
	seen := map[string]bool{}
	for _, s := range list {
		if seen[s.ID] {
			errs = append(errs, fmt.Errorf("duplicate flashcard set id %q", s.ID))
		}
		seen[s.ID] = true
		errs = append(errs, s.Validate())
	}
	return errors.Join(errs...)
}
