package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// CorrectAnswer is either a single option index or a set of indices.
// The JSON form is a number or an array of numbers; which one it was is
// decided once at decode time.
type CorrectAnswer struct {
	multiple bool
	indices  []int // sorted; exactly one element when !multiple
}

func Single(index int) CorrectAnswer {
	return CorrectAnswer{indices: []int{index}}
}

func Multiple(indices ...int) CorrectAnswer {
	cp := append([]int(nil), indices...)
	sort.Ints(cp)
	return CorrectAnswer{multiple: true, indices: cp}
}

func (a CorrectAnswer) IsMultiple() bool { return a.multiple }

// Index returns the single correct index. ok is false for set answers.
func (a CorrectAnswer) Index() (int, bool) {
	if a.multiple || len(a.indices) != 1 {
		return 0, false
	}
	return a.indices[0], true
}

// Indices returns a sorted copy of the correct indices.
func (a CorrectAnswer) Indices() []int {
	return append([]int(nil), a.indices...)
}

// Contains reports whether option i is one of the correct answers.
func (a CorrectAnswer) Contains(i int) bool {
	for _, v := range a.indices {
		if v == i {
			return true
		}
	}
	return false
}

func (a CorrectAnswer) IsZero() bool { return len(a.indices) == 0 && !a.multiple }

func (a *CorrectAnswer) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return fmt.Errorf("correctAnswer: missing value")
	}
	if b[0] == '[' {
		var arr []int
		if err := json.Unmarshal(b, &arr); err != nil {
			return fmt.Errorf("correctAnswer: %w", err)
		}
		*a = Multiple(arr...)
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("correctAnswer: %w", err)
	}
	*a = Single(n)
	return nil
}

func (a CorrectAnswer) MarshalJSON() ([]byte, error) {
	if a.multiple {
		return json.Marshal(a.indices)
	}
	if i, ok := a.Index(); ok {
		return json.Marshal(i)
	}
	return []byte("null"), nil
}
