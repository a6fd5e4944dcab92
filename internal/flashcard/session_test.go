package flashcard_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cedzoi/cedzoi/internal/content"
	"github.com/cedzoi/cedzoi/internal/flashcard"
)

func ids(cards []content.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

func deck(n int) content.FlashcardSet {
	names := []string{"A", "B", "C", "D", "E"}
	set := content.FlashcardSet{ID: "deck", Title: "Deck"}
	for i := 0; i < n; i++ {
		set.Cards = append(set.Cards, content.Card{ID: names[i], Front: "front " + names[i], Back: "back " + names[i]})
	}
	return set
}

var _ = Describe("Flashcard Session", func() {
	var s flashcard.Session

	BeforeEach(func() {
		s = flashcard.New(deck(4))
	})

	Context("when created", func() {
		It("should show the first card unflipped with nothing classified", func() {
			card, ok := s.Current()
			Expect(ok).To(BeTrue())
			Expect(card.ID).To(Equal("A"))
			Expect(s.Flipped()).To(BeFalse())
			Expect(s.Filter()).To(Equal(flashcard.FilterAll))
			known, unknown := s.Counts()
			Expect(known).To(BeZero())
			Expect(unknown).To(BeZero())
			Expect(s.Status("A")).To(Equal(flashcard.Unclassified))
		})
	})

	Context("flipping", func() {
		It("should toggle without moving", func() {
			f := s.Flip()
			Expect(f.Flipped()).To(BeTrue())
			Expect(f.Index()).To(Equal(0))
			Expect(f.Flip().Flipped()).To(BeFalse())
			Expect(s.Flipped()).To(BeFalse())
		})
	})

	Context("navigation", func() {
		It("should clamp at both ends", func() {
			Expect(s.Retreat().Index()).To(Equal(0))
			end := s.Advance().Advance().Advance()
			Expect(end.Index()).To(Equal(3))
			Expect(end.Advance().Index()).To(Equal(3))
		})

		It("should reset the flip on every index change", func() {
			next := s.Flip().Advance()
			Expect(next.Index()).To(Equal(1))
			Expect(next.Flipped()).To(BeFalse())
			back := next.Flip().Retreat()
			Expect(back.Flipped()).To(BeFalse())
		})

		It("should keep the flip when the move is a no-op", func() {
			Expect(s.Flip().Retreat().Flipped()).To(BeTrue())
		})

		It("should stay inside the filtered view", func() {
			v := s.MarkKnown().MarkUnknown().MarkKnown().SetFilter(flashcard.FilterKnown)
			Expect(ids(v.Cards())).To(Equal([]string{"A", "C"}))
			Expect(v.Advance().Index()).To(Equal(1))
			Expect(v.Advance().Advance().Index()).To(Equal(1))
		})
	})

	Context("marking", func() {
		It("should classify the current card and advance", func() {
			m := s.MarkKnown()
			Expect(m.Status("A")).To(Equal(flashcard.Known))
			Expect(m.Index()).To(Equal(1))
			Expect(s.Status("A")).To(Equal(flashcard.Unclassified))
		})

		It("should keep known and unknown disjoint", func() {
			m := s.MarkKnown().Retreat().MarkUnknown().Retreat().MarkKnown()
			Expect(m.Status("A")).To(Equal(flashcard.Known))
			known, unknown := m.Counts()
			Expect(known).To(Equal(1))
			Expect(unknown).To(Equal(0))
		})

		It("should not advance past the last card", func() {
			m := s.Advance().Advance().Advance().MarkUnknown()
			Expect(m.Index()).To(Equal(3))
			Expect(m.Status("D")).To(Equal(flashcard.Unknown))
		})

		It("should let the next card slide in when the marked card leaves the view", func() {
			v := s.MarkUnknown().MarkUnknown().MarkUnknown().SetFilter(flashcard.FilterUnknown)
			Expect(ids(v.Cards())).To(Equal([]string{"A", "B", "C"}))
			v = v.MarkKnown()
			Expect(ids(v.Cards())).To(Equal([]string{"B", "C"}))
			card, _ := v.Current()
			Expect(card.ID).To(Equal("B"))
			v = v.Advance().MarkKnown()
			card, _ = v.Current()
			Expect(card.ID).To(Equal("B"))
			Expect(v.Index()).To(Equal(0))
			Expect(v.MarkKnown().Empty()).To(BeTrue())
		})
	})

	Context("filtering", func() {
		It("should yield known cards in original order", func() {
			m := s.Advance().MarkKnown().Retreat().Retreat().MarkKnown().MarkKnown().MarkUnknown()
			Expect(m.Status("C")).To(Equal(flashcard.Unknown))
			v := m.SetFilter(flashcard.FilterKnown)
			Expect(ids(v.Cards())).To(Equal([]string{"A", "B"}))
		})

		It("should reset index and flip on every filter change", func() {
			m := s.MarkKnown().MarkKnown().MarkKnown().Flip()
			Expect(m.Index()).To(Equal(3))
			v := m.SetFilter(flashcard.FilterKnown)
			Expect(v.Index()).To(Equal(0))
			Expect(v.Flipped()).To(BeFalse())
			// position is not carried back either
			Expect(v.Advance().SetFilter(flashcard.FilterAll).Index()).To(Equal(0))
		})

		It("should report empty when nothing matches", func() {
			v := s.SetFilter(flashcard.FilterUnknown)
			Expect(v.Empty()).To(BeTrue())
			_, ok := v.Current()
			Expect(ok).To(BeFalse())
			Expect(v.Progress()).To(Equal(flashcard.Progress{}))
			known, unknown := v.MarkKnown().Counts()
			Expect(known + unknown).To(BeZero())
		})
	})

	Context("restarting", func() {
		It("should clear classifications and the filter", func() {
			r := s.MarkKnown().MarkUnknown().SetFilter(flashcard.FilterKnown).Flip().Restart()
			Expect(r.Filter()).To(Equal(flashcard.FilterAll))
			Expect(r.Index()).To(Equal(0))
			Expect(r.Flipped()).To(BeFalse())
			known, unknown := r.Counts()
			Expect(known + unknown).To(BeZero())
		})
	})

	Context("the two-card scenario", func() {
		It("should leave only the unknown card under the unknown filter", func() {
			set := content.FlashcardSet{ID: "set", Cards: []content.Card{
				{ID: "card-1", Front: "Hello", Back: "Szia"},
				{ID: "card-2", Front: "Bye", Back: "Viszlát"},
			}}
			v := flashcard.New(set).MarkUnknown().MarkKnown().SetFilter(flashcard.FilterUnknown)
			Expect(ids(v.Cards())).To(Equal([]string{"card-1"}))
			Expect(v.Index()).To(Equal(0))
		})
	})

	Context("parsing filters", func() {
		It("should accept the three modes and default to all", func() {
			for _, in := range []string{"all", "known", "unknown"} {
				f, err := flashcard.ParseFilter(in)
				Expect(err).NotTo(HaveOccurred())
				Expect(string(f)).To(Equal(in))
			}
			f, err := flashcard.ParseFilter("")
			Expect(err).NotTo(HaveOccurred())
			Expect(f).To(Equal(flashcard.FilterAll))
			_, err = flashcard.ParseFilter("learned")
			Expect(err).To(HaveOccurred())
		})
	})
})
