package discovery

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"timebank/internal/domain"
)

func fixtures() []domain.Service {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []domain.Service{
		{
			ID:             1,
			Name:           "Guitar Lessons",
			Description:    "Beginner friendly acoustic guitar",
			Category:       []string{"music", "education"},
			Tags:           []string{"acoustic", "beginner"},
			ServiceType:    domain.ServiceInPerson,
			CreditRequired: 2,
			City:           "Portland",
			AverageRating:  4.5,
			CreatedAt:      base,
		},
		{
			ID:             2,
			Name:           "Math Tutoring",
			Description:    "Algebra and calculus help",
			Category:       []string{"tutoring", "education"},
			Tags:           []string{"algebra"},
			ServiceType:    domain.ServiceVirtual,
			CreditRequired: 1,
			City:           "Seattle",
			AverageRating:  5,
			CreatedAt:      base.Add(24 * time.Hour),
		},
		{
			ID:             3,
			Name:           "Garden Cleanup",
			Description:    "Weeding and seasonal prep",
			Category:       []string{"gardening"},
			Tags:           []string{"outdoors", "music-while-we-work"},
			ServiceType:    domain.ServiceInPerson,
			CreditRequired: 3,
			City:           "Portland",
			AverageRating:  0,
			CreatedAt:      base.Add(48 * time.Hour),
		},
	}
}

func TestApply_TextTermMembership(t *testing.T) {
	all := fixtures()
	got := Apply(all, Criteria{Term: "music"})

	// every included item carries the term somewhere searchable
	for _, s := range got {
		assert.True(t, matchesTerm(s, "music"), "service %d should match", s.ID)
	}
	// every excluded item carries it nowhere
	included := map[int64]bool{}
	for _, s := range got {
		included[s.ID] = true
	}
	for _, s := range all {
		if !included[s.ID] {
			assert.False(t, matchesTerm(s, "music"), "service %d should not match", s.ID)
		}
	}

	// "music" appears as a category on 1 and inside a tag on 3
	assert.Len(t, got, 2)
}

func TestApply_CaseInsensitive(t *testing.T) {
	got := Apply(fixtures(), Criteria{Term: "GUITAR"})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestApply_CategoryOrSet(t *testing.T) {
	got := Apply(fixtures(), Criteria{Categories: []string{"music", "gardening"}})
	assert.Len(t, got, 2)
}

func TestApply_SupersetCriteriaYieldsSubset(t *testing.T) {
	all := fixtures()
	loose := Criteria{Term: "e"}
	strict := loose
	strict.Categories = []string{"education"}

	looseResult := Apply(all, loose)
	strictResult := Apply(all, strict)

	looseIDs := map[int64]bool{}
	for _, s := range looseResult {
		looseIDs[s.ID] = true
	}
	for _, s := range strictResult {
		assert.True(t, looseIDs[s.ID], "strict result must be a subset of loose result")
	}
}

func TestApply_CreditRange(t *testing.T) {
	got := Apply(fixtures(), Criteria{MinCredits: 1.5, MaxCredits: 2.5})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestApply_CitySubstring(t *testing.T) {
	got := Apply(fixtures(), Criteria{City: "port"})
	assert.Len(t, got, 2)
}

func TestApply_ServiceType(t *testing.T) {
	got := Apply(fixtures(), Criteria{ServiceType: "virtual"})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)

	got = Apply(fixtures(), Criteria{ServiceType: "all"})
	assert.Len(t, got, 3)
}

func TestApply_EmptyResultIsValid(t *testing.T) {
	got := Apply(fixtures(), Criteria{Term: "no such thing"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApply_ZeroCriteriaRestoresCollection(t *testing.T) {
	all := fixtures()
	got := Apply(all, Criteria{})
	assert.Equal(t, all, got)
	assert.True(t, Criteria{}.IsZero())
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	all := fixtures()
	snapshot := fixtures()
	Apply(all, Criteria{Term: "guitar"})
	SortBy(all, SortCreditsHigh)
	assert.Equal(t, snapshot, all)
}

func TestApply_Idempotent(t *testing.T) {
	all := fixtures()
	c := Criteria{Term: "e", Categories: []string{"education"}}
	once := Apply(all, c)
	twice := Apply(once, c)
	assert.Equal(t, once, twice)
}

func TestSortBy_CreditsReversal(t *testing.T) {
	all := fixtures() // credit values are unique

	low := SortBy(all, SortCreditsLow)
	high := SortBy(all, SortCreditsHigh)

	for i := range low {
		assert.Equal(t, low[i].ID, high[len(high)-1-i].ID)
	}
}

func TestSortBy_Newest(t *testing.T) {
	got := SortBy(fixtures(), SortNewest)
	assert.Equal(t, []int64{3, 2, 1}, ids(got))
}

func TestSortBy_RatingMissingAsZero(t *testing.T) {
	got := SortBy(fixtures(), SortRating)
	assert.Equal(t, []int64{2, 1, 3}, ids(got))
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortCreditsLow, ParseSortKey("credits-low"))
	assert.Equal(t, SortNewest, ParseSortKey(""))
	assert.Equal(t, SortNewest, ParseSortKey("bogus"))
}

func TestMatchesTerm_Fields(t *testing.T) {
	s := fixtures()[0]
	for _, term := range []string{"guitar", "acoustic", "education", "friendly"} {
		assert.True(t, matchesTerm(s, term), term)
		assert.True(t, matchesTerm(s, strings.ToUpper(term)), term)
	}
	assert.False(t, matchesTerm(s, "calculus"))
}

func ids(services []domain.Service) []int64 {
	out := make([]int64, 0, len(services))
	for _, s := range services {
		out = append(out, s.ID)
	}
	return out
}
