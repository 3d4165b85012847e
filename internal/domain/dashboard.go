package domain

import "math"

// ListSummary is an active list as shown on the learner dashboard.
type ListSummary struct {
	VocabList
	EstimatedMinutes int
}

// Dashboard is a read-only rollup of a user's progress.
type Dashboard struct {
	Lists           []ListSummary
	WordsStudied    int
	WordsMastered   int
	AverageAccuracy int // percent, rounded
	MasteryPercent  int // mastered/studied, percent, rounded
}

// ProgressStats computes the dashboard counters from a user's progress rows.
func ProgressStats(rows []UserProgress) (studied, mastered, accuracy, masteryPct int) {
	studied = len(rows)
	if studied == 0 {
		return 0, 0, 0, 0
	}

	var sum float64
	for _, p := range rows {
		if p.IsMastered() {
			mastered++
		}
		sum += p.Accuracy()
	}

	accuracy = int(math.Round(sum / float64(studied) * 100))
	masteryPct = int(math.Round(float64(mastered) / float64(studied) * 100))
	return studied, mastered, accuracy, masteryPct
}

// NewDashboard assembles a dashboard from active lists and progress rows.
func NewDashboard(lists []VocabList, rows []UserProgress) Dashboard {
	summaries := make([]ListSummary, 0, len(lists))
	for _, l := range lists {
		summaries = append(summaries, ListSummary{VocabList: l, EstimatedMinutes: l.EstimatedMinutes()})
	}

	studied, mastered, accuracy, masteryPct := ProgressStats(rows)
	return Dashboard{
		Lists:           summaries,
		WordsStudied:    studied,
		WordsMastered:   mastered,
		AverageAccuracy: accuracy,
		MasteryPercent:  masteryPct,
	}
}
