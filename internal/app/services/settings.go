package services

import "time"

// Settings are the tunables shared by the predictor services
type Settings struct {
	MaxResults          int
	RecommendationLimit int
	SimilarLimit        int
	RankingLimit        int
	CacheTTL            time.Duration
}

// DefaultSettings returns the production limits
func DefaultSettings() Settings {
	return Settings{
		MaxResults:          95,
		RecommendationLimit: 20,
		SimilarLimit:        10,
		RankingLimit:        50,
		CacheTTL:            10 * time.Minute,
	}
}

// withDefaults fills zero limits from DefaultSettings
func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.MaxResults <= 0 {
		s.MaxResults = d.MaxResults
	}
	if s.RecommendationLimit <= 0 {
		s.RecommendationLimit = d.RecommendationLimit
	}
	if s.SimilarLimit <= 0 {
		s.SimilarLimit = d.SimilarLimit
	}
	if s.RankingLimit <= 0 {
		s.RankingLimit = d.RankingLimit
	}
	if s.CacheTTL < 0 {
		s.CacheTTL = 0
	}
	return s
}

func truncate[T any](rows []T, limit int) []T {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
