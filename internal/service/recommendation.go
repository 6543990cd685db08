package service

import (
	"context"
	"fmt"

	"wellness_gauntlet/internal/model"
)

const (
	DefaultGem         = model.GemMind
	MaxRecommendations = 3
)

type RecommendationService struct {
	repo     QuestRepository
	recorder Recorder
}

func NewRecommendationService(repo QuestRepository, recorder Recorder) *RecommendationService {
	return &RecommendationService{
		repo:     repo,
		recorder: recorderOrNop(recorder),
	}
}

// Recommend returns up to MaxRecommendations quests of the given category
// in catalog order. An unknown category yields an empty list.
func (s *RecommendationService) Recommend(ctx context.Context, gem model.Gem) ([]model.Quest, error) {
	quests, err := s.repo.ListQuestsByCategory(ctx, gem, MaxRecommendations)
	if err != nil {
		return nil, fmt.Errorf("failed to list quests: %w", err)
	}
	if len(quests) > MaxRecommendations {
		quests = quests[:MaxRecommendations]
	}

	label := string(gem)
	if !gem.Known() {
		label = "unknown"
	}
	s.recorder.ObserveRecommendations(label, len(quests))

	return quests, nil
}
