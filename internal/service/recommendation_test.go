package service

import (
	"context"
	"testing"

	"wellness_gauntlet/internal/model"
	"wellness_gauntlet/internal/repository"
	"wellness_gauntlet/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecommendationService_Recommend(t *testing.T) {
	many := []model.Quest{
		{ID: 1, Category: model.GemMind},
		{ID: 2, Category: model.GemMind},
		{ID: 3, Category: model.GemMind},
		{ID: 4, Category: model.GemMind},
	}

	tests := []struct {
		name          string
		gem           model.Gem
		mockSetup     func(repo *mocks.MockQuestRepository)
		expectedIDs   []int
		expectedLabel string
		expectedError error
	}{
		{
			name: "Passes the limit to the repository",
			gem:  model.GemBody,
			mockSetup: func(repo *mocks.MockQuestRepository) {
				repo.On("ListQuestsByCategory", mock.Anything, model.GemBody, MaxRecommendations).
					Return([]model.Quest{{ID: 2, Category: model.GemBody}}, nil)
			},
			expectedIDs:   []int{2},
			expectedLabel: "body",
		},
		{
			name: "Never more than three",
			gem:  model.GemMind,
			mockSetup: func(repo *mocks.MockQuestRepository) {
				repo.On("ListQuestsByCategory", mock.Anything, model.GemMind, MaxRecommendations).
					Return(many, nil)
			},
			expectedIDs:   []int{1, 2, 3},
			expectedLabel: "mind",
		},
		{
			name: "Unknown gem is recorded under one label",
			gem:  model.Gem("power"),
			mockSetup: func(repo *mocks.MockQuestRepository) {
				repo.On("ListQuestsByCategory", mock.Anything, model.Gem("power"), MaxRecommendations).
					Return([]model.Quest{}, nil)
			},
			expectedIDs:   []int{},
			expectedLabel: "unknown",
		},
		{
			name: "Repository error",
			gem:  model.GemSoul,
			mockSetup: func(repo *mocks.MockQuestRepository) {
				repo.On("ListQuestsByCategory", mock.Anything, model.GemSoul, MaxRecommendations).
					Return(nil, assert.AnError)
			},
			expectedError: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mocks.MockQuestRepository{}
			tt.mockSetup(repo)
			rec := &fakeRecorder{}
			s := NewRecommendationService(repo, rec)

			quests, err := s.Recommend(context.Background(), tt.gem)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			ids := make([]int, 0, len(quests))
			for _, q := range quests {
				ids = append(ids, q.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
			assert.Equal(t, len(tt.expectedIDs), rec.recommendations[tt.expectedLabel])
			assert.Contains(t, rec.recommendations, tt.expectedLabel)
			repo.AssertExpectations(t)
		})
	}
}

func TestRecommendationService_Catalog(t *testing.T) {
	s := NewRecommendationService(repository.NewDefault(), nil)

	quests, err := s.Recommend(context.Background(), model.GemBody)
	require.NoError(t, err)
	require.Len(t, quests, 2)
	assert.Equal(t, "Morning Stretch", quests[0].Name)
	assert.Equal(t, "Go for a 20-minute walk", quests[1].Name)

	quests, err = s.Recommend(context.Background(), DefaultGem)
	require.NoError(t, err)
	for _, q := range quests {
		assert.Equal(t, model.GemMind, q.Category)
	}

	quests, err = s.Recommend(context.Background(), model.Gem("reality"))
	require.NoError(t, err)
	assert.Empty(t, quests)
}
