package repository

import (
	"context"

	"wellness_gauntlet/internal/model"
)

var DefaultQuests = []model.Quest{
	{ID: 1, Name: "5-Minute Meditation", Description: "Clear your mind and find your center.", Category: model.GemMind},
	{ID: 2, Name: "Morning Stretch", Description: "Energize your body for the day ahead.", Category: model.GemBody},
	{ID: 3, Name: "Gratitude Journaling", Description: "Write down three things you are thankful for.", Category: model.GemSoul},
	{ID: 4, Name: "Deep Breathing Exercise", Description: "Practice box breathing for 3 minutes.", Category: model.GemMind},
	{ID: 5, Name: "Go for a 20-minute walk", Description: "Get some fresh air and move your body.", Category: model.GemBody},
	{ID: 6, Name: "Reflect on Your Day", Description: "Think about one positive experience from today.", Category: model.GemSoul},
}

// ListQuestsByCategory returns quests of the given category in catalog
// order. A limit <= 0 means no limit.
func (r *Repository) ListQuestsByCategory(ctx context.Context, category model.Gem, limit int) ([]model.Quest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.RLock()
	defer r.RUnlock()

	out := make([]model.Quest, 0)
	for _, q := range r.quests {
		if limit > 0 && len(out) == limit {
			break
		}
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out, nil
}
