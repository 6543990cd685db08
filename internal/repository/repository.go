package repository

import (
	"sync"

	"wellness_gauntlet/internal/model"
	"wellness_gauntlet/pkg/logger"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrDuplicateQuest = errors.New("duplicate quest id")

// Repository is the read-only quest catalog. It is seeded once and never
// mutated, so callers always receive copies.
type Repository struct {
	quests []model.Quest
	sync.RWMutex
}

func New(quests []model.Quest) (*Repository, error) {
	seen := make(map[int]struct{}, len(quests))
	for _, q := range quests {
		if _, ok := seen[q.ID]; ok {
			return nil, errors.Wrapf(ErrDuplicateQuest, "id %d", q.ID)
		}
		seen[q.ID] = struct{}{}
	}

	catalog := make([]model.Quest, len(quests))
	copy(catalog, quests)

	logger.Logger().Info("Quest catalog loaded", zap.Int("quests", len(catalog)))

	return &Repository{
		quests: catalog,
	}, nil
}

// NewDefault returns the catalog seeded with DefaultQuests.
func NewDefault() *Repository {
	r, err := New(DefaultQuests)
	if err != nil {
		panic(err)
	}
	return r
}
