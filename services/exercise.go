package services

import (
	"MindHub360/models"
	"MindHub360/store"
)

// Fallback content served when the store has no entries for a category,
// so first-run and offline behavior always has something to offer. The
// titles are load-bearing: clients and tests match on them.
var DefaultStressBusters = []models.Exercise{
	{
		ID:          "default-stress-1",
		Title:       "Box Breathing",
		Description: "Breathe in for 4 counts, hold for 4, breathe out for 4, hold for 4. Repeat for a few minutes.",
	},
	{
		ID:          "default-stress-2",
		Title:       "Deep Breathing",
		Description: "Slow, deep belly breaths. In through the nose, out through the mouth, until your shoulders drop.",
	},
}

var DefaultYogaTechniques = []models.Exercise{
	{
		ID:          "default-yoga-1",
		Title:       "Child's Pose",
		Description: "Kneel, fold forward, arms extended. Rest here and breathe for one minute.",
	},
	{
		ID:          "default-yoga-2",
		Title:       "Cat-Cow Stretch",
		Description: "On all fours, alternate between arching and rounding your back with each breath.",
	},
}

// contentCap is the per-fetch limit on returned exercises and doctors.
const contentCap = 3

// ExerciseService reads the exercise collections with fallback defaults.
// Admin screens use the Replace operations to seed or curate content.
type ExerciseService struct {
	Store store.ContentStore
}

func capList(list []models.Exercise, limit int) []models.Exercise {
	if limit > 0 && len(list) > limit {
		return list[:limit]
	}
	return list
}

/*
* Fetch stress busters, substituting the hardcoded defaults when the
* store has none, capped to at most contentCap entries.
 */
func (s *ExerciseService) StressBusters() []models.Exercise {
	list := s.Store.GetStressBusters()
	if len(list) == 0 {
		list = DefaultStressBusters
	}
	return capList(list, contentCap)
}

func (s *ExerciseService) YogaTechniques() []models.Exercise {
	list := s.Store.GetYogaTechniques()
	if len(list) == 0 {
		list = DefaultYogaTechniques
	}
	return capList(list, contentCap)
}

func (s *ExerciseService) ReplaceStressBusters(list []models.Exercise) error {
	return s.Store.SaveStressBusters(list)
}

func (s *ExerciseService) ReplaceYogaTechniques(list []models.Exercise) error {
	return s.Store.SaveYogaTechniques(list)
}
