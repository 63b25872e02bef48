package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MindHub360/store"
)

func TestExercises_FallbackDefaults(t *testing.T) {
	s := &ExerciseService{Store: store.NewMemStore()}

	stress := s.StressBusters()
	require.Len(t, stress, 2)
	assert.Equal(t, "Box Breathing", stress[0].Title)
	assert.Equal(t, "Deep Breathing", stress[1].Title)

	yoga := s.YogaTechniques()
	require.Len(t, yoga, 2)
	assert.Equal(t, "Child's Pose", yoga[0].Title)
}

func TestExercises_StoredContentWinsAndIsCapped(t *testing.T) {
	st := store.NewMemStore()
	s := &ExerciseService{Store: st}

	require.NoError(t, s.ReplaceStressBusters(manyExercises("s", 5)))
	got := s.StressBusters()
	assert.Len(t, got, 3)
	assert.NotEqual(t, "Box Breathing", got[0].Title)
}
