package controllers

import (
	"MindHub360/services"
)

// Service singletons wired once from main before routes are registered.
var (
	authService     *services.AuthService
	triageService   *services.TriageService
	exerciseService *services.ExerciseService
	therapyService  *services.TherapyService
	forumService    *services.ForumService
	conversation    *services.Conversation
)

func Init(
	auth *services.AuthService,
	triage *services.TriageService,
	exercises *services.ExerciseService,
	therapy *services.TherapyService,
	forum *services.ForumService,
	chat *services.Conversation,
) {
	authService = auth
	triageService = triage
	exerciseService = exercises
	therapyService = therapy
	forumService = forum
	conversation = chat
}
