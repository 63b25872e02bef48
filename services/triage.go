package services

import (
	"strings"

	"MindHub360/models"
)

type Intent string

const (
	IntentConnection Intent = "connection"
	IntentFinancial  Intent = "financial"
	IntentSocial     Intent = "social"
	IntentStress     Intent = "stress"
	IntentBreathing  Intent = "breathing"
	IntentPhysical   Intent = "physical"
	IntentReferral   Intent = "referral"
	IntentSleep      Intent = "sleep"
	IntentGeneral    Intent = "general"
)

// TriageResponse is what the dispatcher hands back for every utterance.
// There is no failure path: unmatched input gets the general help menu.
type TriageResponse struct {
	Intent    Intent            `json:"intent"`
	Text      string            `json:"text"`
	Exercises []models.Exercise `json:"exercises,omitempty"`
	Doctors   []models.Doctor   `json:"doctors,omitempty"`
}

// TriageService maps a free-text utterance to a response category and
// assembles supporting content. It only ever reads from the store.
type TriageService struct {
	Exercises *ExerciseService
	Auth      *AuthService
}

type triageRule struct {
	intent   Intent
	keywords []string
	respond  func(s *TriageService) TriageResponse
}

// triageRules is evaluated in order and the first match wins. The order
// is a behavioral contract: an utterance hitting several keyword sets
// resolves to the earliest entry, so do not reorder or replace this with
// best-match scoring.
var triageRules = []triageRule{
	{
		intent:   IntentConnection,
		keywords: []string{"homesick", "lonely", "alone", "miss", "family"},
		respond: func(s *TriageService) TriageResponse {
			return TriageResponse{
				Text:      "Feeling disconnected is really hard. Reaching out, even a little, helps. These can ease the ache in the meantime:",
				Exercises: s.gratitudeExercises(),
			}
		},
	},
	{
		intent:   IntentFinancial,
		keywords: []string{"money", "financial", "afford", "budget"},
		respond: func(s *TriageService) TriageResponse {
			exercises := s.Exercises.StressBusters()
			if len(exercises) > 2 {
				exercises = exercises[:2]
			}
			return TriageResponse{
				Text:      "Money worries weigh on everything. Try these to steady yourself, and consider talking it through with someone who handles stress and anxiety:",
				Exercises: exercises,
				Doctors:   s.doctorsBySpecialization("stress", "anxiety"),
			}
		},
	},
	{
		intent:   IntentSocial,
		keywords: []string{"peer pressure", "social", "friends", "fitting in"},
		respond: func(s *TriageService) TriageResponse {
			union := append(s.Exercises.StressBusters(), s.Exercises.YogaTechniques()...)
			return TriageResponse{
				Text:      "Social pressure is exhausting. You don't have to fit every mold. These can help you reset:",
				Exercises: capList(union, contentCap),
			}
		},
	},
	{
		intent:   IntentStress,
		keywords: []string{"stress", "anxious", "overwhelmed", "panic"},
		respond: func(s *TriageService) TriageResponse {
			return TriageResponse{
				Text:      "That sounds overwhelming. Let's bring things down a notch with these:",
				Exercises: s.Exercises.StressBusters(),
			}
		},
	},
	{
		intent:   IntentBreathing,
		keywords: []string{"breath", "meditat", "calm", "relax"},
		respond: func(s *TriageService) TriageResponse {
			return TriageResponse{
				Text:      "Good instinct. A few minutes of focused breathing changes a lot:",
				Exercises: s.Exercises.StressBusters(),
			}
		},
	},
	{
		intent:   IntentPhysical,
		keywords: []string{"yoga", "stretch", "physical", "body", "posture"},
		respond: func(s *TriageService) TriageResponse {
			return TriageResponse{
				Text:      "Moving your body is a great way in. Try these techniques:",
				Exercises: s.Exercises.YogaTechniques(),
			}
		},
	},
	{
		intent:   IntentReferral,
		keywords: []string{"therapist", "counselor", "talk", "doctor", "professional help"},
		respond: func(s *TriageService) TriageResponse {
			return TriageResponse{
				Text:    "Talking to a professional is a strong move. Here are doctors you can book a session with:",
				Doctors: s.doctorsBySpecialization(),
			}
		},
	},
	{
		intent:   IntentSleep,
		keywords: []string{"sleep", "insomnia", "tired", "rest"},
		respond: func(s *TriageService) TriageResponse {
			// Unlike the sibling branches this union carries no total
			// cap. Known inconsistency, preserved on purpose.
			union := append(s.Exercises.StressBusters(), s.Exercises.YogaTechniques()...)
			return TriageResponse{
				Text:      "Poor sleep makes everything harder. Wind down with any of these before bed:",
				Exercises: union,
			}
		},
	},
}

const generalHelpText = "I'm here to help. You can tell me about stress, " +
	"sleep trouble, feeling homesick or lonely, money worries, social " +
	"pressure, or ask for breathing exercises, yoga techniques, or to " +
	"talk to a professional."

/*
* Lower-case the utterance and walk the ordered rule table; the first
* rule whose keyword set matches wins. Empty or unmatched input falls
* through to the general help menu.
 */
func (s *TriageService) ClassifyAndRespond(utterance string) TriageResponse {
	lowered := strings.ToLower(utterance)
	for _, rule := range triageRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				resp := rule.respond(s)
				resp.Intent = rule.intent
				return resp
			}
		}
	}
	return TriageResponse{Intent: IntentGeneral, Text: generalHelpText}
}

/*
* Connection branch content: stress busters mentioning gratitude in
* title or description, falling back to the full default set when none
* mention it.
 */
func (s *TriageService) gratitudeExercises() []models.Exercise {
	all := s.Exercises.StressBusters()
	var matched []models.Exercise
	for _, ex := range all {
		if strings.Contains(strings.ToLower(ex.Title), "gratitude") ||
			strings.Contains(strings.ToLower(ex.Description), "gratitude") {
			matched = append(matched, ex)
		}
	}
	if len(matched) == 0 {
		return all
	}
	return capList(matched, contentCap)
}

/*
* Active doctors capped to contentCap. With terms given, only doctors
* whose specialization mentions one of them are returned.
 */
func (s *TriageService) doctorsBySpecialization(terms ...string) []models.Doctor {
	var out []models.Doctor
	for _, doc := range s.Auth.ListDoctors(true) {
		if len(terms) > 0 {
			spec := strings.ToLower(doc.Specialization)
			hit := false
			for _, term := range terms {
				if strings.Contains(spec, term) {
					hit = true
					break
				}
			}
			if !hit {
				continue
			}
		}
		out = append(out, doc)
		if len(out) == contentCap {
			break
		}
	}
	return out
}
