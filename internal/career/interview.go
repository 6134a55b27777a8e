package career

import (
	"strings"

	"github.com/polkiloo/careerpath/internal/domain/model"
)

const maxQuestions = 10

var skillQuestions = map[string][]string{
	"javascript": {
		"Explain the difference between let, const, and var.",
		"What are closures in JavaScript?",
		"How does the event loop work in JavaScript?",
	},
	"react": {
		"What are React hooks and how do they work?",
		"Explain the virtual DOM concept.",
		"How do you optimize React component performance?",
	},
	"python": {
		"What are Python decorators?",
		"Explain the difference between lists and tuples.",
		"What is the Global Interpreter Lock (GIL)?",
	},
	"node.js": {
		"How does Node.js handle asynchronous operations?",
		"What are streams in Node.js?",
		"Explain the event-driven architecture in Node.js.",
	},
	"database": {
		"What is the difference between SQL and NoSQL databases?",
		"Explain ACID properties in database transactions.",
		"What are database indexes and how do they work?",
	},
}

var generalQuestions = []string{
	"Tell us about yourself and your background.",
	"Why are you interested in this position?",
	"What are your strengths and weaknesses?",
	"Describe a challenging project you worked on.",
	"How do you stay updated with the latest technology trends?",
}

var difficulties = []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard}

// InterviewQuestions builds up to ten mock questions for skills, falling back to general
// questions when no skill has a question set. Difficulty cycles Easy, Medium, Hard.
func InterviewQuestions(skills []string) []model.InterviewQuestion {
	skills = Clean(skills)

	var questions []string
	for _, skill := range skills {
		questions = append(questions, skillQuestions[strings.ToLower(skill)]...)
	}
	if len(questions) == 0 {
		questions = generalQuestions
	}
	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}

	category := "General"
	if len(skills) > 0 {
		category = skills[0]
	}

	out := make([]model.InterviewQuestion, len(questions))
	for i, q := range questions {
		out[i] = model.InterviewQuestion{
			ID:         i + 1,
			Question:   q,
			Category:   category,
			Difficulty: difficulties[i%len(difficulties)],
		}
	}
	return out
}
