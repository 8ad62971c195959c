// Package intake owns the multi-phase client-interview state machine. One
// Machine instance serves one interview session and must be dispatched to by
// a single caller at a time; concurrent dispatch is the caller's problem to
// serialize.
package intake

// Phase describes one of the five sequential interview stages. The static
// fields (name, minimum questions, checklist, examples) are configuration;
// the per-session counters live on the session state, not here.
type Phase struct {
	Ordinal           int      `json:"ordinal"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	RequiredQuestions int      `json:"required_questions"`
	Checklist         []string `json:"checklist"`
	ExampleQuestions  []string `json:"example_questions"`
}

// phases is the static phase table. Ordinals run 1..5; thresholds sum to 23.
var phases = []Phase{
	{
		Ordinal:           1,
		Name:              "Background & Parties",
		Description:       "Who the client is, who the opposing party is, and the basic shape of the dispute.",
		RequiredQuestions: 5,
		Checklist: []string{
			"Client full legal name",
			"Opposing party identity",
			"Relationship between the parties",
			"State and county where the dispute arose",
			"Whether a case has already been filed",
		},
		ExampleQuestions: []string{
			"What is your full legal name as it should appear on court documents?",
			"Who is the opposing party in this matter?",
			"In which state and county did the events take place?",
		},
	},
	{
		Ordinal:           2,
		Name:              "Facts & Timeline",
		Description:       "The complete factual narrative in chronological order, with dates, documents, and witnesses.",
		RequiredQuestions: 8,
		Checklist: []string{
			"Chronological sequence of key events",
			"Dates of each significant event",
			"Written agreements or notices exchanged",
			"Witnesses to the events",
			"Money amounts involved",
			"Communications between the parties",
		},
		ExampleQuestions: []string{
			"Walk me through what happened, starting from the beginning.",
			"When did you first notice the problem?",
			"Do you have any written records of these events?",
		},
	},
	{
		Ordinal:           3,
		Name:              "Legal Posture",
		Description:       "Existing case numbers, prior filings, deadlines, and the procedural state of the matter.",
		RequiredQuestions: 5,
		Checklist: []string{
			"Existing case number, if any",
			"Court where the matter is pending",
			"Prior motions or orders",
			"Upcoming deadlines or hearing dates",
			"Whether the client has counsel of record",
		},
		ExampleQuestions: []string{
			"Is there already a case number for this matter?",
			"Have you filed anything with the court before?",
			"Are there any deadlines coming up?",
		},
	},
	{
		Ordinal:           4,
		Name:              "Desired Outcome",
		Description:       "What relief the client actually wants the court to order.",
		RequiredQuestions: 3,
		Checklist: []string{
			"Primary relief sought",
			"Monetary amount, if damages are sought",
			"Acceptable alternative outcomes",
		},
		ExampleQuestions: []string{
			"What would you like the court to do?",
			"If the court could only grant one thing, what matters most?",
		},
	},
	{
		Ordinal:           5,
		Name:              "Review & Confirmation",
		Description:       "Confirm the gathered facts and the document type before generation.",
		RequiredQuestions: 2,
		Checklist: []string{
			"Facts summary confirmed by the client",
			"Document type confirmed",
		},
		ExampleQuestions: []string{
			"I have summarized the facts as follows; is anything missing or incorrect?",
			"Shall I prepare this as a motion or as a petition?",
		},
	},
}

// TotalRequiredQuestions is the sum of every phase's minimum, used as the
// denominator for completion percentage.
const TotalRequiredQuestions = 23

// Phases returns the static phase table.
func Phases() []Phase {
	return phases
}

// PhaseByOrdinal returns the phase with the given ordinal and whether it
// exists. Ordinals outside 1..5 return false.
func PhaseByOrdinal(ordinal int) (Phase, bool) {
	if ordinal < 1 || ordinal > len(phases) {
		return Phase{}, false
	}
	return phases[ordinal-1], true
}
