package intake

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseTable(t *testing.T) {
	ps := Phases()
	require.Len(t, ps, 5)

	total := 0
	for i, p := range ps {
		assert.Equal(t, i+1, p.Ordinal)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Checklist)
		total += p.RequiredQuestions
	}
	assert.Equal(t, TotalRequiredQuestions, total)

	_, ok := PhaseByOrdinal(0)
	assert.False(t, ok)
	_, ok = PhaseByOrdinal(6)
	assert.False(t, ok)
	p, ok := PhaseByOrdinal(2)
	require.True(t, ok)
	assert.Equal(t, "Facts & Timeline", p.Name)
}

func TestMachineStartInterview(t *testing.T) {
	m := NewMachine()
	m.StartInterview(&DocumentContext{CaseNumber: "2:21-cv-04567", State: "CA"})

	state := m.State()
	assert.Equal(t, 1, state.CurrentPhase)
	assert.False(t, state.IsComplete)
	assert.False(t, state.CanGenerateDocument)
	require.NotNil(t, state.DocumentContext)
	assert.Equal(t, "2:21-cv-04567", state.DocumentContext.CaseNumber)
}

func TestAskAndAnswer(t *testing.T) {
	m := NewMachine()
	m.StartInterview(nil)

	m.AskQuestion("What is your full legal name?", 1)
	state := m.State()
	require.NotNil(t, state.Pending)
	assert.Equal(t, 1, state.QuestionsAsked[1])

	m.ReceiveAnswer("Jane Doe", "")
	state = m.State()
	assert.Nil(t, state.Pending)
	require.Len(t, state.Responses, 1)
	assert.Equal(t, "What is your full legal name?", state.Responses[0].Question)
	assert.Equal(t, "Jane Doe", state.Responses[0].Answer)
	assert.Equal(t, "Jane Doe", state.LastAnswer)
}

func TestAnswerWithoutPendingIsNoOp(t *testing.T) {
	m := NewMachine()
	m.StartInterview(nil)

	before := m.State()
	m.ReceiveAnswer("orphan answer", "")
	after := m.State()

	assert.Equal(t, before.Responses, after.Responses)
	assert.Equal(t, before.CurrentPhase, after.CurrentPhase)
	assert.Empty(t, after.LastAnswer)
}

func TestInvalidActionsAreNoOps(t *testing.T) {
	m := NewMachine()
	m.StartInterview(nil)
	before := m.State()

	m.AskQuestion("", 1)
	m.AskQuestion("valid question, invalid phase", 0)
	m.AskQuestion("valid question, invalid phase", 6)
	m.CompletePhase(0)
	m.CompletePhase(99)
	m.Dispatch(Action{Type: "not_a_real_action"})

	after := m.State()
	assert.Equal(t, before.CurrentPhase, after.CurrentPhase)
	assert.Nil(t, after.Pending)
	assert.Empty(t, after.Responses)
	assert.Empty(t, after.QuestionsAsked)
}

// answerN asks and answers n questions in the given phase.
func answerN(t *testing.T, m *Machine, phase, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		m.AskQuestion(fmt.Sprintf("phase %d question %d", phase, i+1), phase)
		m.ReceiveAnswer(fmt.Sprintf("answer %d", i+1), "")
	}
}

func TestFullInterviewFlow(t *testing.T) {
	m := NewMachine()
	m.StartInterview(nil)

	thresholds := []int{5, 8, 5, 3, 2}
	for phase := 1; phase <= 5; phase++ {
		answerN(t, m, phase, thresholds[phase-1])

		state := m.State()
		assert.True(t, state.PhaseProgress[phase], "phase %d should be complete", phase)
		if phase < 5 {
			assert.Equal(t, phase+1, state.CurrentPhase, "cursor should advance past phase %d", phase)
			assert.False(t, state.IsComplete)
		}
	}

	state := m.State()
	assert.True(t, state.IsComplete)
	assert.True(t, state.CanGenerateDocument)
	assert.Len(t, state.Responses, TotalRequiredQuestions)
	assert.Equal(t, 100, m.CompletionPercentage())
}

func TestPhaseCursorNeverMovesBackward(t *testing.T) {
	m := NewMachine()
	m.StartInterview(nil)

	m.CompletePhase(3)
	assert.Equal(t, 4, m.State().CurrentPhase)

	// Completing an earlier phase must not regress the cursor
	m.CompletePhase(1)
	assert.Equal(t, 4, m.State().CurrentPhase)
}

func TestSkipToGeneration(t *testing.T) {
	m := NewMachine()
	m.StartInterview(nil)
	answerN(t, m, 1, 2)

	m.SkipToGeneration()
	state := m.State()
	assert.True(t, state.CanGenerateDocument)
	assert.False(t, state.IsComplete, "skipping enables generation without completing the interview")
}

func TestReset(t *testing.T) {
	m := NewMachine()
	docCtx := &DocumentContext{CaseNumber: "CR12345678"}
	m.StartInterview(docCtx)
	answerN(t, m, 1, 5)
	answerN(t, m, 2, 3)

	m.Reset()
	state := m.State()
	assert.Equal(t, 1, state.CurrentPhase)
	assert.Empty(t, state.Responses)
	assert.False(t, state.IsComplete)
	assert.False(t, state.CanGenerateDocument)
	// Document context survives a reset
	require.NotNil(t, state.DocumentContext)
	assert.Equal(t, "CR12345678", state.DocumentContext.CaseNumber)
}

func TestRestoreMachine(t *testing.T) {
	m := NewMachine()
	m.StartInterview(nil)
	answerN(t, m, 1, 5)
	persisted := m.State()

	restored := RestoreMachine(persisted)
	state := restored.State()
	assert.Equal(t, 2, state.CurrentPhase)
	assert.Len(t, state.Responses, 5)

	// Restoring a zero value must re-establish map invariants
	blank := RestoreMachine(State{})
	blank.AskQuestion("question after restore", 1)
	blank.ReceiveAnswer("answer", "")
	assert.Len(t, blank.State().Responses, 1)
}

func TestStateReturnsCopy(t *testing.T) {
	m := NewMachine()
	m.StartInterview(nil)
	answerN(t, m, 1, 1)

	state := m.State()
	state.PhaseProgress[1] = true
	state.QuestionsAsked[1] = 99
	state.Responses[0].Answer = "mutated"

	fresh := m.State()
	assert.False(t, fresh.PhaseProgress[1])
	assert.Equal(t, 1, fresh.QuestionsAsked[1])
	assert.Equal(t, "answer 1", fresh.Responses[0].Answer)
}

func TestCompletionPercentage(t *testing.T) {
	m := NewMachine()
	m.StartInterview(nil)
	assert.Equal(t, 0, m.CompletionPercentage())

	answerN(t, m, 1, 5)
	assert.Equal(t, 5*100/23, m.CompletionPercentage())

	// Asking beyond the minimums caps at 100
	for phase := 1; phase <= 5; phase++ {
		answerN(t, m, phase, 10)
	}
	assert.Equal(t, 100, m.CompletionPercentage())
}

func TestInterviewSummary(t *testing.T) {
	m := NewMachine()
	m.StartInterview(nil)

	m.AskQuestion("What is your full legal name?", 1)
	m.ReceiveAnswer("Jane Doe", "")
	m.AskQuestion("What would you like the court to do?", 4)
	m.ReceiveAnswer("Vacate my conviction", "")

	summary := m.InterviewSummary()
	assert.Contains(t, summary, "Background & Parties")
	assert.Contains(t, summary, "Q: What is your full legal name?")
	assert.Contains(t, summary, "A: Jane Doe")
	assert.Contains(t, summary, "Desired Outcome")
	assert.NotContains(t, summary, "Facts & Timeline", "phases without responses are omitted")

	// Phase 1 responses render before phase 4 responses
	idx1 := strings.Index(summary, "Background & Parties")
	idx4 := strings.Index(summary, "Desired Outcome")
	assert.Less(t, idx1, idx4)
}

func TestDispatchRoutesActions(t *testing.T) {
	m := NewMachine()

	state := m.Dispatch(Action{Type: ActionStartInterview})
	assert.Equal(t, 1, state.CurrentPhase)

	state = m.Dispatch(Action{Type: ActionAskQuestion, Question: "who?", Phase: 1})
	require.NotNil(t, state.Pending)

	state = m.Dispatch(Action{Type: ActionReceiveAnswer, Answer: "me"})
	assert.Len(t, state.Responses, 1)

	state = m.Dispatch(Action{Type: ActionSkipToGeneration})
	assert.True(t, state.CanGenerateDocument)

	state = m.Dispatch(Action{Type: ActionReset})
	assert.Empty(t, state.Responses)
	assert.False(t, state.CanGenerateDocument)
}
