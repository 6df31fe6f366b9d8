// Package questionnaire is the screen that walks the user through the
// questions and submits the answers for scoring.
package questionnaire

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/Ajugbo/aiq-platform/internal/router"
	"github.com/Ajugbo/aiq-platform/internal/screen"
	"github.com/Ajugbo/aiq-platform/internal/screens/results"
	"github.com/Ajugbo/aiq-platform/internal/session"
	"github.com/Ajugbo/aiq-platform/internal/store"
	"github.com/Ajugbo/aiq-platform/internal/ui/layout"
)

// answerCharLimit bounds a single answer.
const answerCharLimit = 4000

// Screen presents one question at a time with a free-text answer area.
type Screen struct {
	svc   *session.Service
	store store.ResultStore
	state *session.State
	area  textarea.Model

	confirmQuit bool
	submitting  bool
	errMsg      string
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
	_ screen.BackHandler     = (*Screen)(nil)
)

// New starts a fresh session. s is handed to the results screen shown
// after a successful submit.
func New(svc *session.Service, s store.ResultStore) *Screen {
	area := textarea.New()
	area.Placeholder = "Type your answer..."
	area.ShowLineNumbers = false
	area.CharLimit = answerCharLimit
	area.SetHeight(6)
	area.Focus()

	q := &Screen{
		svc:   svc,
		store: s,
		area:  area,
	}
	if svc != nil {
		q.state = svc.Start()
	} else {
		q.errMsg = "assessment service unavailable"
	}
	return q
}

func (q *Screen) Init() tea.Cmd {
	return textarea.Blink
}

func (q *Screen) Title() string {
	return "Assessment"
}

// HandlesBack reports that Esc opens the quit confirmation instead of
// leaving immediately.
func (q *Screen) HandlesBack() bool {
	return true
}

func (q *Screen) KeyHints() []layout.KeyHint {
	switch {
	case q.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Discard answers"},
			{Key: "N", Description: "Keep going"},
		}
	case q.submitting:
		return []layout.KeyHint{{Key: "", Description: "Scoring..."}}
	case q.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}

	hints := []layout.KeyHint{}
	if !q.state.IsFirst() {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+P", Description: "Previous"})
	}
	if q.state.IsLast() {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Submit"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+N", Description: "Next"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
}

func (q *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		return q.handleSubmitted(msg)
	case tea.KeyPressMsg:
		return q.handleKey(msg)
	}

	if q.state != nil && !q.submitting {
		var cmd tea.Cmd
		q.area, cmd = q.area.Update(msg)
		return q, cmd
	}
	return q, nil
}

func (q *Screen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if q.submitting {
		return q, nil
	}

	// Without a session there is nothing to return to.
	if q.state == nil {
		return q, pop
	}

	// A failed submit keeps the answers; any key returns to the question.
	if q.errMsg != "" {
		q.errMsg = ""
		return q, nil
	}

	if q.confirmQuit {
		switch key {
		case "y", "Y":
			q.confirmQuit = false
			return q, pop
		case "n", "N", "esc":
			q.confirmQuit = false
		}
		return q, nil
	}

	// The textarea binds ctrl+n and ctrl+p to line movement; navigation wins.
	switch key {
	case "esc":
		q.confirmQuit = true
		return q, nil
	case "ctrl+n":
		return q.next()
	case "ctrl+p":
		return q.previous()
	case "ctrl+s":
		if q.state.IsLast() {
			return q.submit()
		}
		return q, nil
	}

	var cmd tea.Cmd
	q.area, cmd = q.area.Update(msg)
	return q, cmd
}

// next saves the answer and advances. On the last question it submits.
func (q *Screen) next() (screen.Screen, tea.Cmd) {
	if !q.state.Next(q.area.Value()) {
		return q.submit()
	}
	q.loadAnswer()
	return q, nil
}

func (q *Screen) previous() (screen.Screen, tea.Cmd) {
	if q.state.Previous(q.area.Value()) {
		q.loadAnswer()
	}
	return q, nil
}

func (q *Screen) loadAnswer() {
	q.area.SetValue(q.state.Response(q.state.Current))
}

func (q *Screen) submit() (screen.Screen, tea.Cmd) {
	q.state.Save(q.area.Value())
	q.submitting = true

	svc, st := q.svc, q.state
	return q, func() tea.Msg {
		res, err := svc.Submit(context.Background(), st)
		return submittedMsg{Result: res, Err: err}
	}
}

func (q *Screen) handleSubmitted(msg submittedMsg) (screen.Screen, tea.Cmd) {
	q.submitting = false
	if msg.Err != nil {
		q.errMsg = fmt.Sprintf("Could not save your result: %v", msg.Err)
		return q, nil
	}

	res := msg.Result
	return q, tea.Batch(
		func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: results.New(q.store, res)}
		},
		func() tea.Msg {
			return screen.ResultSavedMsg{Score: res.Score, Level: string(res.Level)}
		},
	)
}

func pop() tea.Msg {
	return router.PopScreenMsg{}
}
