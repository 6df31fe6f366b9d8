package questionnaire

import "github.com/Ajugbo/aiq-platform/internal/store"

// submittedMsg carries the outcome of scoring and storing the session.
type submittedMsg struct {
	Result *store.Result
	Err    error
}
