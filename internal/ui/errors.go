package ui

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	errorPrefix    = "Error: "
	maxErrorLines  = 2
	minLineWidth   = 10
	truncationMark = "..."
)

// clearErrorMsg is sent after the error clear delay
type clearErrorMsg struct {
	generation int
}

// ErrorManager holds the error shown in the banner and clears it after a delay.
// Every SetError starts a new generation so a stale timer never hides a newer error.
type ErrorManager struct {
	currentError    error
	errorClearDelay time.Duration
	generation      int
}

// NewErrorManager creates an ErrorManager with the given auto-clear delay
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{errorClearDelay: errorClearDelay}
}

// SetError shows err in the banner
func (em *ErrorManager) SetError(err error) {
	em.currentError = err
	em.generation++
}

// SetMessage shows a plain message in the banner
func (em *ErrorManager) SetMessage(msg string) {
	em.SetError(errors.New(msg))
}

// ClearError hides the banner
func (em *ErrorManager) ClearError() {
	em.currentError = nil
}

// GetError returns the error in the banner, or nil
func (em *ErrorManager) GetError() error {
	return em.currentError
}

// HasError reports whether the banner is showing
func (em *ErrorManager) HasError() bool {
	return em.currentError != nil
}

// ClearAfterDelay returns a command that clears the current error after the delay
func (em *ErrorManager) ClearAfterDelay() tea.Cmd {
	gen := em.generation
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{generation: gen}
	})
}

// handleClear clears the banner if msg belongs to the current error.
// It reports whether the banner was cleared.
func (em *ErrorManager) handleClear(msg clearErrorMsg) bool {
	if msg.generation != em.generation || em.currentError == nil {
		return false
	}
	em.currentError = nil
	return true
}

// formatErrorForDisplay word-wraps an error to at most two lines of maxWidth,
// prefixed with "Error: ". Longer messages end with "...".
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}
	words := strings.Fields(err.Error())
	if len(words) == 0 {
		return errorPrefix + "unknown error"
	}

	widths := []int{
		max(maxWidth-utf8.RuneCountInString(errorPrefix), minLineWidth),
		max(maxWidth, minLineWidth),
	}

	var lines []string
	var line strings.Builder
	truncated := false

	for _, word := range words {
		width := widths[min(len(lines), maxErrorLines-1)]
		lineLen := utf8.RuneCountInString(line.String())
		if lineLen > 0 && lineLen+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, line.String())
			line.Reset()
			if len(lines) == maxErrorLines {
				truncated = true
				break
			}
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 && len(lines) < maxErrorLines {
		lines = append(lines, line.String())
	}

	if truncated {
		last := []rune(lines[len(lines)-1])
		keep := widths[1] - utf8.RuneCountInString(truncationMark)
		if len(last) > keep && keep > 0 {
			last = last[:keep]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}
