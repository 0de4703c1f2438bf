package tui

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-snowstart/pkg/prompt"
)

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = fmt.Errorf("tui: aborted: %w", prompt.ErrCancelled)
	// ErrNoChoices is returned when a select spec has nothing to pick from.
	ErrNoChoices = errors.New("tui: select prompt has no choices")
)
