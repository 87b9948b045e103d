// ============================================================================
// gregor - Kalenderarithmetik und Zeitformatierung
// ============================================================================
//
// Package:     monthview
// Description: Message types for the month browser
// Author:      Mike Stoffels
// Created:     2025-12-12
// License:     MIT
// ============================================================================

package monthview

import (
	"time"

	"github.com/msto63/gregor/foundation/utils/timex"
)

// PatternsReloadedMsg carries a new pattern registry after a catalog reload
type PatternsReloadedMsg struct {
	Patterns timex.Patterns
}

// tickMsg refreshes "today" so the browser stays correct across midnight
type tickMsg time.Time

// clearStatusMsg clears a transient status line
type clearStatusMsg struct{}
