// ============================================================================
// TDL - Task Definition Language Toolchain
// ============================================================================
//
// Package:     diagnostic
// Description: Styles for diagnostic output
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package diagnostic

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorText    = lipgloss.Color("#F8FAFC") // Slate 50
)

var (
	LocationStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	KindStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	LexicalKindStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	GutterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	CaretStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)
