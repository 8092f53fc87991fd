package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/mat"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func header(name string, n int) string {
	if name == "" {
		name = "system"
	}
	return titleStyle.Render(fmt.Sprintf("%s (%d×%d)", name, n, n))
}

func formatVec(v mat.Vector) string {
	parts := make([]string, v.Len())
	for i := range parts {
		parts[i] = fmt.Sprintf("%.6g", v.AtVec(i))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
