package constants

import "strings"

// ProjectStatus is the canonical lifecycle status for a project.
type ProjectStatus string

// Stable values (store these exact strings in output).
const (
	StatusPlanning     ProjectStatus = "planning"     // announced, not started
	StatusConstruction ProjectStatus = "construction" // being built; default for new brochures
	StatusCompleted    ProjectStatus = "completed"    // handed over
)

// InferProjectStatus reads a lifecycle status out of free text,
// defaulting to construction when nothing explicit is mentioned.
func InferProjectStatus(text string) ProjectStatus {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, string(StatusCompleted)):
		return StatusCompleted
	case strings.Contains(lower, string(StatusPlanning)):
		return StatusPlanning
	default:
		return StatusConstruction
	}
}
