package problem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToLSPDiagnostic_FoldsNestedIntoMessage(t *testing.T) {
	p := New(AssignabilityProblem, "no path found").
		WithNested(New(ConversionProblem, "no registered conversion").Build()).
		Build()

	diagnostic := ToLSPDiagnostic(p, LSPRange{StartLine: 2, StartChar: 4, EndLine: 2, EndChar: 10})

	assert.Equal(t, LSPSeverityError, diagnostic.Severity)
	assert.Equal(t, "typir", diagnostic.Source)
	assert.Contains(t, diagnostic.Message, "no path found")
	assert.Contains(t, diagnostic.Message, "no registered conversion")
}
