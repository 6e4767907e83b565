package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/typegraph/typir/problem"
)

func TestCollector_Validate_RunsRulesInOrderAndConcatenates(t *testing.T) {
	c := NewCollector()
	c.AddValidationRule(func(node any) []problem.Message {
		return []problem.Message{problem.NewMessage("first")}
	})
	c.AddValidationRule(func(node any) []problem.Message {
		return []problem.Message{problem.NewMessage("second"), problem.NewMessage("third")}
	})

	messages := c.Validate(struct{}{})
	require := assert.New(t)
	require.Len(messages, 3)
	require.Equal("first", messages[0].Text)
	require.Equal("second", messages[1].Text)
	require.Equal("third", messages[2].Text)
}

func TestCollector_Validate_NoRulesReportAnything_ReturnsNil(t *testing.T) {
	c := NewCollector()
	c.AddValidationRule(func(node any) []problem.Message { return nil })

	assert.Nil(t, c.Validate(struct{}{}))
}

func TestCollector_Validate_NeverPanicsOnRuleReportingFailure(t *testing.T) {
	c := NewCollector()
	c.AddValidationRule(func(node any) []problem.Message {
		return []problem.Message{problem.NewMessage("constraint violated")}
	})

	assert.NotPanics(t, func() {
		c.Validate(42)
	})
}
