package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestCandidateConstructors verifies each helper carries its strategy,
// expression and timeout through unchanged.
func TestCandidateConstructors(t *testing.T) {
	css := CSS("#formInput", 5*time.Second)
	assert.Equal(t, StrategyCSS, css.Strategy)
	assert.Equal(t, "#formInput", css.Expression)
	assert.Equal(t, 5*time.Second, css.Timeout)

	xpath := XPath("//button[contains(., 'Track')]", 30*time.Second)
	assert.Equal(t, StrategyXPath, xpath.Strategy)
	assert.Equal(t, "//button[contains(., 'Track')]", xpath.Expression)

	text := Text("ABC123", 10*time.Second)
	assert.Equal(t, StrategyText, text.Strategy)
	assert.Equal(t, "ABC123", text.Expression)
	assert.Equal(t, 10*time.Second, text.Timeout)
}
