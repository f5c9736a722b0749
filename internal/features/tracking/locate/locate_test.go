package locate

import (
	"errors"
	"testing"
	"time"

	"maersk-tracker/internal/features/tracking/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockElement is a no-op Element for locator tests.
type mockElement struct {
	name string
}

func (m *mockElement) Clear() error            { return nil }
func (m *mockElement) Input(text string) error { return nil }
func (m *mockElement) Click() error            { return nil }

// mockFinder resolves candidates whose expression is in the resolvable set
// and fails every other lookup, recording the order of attempts.
type mockFinder struct {
	resolvable map[string]bool
	attempts   []string
}

// Find implements Finder.
func (m *mockFinder) Find(c domain.Candidate) (Element, error) {
	m.attempts = append(m.attempts, c.Expression)
	if m.resolvable[c.Expression] {
		return &mockElement{name: c.Expression}, nil
	}
	return nil, errors.New("wait expired")
}

// FindClickable implements Finder.
func (m *mockFinder) FindClickable(c domain.Candidate) (Element, error) {
	return m.Find(c)
}

func candidates(expressions ...string) []domain.Candidate {
	var cs []domain.Candidate
	for _, e := range expressions {
		cs = append(cs, domain.CSS(e, time.Millisecond))
	}
	return cs
}

// TestFirstMatch_PriorityOrder verifies that the first declared candidate
// wins even when later candidates would also resolve.
func TestFirstMatch_PriorityOrder(t *testing.T) {
	finder := &mockFinder{resolvable: map[string]bool{"#primary": true, "#secondary": true}}

	el, err := FirstMatch(finder, "input", candidates("#primary", "#secondary"))

	require.NoError(t, err)
	assert.Equal(t, "#primary", el.(*mockElement).name)
	assert.Equal(t, []string{"#primary"}, finder.attempts)
}

// TestFirstMatch_FallsThroughTimeouts verifies that individual candidate
// timeouts are swallowed and the search proceeds in order.
func TestFirstMatch_FallsThroughTimeouts(t *testing.T) {
	finder := &mockFinder{resolvable: map[string]bool{"#third": true}}

	el, err := FirstMatch(finder, "input", candidates("#first", "#second", "#third"))

	require.NoError(t, err)
	assert.Equal(t, "#third", el.(*mockElement).name)
	assert.Equal(t, []string{"#first", "#second", "#third"}, finder.attempts)
}

// TestFirstMatch_MixedStrategies verifies the search spans strategies in
// declaration order, falling from a CSS lookup to a text-contains one.
func TestFirstMatch_MixedStrategies(t *testing.T) {
	finder := &mockFinder{resolvable: map[string]bool{"ABC123": true}}

	el, err := FirstMatch(finder, "detail_link", []domain.Candidate{
		domain.CSS("a[data-test='detail']", time.Millisecond),
		domain.Text("ABC123", time.Millisecond),
	})

	require.NoError(t, err)
	assert.Equal(t, "ABC123", el.(*mockElement).name)
	assert.Equal(t, []string{"a[data-test='detail']", "ABC123"}, finder.attempts)
}

// TestFirstMatch_Exhausted verifies the role-carrying failure when every
// candidate times out.
func TestFirstMatch_Exhausted(t *testing.T) {
	finder := &mockFinder{resolvable: map[string]bool{}}

	el, err := FirstMatch(finder, "submit", candidates("#a", "#b"))

	assert.Nil(t, el)
	require.Error(t, err)

	var notFound *ElementNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "submit", notFound.Role)
	assert.Contains(t, err.Error(), "submit")
}

// TestFirstClickable_Exhausted verifies the clickable variant fails the same way.
func TestFirstClickable_Exhausted(t *testing.T) {
	finder := &mockFinder{resolvable: map[string]bool{}}

	el, err := FirstClickable(finder, "cookie_consent", candidates("#a"))

	assert.Nil(t, el)
	var notFound *ElementNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "cookie_consent", notFound.Role)
}

// TestFirstMatch_NoCandidates verifies an empty candidate list fails cleanly.
func TestFirstMatch_NoCandidates(t *testing.T) {
	finder := &mockFinder{resolvable: map[string]bool{}}

	el, err := FirstMatch(finder, "input", nil)

	assert.Nil(t, el)
	var notFound *ElementNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "input", notFound.Role)
}
