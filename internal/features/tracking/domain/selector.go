package domain

import "time"

// Strategy identifies how a selector expression should be evaluated.
type Strategy string

const (
	// StrategyCSS locates an element by CSS selector.
	StrategyCSS Strategy = "css"
	// StrategyXPath locates an element by XPath expression.
	StrategyXPath Strategy = "xpath"
	// StrategyText locates an anchor element whose visible text contains the
	// expression.
	StrategyText Strategy = "text"
)

// Candidate is one declared way of locating a semantic UI role. Candidates
// are evaluated in declaration order; the first one that resolves within its
// timeout wins.
type Candidate struct {
	// Strategy selects the lookup mechanism.
	Strategy Strategy
	// Expression is the selector text interpreted per Strategy.
	Expression string
	// Timeout bounds the wait for this single candidate.
	Timeout time.Duration
}

// CSS builds a CSS candidate with the given timeout.
func CSS(expression string, timeout time.Duration) Candidate {
	return Candidate{Strategy: StrategyCSS, Expression: expression, Timeout: timeout}
}

// XPath builds an XPath candidate with the given timeout.
func XPath(expression string, timeout time.Duration) Candidate {
	return Candidate{Strategy: StrategyXPath, Expression: expression, Timeout: timeout}
}

// Text builds a text-contains candidate with the given timeout.
func Text(expression string, timeout time.Duration) Candidate {
	return Candidate{Strategy: StrategyText, Expression: expression, Timeout: timeout}
}
