// Package locator turns element descriptions into lazy locators.
//
// Nothing is looked up when a locator is built; every interaction on it
// queries the live page again. Single-element lookups always narrow to the
// first match, so a page that renders the same control twice still gets a
// deterministic target instead of an ambiguity error.
package locator

import (
	"practice_automation/domain/entities"
	"practice_automation/domain/interfaces"
)

// Resolver builds locators within one scope: a page, a frame or an element
type Resolver struct {
	scope interfaces.Scope
}

// New returns a resolver over scope
func New(scope interfaces.Scope) Resolver {
	return Resolver{scope: scope}
}

// Resolve builds the locator described by q, narrowed to its first match
func (r Resolver) Resolve(q entities.Query) interfaces.Locator {
	return r.scope.Locate(q).First()
}

// ByRole finds an element by ARIA role and accessible name
func (r Resolver) ByRole(role, name string) interfaces.Locator {
	return r.Resolve(entities.Query{Strategy: entities.StrategyRole, Role: role, Value: name})
}

// ByLabel finds a form control by its label text
func (r Resolver) ByLabel(text string) interfaces.Locator {
	return r.Resolve(entities.Query{Strategy: entities.StrategyLabel, Value: text})
}

// ByPlaceholder finds an input by its placeholder
func (r Resolver) ByPlaceholder(text string) interfaces.Locator {
	return r.Resolve(entities.Query{Strategy: entities.StrategyPlaceholder, Value: text})
}

// ByCSS finds an element by CSS selector
func (r Resolver) ByCSS(selector string) interfaces.Locator {
	return r.Resolve(entities.Query{Strategy: entities.StrategyCSS, Value: selector})
}

// ByText finds an element whose visible text is exactly text
func (r Resolver) ByText(text string) interfaces.Locator {
	return r.Resolve(entities.Query{Strategy: entities.StrategyText, Value: text, Exact: true})
}

// ByTextContaining finds an element whose visible text contains text
func (r Resolver) ByTextContaining(text string) interfaces.Locator {
	return r.Resolve(entities.Query{Strategy: entities.StrategyText, Value: text})
}

// HasText finds the first element matching selector that contains text
func (r Resolver) HasText(selector, text string) interfaces.Locator {
	return r.All(selector).Filter(text).First()
}

// All returns every element matching selector, for collections
func (r Resolver) All(selector string) interfaces.Locator {
	return r.scope.Locate(entities.Query{Strategy: entities.StrategyCSS, Value: selector})
}

// Frame returns a resolver over the document of the iframe matching selector
func (r Resolver) Frame(selector string) Resolver {
	return Resolver{scope: r.scope.Frame(selector)}
}

// Within returns a resolver scoped to the elements of l
func Within(l interfaces.Locator) Resolver {
	return Resolver{scope: l}
}
