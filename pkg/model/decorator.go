package model

// Decorator enriches a compiled document with renderer-facing metadata before
// it is handed to a renderer. Decorators receive their own copy of the
// document; the compiler's output is never modified in place.
type Decorator interface {
	Decorate(*Document) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*Document) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(doc *Document) error {
	return fn(doc)
}
