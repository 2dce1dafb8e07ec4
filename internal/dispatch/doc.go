// Package dispatch routes generic verbs to the series, compare, search, and
// mutation engines and constructs result values.
//
// Each Dispatch call is a pure function of its request, except for the
// mutation side effects on the operand's series. The dispatcher validates
// operand shapes, decodes refinements per verb, and chooses between returning
// the (possibly mutated) input view, a fresh view wrapping new storage, or
// the none sentinel. Construction verbs (make, to) bypass the mutation
// engine entirely and build new storage from an arbitrary source value.
//
// File- and url-kinded values delegate verbs at or above PortActions to a
// PortActor collaborator; the dispatcher itself knows nothing of devices.
//
// Path navigation (indexed get/set through a value inside a navigation
// chain) uses the separate SelectPath/SetPath entry points, which report
// through PathResult codes instead of errors so the navigator can compose
// steps.
package dispatch
