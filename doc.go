// Package inputvalidation reads validated values from a console: it writes a
// prompt, reads a token, checks it and asks again until the value is
// acceptable.
//
// A Reader parses tokens as any ordered scalar type and can gate them on a
// Bound (a comparison with a reference value) plus extra rules:
//
//	c := console.Stdio()
//	r, err := inputvalidation.NewReader(c, c, inputvalidation.Config[int]{
//	    Prompt: "Enter age",
//	    Bound:  inputvalidation.Bounded(inputvalidation.GreaterOrEqual, 18),
//	    Policy: inputvalidation.DefaultPolicy("Try again"),
//	})
//	age, err := r.Read(ctx)
//
// A Menu shows numbered options and returns the 1-based selection.
//
// Rules are ozzo-validation rules that can also describe themselves on an
// OpenAPI schema; [Hint] turns those descriptions into the short text shown
// after a prompt.
//
// Sub-packages:
//   - console – stdin/stdout token source and display
//   - transform – token sanitizers and struct string helpers
package inputvalidation
