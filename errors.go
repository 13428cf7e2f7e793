package sketch

import "errors"

var (
	// ErrStackUnderflow is returned by TransformStack.Pop when only the base
	// frame remains. The stack is left untouched; drawing may continue.
	ErrStackUnderflow = errors.New("sketch: matrix stack underflow")

	// ErrEmptyStack reports a transform stack without any frame. It cannot
	// happen through the public API and is kept as a guard.
	ErrEmptyStack = errors.New("sketch: no matrix on the stack")

	// ErrDocumentReleased is reported when drawing into a Canvas whose
	// document was handed off with Finish.
	ErrDocumentReleased = errors.New("sketch: document already released")
)
