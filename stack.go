package sketch

// TransformStack is a non-empty stack of nested coordinate frames.
// The top frame is the current transform applied to newly drawn paths.
//
// The zero value is not usable; create stacks with NewTransformStack.
type TransformStack struct {
	frames []Matrix
}

// NewTransformStack returns a stack holding a single identity frame.
func NewTransformStack() *TransformStack {
	frames := make([]Matrix, 1, 8)
	frames[0] = Identity()
	return &TransformStack{frames: frames}
}

// Len returns the number of frames on the stack. It is always at least 1.
func (s *TransformStack) Len() int {
	return len(s.frames)
}

// Current returns the top frame.
// On an empty stack it reports ErrEmptyStack and returns the identity.
func (s *TransformStack) Current() (Matrix, error) {
	if len(s.frames) == 0 {
		return Identity(), ErrEmptyStack
	}
	return s.frames[len(s.frames)-1], nil
}

// PushCopy duplicates the top frame, opening a new modifiable frame
// identical to the current one.
func (s *TransformStack) PushCopy() {
	top, _ := s.Current()
	s.frames = append(s.frames, top)
}

// PushIdentity pushes an identity frame, temporarily shadowing the
// accumulated transform.
func (s *TransformStack) PushIdentity() {
	s.frames = append(s.frames, Identity())
}

// Pop removes the top frame, restoring the previous one.
// The base frame is never removed: popping it returns ErrStackUnderflow
// and leaves the stack unchanged.
func (s *TransformStack) Pop() error {
	if len(s.frames) <= 1 {
		return ErrStackUnderflow
	}
	s.frames = s.frames[:len(s.frames)-1]
	return nil
}

// Apply composes m onto the top frame (top = top * m), so that m acts in
// the current local frame.
func (s *TransformStack) Apply(m Matrix) error {
	if len(s.frames) == 0 {
		return ErrEmptyStack
	}
	top := &s.frames[len(s.frames)-1]
	*top = top.Multiply(m)
	return nil
}

// Scoped pushes a copy of the top frame, calls f and pops the frame again.
// Only the push made by Scoped is undone: frames that f pushes without
// popping stay on the stack.
func (s *TransformStack) Scoped(f func(*TransformStack)) (err error) {
	s.PushCopy()
	defer func() { err = s.Pop() }()
	f(s)
	return nil
}
