package control

// Frame is an open container.
type Frame struct {
	Type Type

	// Count is the number of blocks read directly inside the container,
	// not counting nested containers' contents.
	Count uint64
}

// Stack holds the open containers, innermost last.
type Stack []*Frame

func (s *Stack) Push(f *Frame) {
	*s = append(*s, f)
}

func (s *Stack) Top() *Frame {
	if len(*s) == 0 {
		return nil
	}

	return (*s)[len(*s)-1]
}

func (s *Stack) Pop() (err error) {
	top := s.Top()
	if top == nil {
		return Error.New("no frame on stack")
	}

	if top.Type != ContainerUnbounded {
		return Error.New("unexpected frame %q", top.Type.Abbr)
	}

	*s = (*s)[:len(*s)-1]

	return nil
}

// Count adds one block to the innermost container.
func (s *Stack) Count() {
	if top := s.Top(); top != nil {
		top.Count++
	}
}
