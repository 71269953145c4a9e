package input

// Script is a Device that plays back a prerecorded tape of samples, one per
// frame. Once the tape runs out it keeps returning the zero sample, so a
// finished script reads as "all controls released".
type Script struct {
	tape []Sample
	pos  int
}

func NewScript(tape ...Sample) *Script {
	return &Script{tape: tape}
}

// Hold appends n frames of the same sample to the tape.
func (s *Script) Hold(sample Sample, n int) *Script {
	for i := 0; i < n; i++ {
		s.tape = append(s.tape, sample)
	}
	return s
}

// Press appends a single-frame tap of one action.
func (s *Script) Press(a ActionID) *Script {
	var sample Sample
	sample.Buttons[a] = true
	s.tape = append(s.tape, sample)
	return s
}

func (s *Script) Sample() Sample {
	if s.pos >= len(s.tape) {
		return Sample{}
	}
	out := s.tape[s.pos]
	s.pos++
	return out
}

// Done reports whether the tape has been fully consumed.
func (s *Script) Done() bool {
	return s.pos >= len(s.tape)
}
