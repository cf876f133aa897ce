package mdlgraph

// readGlobalSequences reads the GlobalSequences block: `<count> { (Duration
// <n> ,)* }`, an ordered list of loop durations addressed by index from
// AnimatedTrack.GlobalSeqID elsewhere in the scene.
func (s *scanner) readGlobalSequences(sc *Scene) error {
	count, err := s.number()
	if err != nil {
		return err
	}
	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	durations := make([]int32, 0, int(count))
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok || kw != "Duration" {
			return newSyntaxError(s.pos, "expected Duration inside GlobalSequences")
		}
		v, err := s.number()
		if err != nil {
			return err
		}
		durations = append(durations, wrapInt32(v))
		s.maybeSymbol(',')
	}
	if err := s.expectSymbol('}'); err != nil {
		return err
	}
	sc.GlobalSequences = durations
	return nil
}
