package mdlgraph

// readEventObject reads a top-level EventObject block: a node plus an
// EventTrack of frame numbers at which the event fires.
func (s *scanner) readEventObject(sc *Scene) error {
	name, err := s.readNodeName()
	if err != nil {
		return err
	}
	n := newNode(NodeTypeEventObject)
	n.Name = name
	n.EventObject = &EventObjectData{}

	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok {
			return newSyntaxError(s.pos, "expected keyword inside EventObject")
		}
		if kw == "EventTrack" {
			count, err := s.number()
			if err != nil {
				return err
			}
			var arr []float64
			if _, err := s.array(&arr); err != nil {
				return err
			}
			_ = count // hint only, never trusted
			track := make([]uint32, len(arr))
			for i, f := range arr {
				track[i] = uint32(int64(f))
			}
			n.EventObject.EventTrack = track
		} else {
			handled, err := s.tryNodeCommonKey(n, kw)
			if err != nil {
				return err
			}
			if !handled {
				if err := s.readNodeTrailingNumber(n, kw); err != nil {
					return err
				}
			}
		}
		s.maybeSymbol(',')
	}
	if err := s.expectSymbol('}'); err != nil {
		return err
	}

	sc.EventObjects = append(sc.EventObjects, n)
	sc.Nodes = append(sc.Nodes, n)
	return nil
}
