package mdlgraph

// readPivotPoints reads the PivotPoints block: `<count> { (arr3 ,)* }`,
// stored positionally and later matched to Nodes by index in finalize.
func (s *scanner) readPivotPoints(sc *Scene) error {
	count, err := s.number()
	if err != nil {
		return err
	}
	vs, err := s.readVec3Array(int(count))
	if err != nil {
		return err
	}
	sc.PivotPoints = vs
	return nil
}

// finalize assigns each node its pivot point by positional index, once all
// blocks have been read.
func finalize(sc *Scene) {
	for i, n := range sc.Nodes {
		if i < len(sc.PivotPoints) {
			v := sc.PivotPoints[i]
			n.PivotPoint = []float32{v[0], v[1], v[2]}
		}
	}
}
