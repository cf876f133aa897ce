package mdlgraph

// readCollisionShape reads a top-level CollisionShape block: a node plus a
// Box or Sphere shape with its own vertex list and optional radius.
func (s *scanner) readCollisionShape(sc *Scene) error {
	name, err := s.readNodeName()
	if err != nil {
		return err
	}
	n := newNode(NodeTypeCollisionShape)
	n.Name = name
	n.CollisionShape = &CollisionShapeData{}

	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok {
			return newSyntaxError(s.pos, "expected keyword inside CollisionShape")
		}
		switch kw {
		case "Box":
			n.CollisionShape.Shape = CollisionShapeBox
		case "Sphere":
			n.CollisionShape.Shape = CollisionShapeSphere
		case "Vertices":
			count, err := s.number()
			if err != nil {
				return err
			}
			vs, err := s.readVec3Array(int(count))
			if err != nil {
				return err
			}
			verts := make([][]float32, len(vs))
			for i, v := range vs {
				verts[i] = []float32{v[0], v[1], v[2]}
			}
			n.CollisionShape.Vertices = verts
		default:
			handled, err := s.tryNodeCommonKey(n, kw)
			if err != nil {
				return err
			}
			if handled {
				break
			}
			v, err := s.number()
			if err != nil {
				return newSyntaxError(s.pos, "unexpected keyword %q inside CollisionShape", kw)
			}
			f := float32(v)
			n.CollisionShape.Radius = &f
		}
		s.maybeSymbol(',')
	}
	if err := s.expectSymbol('}'); err != nil {
		return err
	}

	sc.CollisionShapes = append(sc.CollisionShapes, n)
	sc.Nodes = append(sc.Nodes, n)
	return nil
}
