package mdlgraph

// extras holds the number-valued keywords a loose-shape handler didn't
// recognize. The grammar lets any block carry vendor or future keywords the
// reader has no dedicated field for; rather than reject them, loose handlers
// (Bone, Helper, Attachment, EventObject, both particle emitters, Light,
// RibbonEmitter) stash them here keyed by keyword.
type extras map[string]float64

func (e *extras) set(key string, value float64) {
	if *e == nil {
		*e = make(extras)
	}
	(*e)[key] = value
}
