package mdlgraph

// genericPrefix is the optional lead-in before a brace block's body: either a
// quoted name or a bare numeric index. Present reports whether either was
// read; Name holds a quoted prefix and Index a numeric one.
type genericPrefix struct {
	Present bool
	Name    string
	Index   float64
}

// genericEntry is one `key value` pair inside a generic block body. Interval
// and MinimumExtent/MaximumExtent are always read as arrays (their length is
// not checked here; callers narrow them, e.g. Interval to an unsigned pair);
// every other key retains its raw scalar/string/array shape for the caller
// to interpret.
type genericEntry struct {
	Key   string
	IsStr bool
	Str   string
	Arr   []float64 // populated for both array values and bare scalars (len 1)
}

type genericBody []genericEntry

func (b genericBody) find(key string) (genericEntry, bool) {
	for _, e := range b {
		if e.Key == key {
			return e, true
		}
	}
	return genericEntry{}, false
}

func (b genericBody) Float(key string) (float64, bool) {
	e, ok := b.find(key)
	if !ok || e.IsStr || len(e.Arr) == 0 {
		return 0, false
	}
	return e.Arr[0], true
}

func (b genericBody) String(key string) (string, bool) {
	e, ok := b.find(key)
	if !ok || !e.IsStr {
		return "", false
	}
	return e.Str, true
}

func (b genericBody) Array(key string) ([]float64, bool) {
	e, ok := b.find(key)
	if !ok || e.IsStr {
		return nil, false
	}
	return e.Arr, true
}

func (b genericBody) Has(key string) bool {
	_, ok := b.find(key)
	return ok
}

// readGenericPrefix reads the optional prefix of a "prefixed" block: a
// quoted name, else a bare numeric index, else nothing.
func (s *scanner) readGenericPrefix() (genericPrefix, error) {
	if str, ok, err := s.quotedString(); err != nil {
		return genericPrefix{}, err
	} else if ok {
		return genericPrefix{Present: true, Name: str}, nil
	}
	if isNumStart(s.peekChar()) && s.peekChar() != '{' {
		v, err := s.number()
		if err != nil {
			return genericPrefix{}, err
		}
		return genericPrefix{Present: true, Index: v}, nil
	}
	return genericPrefix{}, nil
}

// readGenericBody reads `{ key value (,)? }*`, recognizing the value shape by
// peeking the next character: `{` => array, `"` => string, digit/minus =>
// number. Interval and MinimumExtent/MaximumExtent are always read as
// arrays, whatever their length; every other key keeps its natural shape.
func (s *scanner) readGenericBody() (genericBody, error) {
	if err := s.expectSymbol('{'); err != nil {
		return nil, err
	}
	var body genericBody
	for s.peekChar() != '}' {
		key, ok := s.keyword()
		if !ok {
			return nil, newSyntaxError(s.pos, "expected keyword, found %q", s.describeCurrent())
		}
		entry, err := s.readGenericValue(key)
		if err != nil {
			return nil, err
		}
		body = append(body, entry)
		s.maybeSymbol(',')
	}
	if err := s.expectSymbol('}'); err != nil {
		return nil, err
	}
	return body, nil
}

func (s *scanner) readGenericValue(key string) (genericEntry, error) {
	switch key {
	case "NonLooping":
		// Presence-only flag: no value follows the keyword.
		return genericEntry{Key: key}, nil
	case "Interval":
		var arr []float64
		if _, err := s.array(&arr); err != nil {
			return genericEntry{}, err
		}
		return genericEntry{Key: key, Arr: arr}, nil
	case "MinimumExtent", "MaximumExtent":
		var arr []float64
		if _, err := s.array(&arr); err != nil {
			return genericEntry{}, err
		}
		return genericEntry{Key: key, Arr: arr}, nil
	}

	switch s.peekChar() {
	case '{':
		var arr []float64
		if _, err := s.array(&arr); err != nil {
			return genericEntry{}, err
		}
		return genericEntry{Key: key, Arr: arr}, nil
	case '"':
		str, _, err := s.quotedString()
		if err != nil {
			return genericEntry{}, err
		}
		return genericEntry{Key: key, IsStr: true, Str: str}, nil
	default:
		v, err := s.number()
		if err != nil {
			return genericEntry{}, err
		}
		return genericEntry{Key: key, Arr: []float64{v}}, nil
	}
}

func toFloat32Slice(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, f := range v {
		out[i] = float32(f)
	}
	return out
}

func toUint32Pair(v []float64) [2]uint32 {
	var out [2]uint32
	for i := 0; i < 2 && i < len(v); i++ {
		out[i] = uint32(int64(v[i]))
	}
	return out
}
