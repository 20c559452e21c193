package query

// Matcher decides whether an attribute value is wanted
type Matcher interface {
	Match(value string) bool
}

type scalar string

func (s scalar) Match(value string) bool {
	return value == string(s)
}

type set map[string]struct{}

func (s set) Match(value string) bool {
	_, ok := s[value]
	return ok
}

// Scalar matches exactly v
func Scalar(v string) Matcher {
	return scalar(v)
}

// Set matches any of vs. An empty set matches nothing.
func Set(vs ...string) Matcher {
	s := make(set, len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}
	return s
}
