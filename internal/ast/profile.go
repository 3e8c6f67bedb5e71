package ast

// TypeProfile is the parameter and result type profile used to tell
// overloaded declarations apart. Types compare by identity.
type TypeProfile struct {
	Params []Node
	Result Node
}

// Equal reports whether two profiles have the same parameter count, the same
// parameter types in order and the same result type.
func (p TypeProfile) Equal(other TypeProfile) bool {
	if len(p.Params) != len(other.Params) {
		return false
	}
	for i := range p.Params {
		if p.Params[i] != other.Params[i] {
			return false
		}
	}
	return p.Result == other.Result
}
