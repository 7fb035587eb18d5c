package host

// Handle is a live host object together with the behavior method its
// commands go through, e.g. the "modal" method of a modal element.
type Handle struct {
	obj    Object
	method string
}

// NewHandle returns a handle that sends commands to obj via method.
func NewHandle(obj Object, method string) Handle {
	return Handle{obj: obj, method: method}
}

// Object returns the underlying host object.
func (h Handle) Object() Object {
	return h.obj
}

// Command sends a command token, e.g. "show" or "hide dimmer".
func (h Handle) Command(token string) {
	h.obj.Call(h.method, token)
}

// Query sends a boolean query token, e.g. "is active". A non-boolean
// answer counts as false.
func (h Handle) Query(token string) bool {
	b, _ := h.obj.Call(h.method, token).(bool)
	return b
}
