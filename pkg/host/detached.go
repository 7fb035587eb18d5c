package host

import "github.com/go-drift/fomantic/pkg/errors"

// detachedHost backs builders created before a host is installed.
type detachedHost struct{}

func (detachedHost) NewObject() Object {
	return &memObject{props: make(map[string]any)}
}

func (detachedHost) FuncOf(fn func(args []Value) any) Func {
	return &memFunc{}
}

func (detachedHost) Construct(kind string, args ...any) (Object, error) {
	return nil, ErrHostUnavailable
}

func (detachedHost) Query(selector string) (Object, error) {
	return nil, &errors.LookupError{Selector: selector, Diagnostic: ErrHostUnavailable.Error()}
}

type memObject struct {
	props map[string]any
}

func (o *memObject) Set(name string, value any) {
	o.props[name] = value
}

func (o *memObject) Call(method string, args ...any) Value {
	return nil
}

type memFunc struct{}

func (*memFunc) Release() {}
