package dynamic

import (
	"reflect"
	"sync/atomic"
)

// The discovery slot holds the external backend's root logger object.
// A backend package (e.g. backend/zap) stores its root here from init(),
// which is what makes the dynamic entry read as "available".
var target atomic.Pointer[any]

// SetTarget registers root as the external backend to bind against.
// Last write wins; a nil root clears nothing and is ignored.
func SetTarget(root any) {
	if root == nil {
		return
	}
	target.Store(&root)
}

// Target returns the registered backend root, if any.
func Target() (any, bool) {
	p := target.Load()
	if p == nil {
		return nil, false
	}
	return *p, true
}

// Available probes the slot against a fully qualified type name as reported
// by reflect (e.g. "*zap.SugaredLogger"). If the external library renames
// the type, availability silently becomes false; that is the documented
// limitation of name-string discovery.
func Available(typeName string) bool {
	p := target.Load()
	if p == nil {
		return false
	}
	t := reflect.TypeOf(*p)
	return t != nil && t.String() == typeName
}
