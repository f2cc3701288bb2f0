package memory

// Destroyer is implemented by values that own resources which must be
// released when the value's lifetime ends.
type Destroyer interface {
	Destroy()
}

// Destroy runs the destruction logic for the value at v. fn wins when set;
// otherwise Destroy is called if *T implements Destroyer. Values with neither
// are left alone.
func Destroy[T any](v *T, fn func(*T)) {
	if v == nil {
		return
	}
	if fn != nil {
		fn(v)
		return
	}
	if d, ok := any(v).(Destroyer); ok {
		d.Destroy()
	}
}

// HasDestructor reports whether Destroy would do anything for a *T.
func HasDestructor[T any](fn func(*T)) bool {
	if fn != nil {
		return true
	}
	var zero *T
	_, ok := any(zero).(Destroyer)
	return ok
}
