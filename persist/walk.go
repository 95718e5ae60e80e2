package persist

import (
	"reflect"

	"github.com/amp-labs/shadowmap/errors"
)

var hooksType = reflect.TypeFor[Hooks]()

type order int

const (
	// preOrder runs a hook before descending into the value. Saving needs it:
	// a shadow map rebuilds its Values first, and nested maps inside those
	// fresh values are prepared afterwards.
	preOrder order = iota
	// postOrder runs a hook after descending. Loading needs it: nested maps
	// are restored before the parent copies them into its live map.
	postOrder
)

type walker struct {
	order order
	fn    func(Hooks) error
	seen  map[uintptr]struct{}
	errs  errors.Collection
	calls int
}

// walk visits every Hooks implementer reachable from root through pointers,
// interfaces, exported struct fields, slices, arrays and map values, calling
// fn on each. Hooks must have pointer receivers, so only addressable values
// and map values are considered. Every hook is called even if an earlier one
// failed.
func walk(root any, ord order, fn func(Hooks) error) (int, error) {
	w := &walker{
		order: ord,
		fn:    fn,
		seen:  make(map[uintptr]struct{}),
	}

	w.visit(reflect.ValueOf(root))

	return w.calls, w.errs.GetError()
}

func (w *walker) visit(v reflect.Value) {
	if !v.IsValid() {
		return
	}

	switch v.Kind() { //nolint:exhaustive
	case reflect.Pointer:
		if v.IsNil() {
			return
		}

		if _, ok := w.seen[v.Pointer()]; ok {
			return
		}

		w.seen[v.Pointer()] = struct{}{}
		w.visit(v.Elem())

		return
	case reflect.Interface:
		if !v.IsNil() {
			w.visit(v.Elem())
		}

		return
	}

	var hook Hooks
	if v.CanAddr() && v.Addr().Type().Implements(hooksType) {
		hook, _ = v.Addr().Interface().(Hooks)
	}

	if hook != nil && w.order == preOrder {
		w.call(hook)
	}

	w.descend(v)

	if hook != nil && w.order == postOrder {
		w.call(hook)
	}
}

func (w *walker) descend(v reflect.Value) {
	switch v.Kind() { //nolint:exhaustive
	case reflect.Struct:
		t := v.Type()

		for i := range t.NumField() {
			if t.Field(i).IsExported() {
				w.visit(v.Field(i))
			}
		}
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			w.visit(v.Index(i))
		}
	case reflect.Map:
		w.descendMap(v)
	}
}

// descendMap visits map values. Values stored in a map are not addressable,
// so each non-pointer value is visited through an addressable copy that is
// written back afterwards.
func (w *walker) descendMap(v reflect.Value) {
	elem := v.Type().Elem()

	if elem.Kind() == reflect.Pointer || elem.Kind() == reflect.Interface {
		iter := v.MapRange()
		for iter.Next() {
			w.visit(iter.Value())
		}

		return
	}

	keys := v.MapKeys()
	for _, key := range keys {
		tmp := reflect.New(elem).Elem()
		tmp.Set(v.MapIndex(key))

		before := w.calls
		w.visit(tmp)

		if w.calls != before && v.CanInterface() {
			v.SetMapIndex(key, tmp)
		}
	}
}

func (w *walker) call(hook Hooks) {
	w.calls++
	w.errs.Add(w.fn(hook))
}
