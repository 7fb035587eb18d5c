// Package table computes the render identity of sortable table rows and the
// sort-class tokens of its columns.
//
// A row's key is a structural hash of its exported fields, recomputed on
// every render pass. Two rows with equal content share a key; Diff pairs
// such duplicates by order of occurrence, so identical rows can trade
// places without being reported as moved.
package table

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/mitchellh/hashstructure/v2"
)

// Key is the render identity of a row.
type Key uint64

// String formats the key the way it is written to the data-key attribute.
func (k Key) String() string {
	return strconv.FormatUint(uint64(k), 16)
}

// TryKeyOf hashes every exported field of item. Fields tagged
// `hash:"ignore"` or `hash:"-"` are skipped. Negative zero hashes like
// zero, so rows equal under == share a key. Values that cannot be hashed,
// such as funcs or channels, return an error.
func TryKeyOf(item any) (Key, error) {
	if v, changed := positiveZero(reflect.ValueOf(item)); changed {
		item = v.Interface()
	}
	h, err := hashstructure.Hash(item, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("table: hash %T: %w", item, err)
	}
	return Key(h), nil
}

// KeyOf is TryKeyOf for well-formed rows. It panics if item cannot be
// hashed.
func KeyOf(item any) Key {
	k, err := TryKeyOf(item)
	if err != nil {
		panic(err)
	}
	return k
}

// Keys returns the key of every item, in order.
func Keys[R any](items []R) []Key {
	keys := make([]Key, len(items))
	for i, item := range items {
		keys[i] = KeyOf(item)
	}
	return keys
}

// positiveZero returns a copy of v with every reachable -0 float replaced
// by +0, and whether anything was replaced. Unexported fields are not
// hashed and are left alone.
func positiveZero(v reflect.Value) (reflect.Value, bool) {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		if negativeZero(v.Float()) {
			return reflect.Zero(v.Type()), true
		}
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		re, im := real(c), imag(c)
		if negativeZero(re) || negativeZero(im) {
			if re == 0 {
				re = 0
			}
			if im == 0 {
				im = 0
			}
			out := reflect.New(v.Type()).Elem()
			out.SetComplex(complex(re, im))
			return out, true
		}
	case reflect.Pointer:
		if v.IsNil() {
			break
		}
		if e, ok := positiveZero(v.Elem()); ok {
			p := reflect.New(v.Type().Elem())
			p.Elem().Set(e)
			return p, true
		}
	case reflect.Interface:
		if v.IsNil() {
			break
		}
		if e, ok := positiveZero(v.Elem()); ok {
			out := reflect.New(v.Type()).Elem()
			out.Set(e)
			return out, true
		}
	case reflect.Struct:
		var out reflect.Value
		for i := 0; i < v.NumField(); i++ {
			if !v.Type().Field(i).IsExported() {
				continue
			}
			f, ok := positiveZero(v.Field(i))
			if !ok {
				continue
			}
			if !out.IsValid() {
				out = reflect.New(v.Type()).Elem()
				out.Set(v)
			}
			out.Field(i).Set(f)
		}
		if out.IsValid() {
			return out, true
		}
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			break
		}
		var out reflect.Value
		for i := 0; i < v.Len(); i++ {
			e, ok := positiveZero(v.Index(i))
			if !ok {
				continue
			}
			if !out.IsValid() {
				if v.Kind() == reflect.Slice {
					out = reflect.MakeSlice(v.Type(), v.Len(), v.Len())
					reflect.Copy(out, v)
				} else {
					out = reflect.New(v.Type()).Elem()
					out.Set(v)
				}
			}
			out.Index(i).Set(e)
		}
		if out.IsValid() {
			return out, true
		}
	case reflect.Map:
		if v.IsNil() {
			break
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		changed := false
		iter := v.MapRange()
		for iter.Next() {
			k, kc := positiveZero(iter.Key())
			e, ec := positiveZero(iter.Value())
			changed = changed || kc || ec
			out.SetMapIndex(k, e)
		}
		if changed {
			return out, true
		}
	}
	return v, false
}

func negativeZero(f float64) bool {
	return f == 0 && math.Signbit(f)
}
