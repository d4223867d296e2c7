package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for values in debug logs, so that "Added BraveOtter" and
// "Removed BraveOtter" can be matched up at a glance. Equal values share a
// name for the life of the process. Names are handed out in order of first
// use and are random, so they mean nothing across runs.

type registry struct {
	sync.Mutex
	byValue map[interface{}]string
	// How many values have been given each generated name
	uses map[string]int
}

var names = &registry{
	byValue: make(map[interface{}]string),
	uses:    make(map[string]int),
}

func init() {
	petname.NonDeterministicMode()
}

// Name of obj, "Ø" for nil. Values that can't be map keys are named by their
// printed form.
func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}
	key := obj
	if !reflect.TypeOf(obj).Comparable() {
		key = fmt.Sprintf("%#v", obj)
	}
	return names.lookup(key)
}

func (r *registry) lookup(key interface{}) string {
	r.Lock()
	defer r.Unlock()
	if name, ok := r.byValue[key]; ok {
		return name
	}
	name := camel(petname.Generate(2, " "))
	r.uses[name]++
	// The word lists are finite. Distinct values never share a name.
	if n := r.uses[name]; n > 1 {
		name = fmt.Sprintf("%s%d", name, n)
	}
	r.byValue[key] = name
	return name
}

func camel(words string) string {
	var b strings.Builder
	for _, word := range strings.Fields(words) {
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(word[1:])
	}
	return b.String()
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	switch v := reflect.ValueOf(obj); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
