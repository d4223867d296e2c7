package segments

import "github.com/pkg/errors"

// The unexported geometry helpers panic with a thrown error. Exported methods
// recover it into an ordinary error return with catchThrown. Any other panic
// is re-raised.

type thrown struct {
	err error
}

// Panic with an error wrapping one of the sentinel kinds
func throwf(kind error, format string, args ...interface{}) {
	panic(thrown{errors.Wrapf(kind, format, args...)})
}

// Convert a recovered thrown value back into an error. Anything else is a real
// panic and is re-raised.
func handleThrowRecover(r interface{}) error {
	if r != nil {
		if t, ok := r.(thrown); ok {
			return t.err
		}
		panic(r)
	}
	return nil
}

// Deferred directly, so that recover() sees the panic
func catchThrown(err *error) {
	if recoveredErr := handleThrowRecover(recover()); recoveredErr != nil {
		*err = recoveredErr
	}
}
