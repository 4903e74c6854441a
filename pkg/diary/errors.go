package diary

import (
	"fmt"
)

// PersistenceWarning reports a failed save. The in-memory mutation that triggered
// the save has still been applied.
type PersistenceWarning struct {
	Op  string
	Err error
}

func (w *PersistenceWarning) Error() string {
	return fmt.Sprintf("%s: state kept in memory, save failed: %v", w.Op, w.Err)
}

func (w *PersistenceWarning) Unwrap() error {
	return w.Err
}
