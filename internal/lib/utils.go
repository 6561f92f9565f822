package lib

import "fmt"

// Err wraps err with the operation name: "op: err".
func Err(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
