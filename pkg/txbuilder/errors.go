package txbuilder

import "github.com/pkg/errors"

// ErrMissingField is returned by Build when a mandatory field was never set.
// Semantically meaningful fields (chain-id, nonce, version, ...) are never
// silently defaulted.
var ErrMissingField = errors.New("missing required field")

func missingField(name string) error {
	return errors.Wrapf(ErrMissingField, "%s", name)
}
