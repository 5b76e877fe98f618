// Package txbuilder is the single entry point callers use to assemble a
// chain-specific transaction builder. Dispatch on the chain is a
// type-system concern: the chain tag is the builder's own pointer
// type, so New is instantiated as txbuilder.New[*txbuilder.BitcoinBuilder]()
// and the result exposes only the setters meaningful to that chain — calling
// an EVM setter on a Bitcoin builder is a compile error, not a runtime one.
package txbuilder

// ChainTag constrains New's type parameter to the concrete builder types
// this module knows how to construct. Selecting it selects both the return
// type and, through that type's method set, the fields the caller is
// allowed to set.
type ChainTag interface {
	*BitcoinBuilder | *EVMBuilder | *NEARBuilder
}

// New returns a fresh, empty builder for the chain named by T. All builders
// are one-shot: fields may be set in any order, repeated sets overwrite, and
// no method re-reads a previously set field except Build.
func New[T ChainTag]() T {
	var zero T
	switch any(zero).(type) {
	case *BitcoinBuilder:
		return any(NewBitcoinBuilder()).(T)
	case *EVMBuilder:
		return any(NewEVMBuilder()).(T)
	case *NEARBuilder:
		return any(NewNEARBuilder()).(T)
	default:
		panic("txbuilder: unsupported chain tag")
	}
}
