package parse

// DefaultMaxDepth bounds the nesting of arrays and objects.
const DefaultMaxDepth = 10000

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
