package outline

// Options control the sampling density of curves and the parallelism of ConvertParallel.
type Options struct {
	Density     float64 // samples per unit of length along curves and arcs
	MinSegments int     // minimum number of segments per curve or arc
	MaxSegments int     // maximum number of segments per curve or arc
	Workers     int     // number of goroutines used by ConvertParallel, 0 means GOMAXPROCS
}

// DefaultOptions are used for every zero field of the options passed in.
var DefaultOptions = Options{
	Density:     1.0,
	MinSegments: 4,
	MaxSegments: 1024,
}

func (opts Options) normalize() Options {
	if opts.Density <= 0.0 {
		opts.Density = DefaultOptions.Density
	}
	if opts.MinSegments <= 0 {
		opts.MinSegments = DefaultOptions.MinSegments
	}
	if opts.MaxSegments <= 0 {
		opts.MaxSegments = DefaultOptions.MaxSegments
	}
	if opts.MaxSegments < opts.MinSegments {
		opts.MaxSegments = opts.MinSegments
	}
	return opts
}
