package configs

// Configurable is a setting read from the CUE path returned by ConfigExpr.
type Configurable interface {
	ConfigExpr() string
}

// Lookup reads a Configurable from its own path; zero when absent.
func Lookup[T Configurable](loader Loader) T {
	var zero T
	return First[T](loader, zero.ConfigExpr())
}
