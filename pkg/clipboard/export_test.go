package clipboard

// NewWithFuncs builds a System over fake clipboard functions.
func NewWithFuncs(unsupported bool, readAll func() (string, error), writeAll func(string) error) *System {
	return &System{
		unsupported: unsupported,
		readAll:     readAll,
		writeAll:    writeAll,
	}
}
