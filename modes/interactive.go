package modes

// Interactive reports whether a person is on the other end of stdin and stdout.
type Interactive bool
