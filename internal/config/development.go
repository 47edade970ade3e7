package config

import "os"

// Development reports whether MINES_DEVELOPMENT or DEVELOPMENT is set to
// anything but "0", in the order [Load] binds them. It is meant for the
// window before a [Config] is loaded, e.g. to log a failed [Load].
func Development() bool {
	for _, key := range []string{"MINES_DEVELOPMENT", "DEVELOPMENT"} {
		if v, ok := os.LookupEnv(key); ok {
			return v != "0"
		}
	}
	return false
}
