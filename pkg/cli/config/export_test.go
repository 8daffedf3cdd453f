package config

import "io"

// SetLoggerOutput replaces the log destination in tests
func SetLoggerOutput(c *Logger, w io.Writer) {
	c.output = w
}
