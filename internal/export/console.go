package export

import (
	"fmt"
	"os"
)

// ConsoleDestination writes export records as JSON lines on stdout.
type ConsoleDestination struct{}

func (c *ConsoleDestination) WriteMessage(topic string, msg []byte) error {
	output := fmt.Sprintf("[%s] %s\n", topic, string(msg))
	if _, err := os.Stdout.Write([]byte(output)); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

func (c *ConsoleDestination) Close() error {
	return nil
}
