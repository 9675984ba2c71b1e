package haptic

import (
	"fmt"
	"time"

	"github.com/leandrodaf/haptic/internal/logger"
	"github.com/leandrodaf/haptic/sdk/contracts"
)

// applyDefaultOptions sets default values for ClientOptions if not explicitly provided.
//
// opts ...contracts.Option: A variadic list of option functions that can modify ClientOptions.
//
// Returns:
//   - contracts.ClientOptions: The finalized client options with defaults applied.
//   - error: An error if the requested log destination could not be opened.
func applyDefaultOptions(opts ...contracts.Option) (contracts.ClientOptions, error) {
	options := &contracts.ClientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.Sleeper == nil {
		options.Sleeper = time.Sleep
	}
	if options.LinuxConfig == nil {
		options.LinuxConfig = &contracts.LinuxConfig{}
	}

	options.Logger.SetLevel(options.LogLevel)
	if options.LogFilePath != "" {
		if err := options.Logger.SetDestination(contracts.FileLog, options.LogFilePath); err != nil {
			return contracts.ClientOptions{}, fmt.Errorf("configure log file: %w", err)
		}
	}
	return *options, nil
}
