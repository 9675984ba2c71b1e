package contracts

// LinuxConfig holds configuration for the evdev force-feedback pulser.
type LinuxConfig struct {
	DevicePath string // Event device such as /dev/input/event5. Empty means autodetect.
}

// ClientOptions defines the configuration options for the haptic client.
type ClientOptions struct {
	Logger      Logger       // Logger for lifecycle events and swallowed failures.
	LogLevel    LogLevel     // Level of logging to use.
	LogFilePath string       // File path for logging if file logging is enabled.
	Pulser      Pulser       // Explicit capability. Nil means detect for the running platform.
	Sleeper     Sleeper      // Time source for inter-step delays. Nil means time.Sleep.
	Async       bool         // Play sequences on a background goroutine and return immediately.
	LinuxConfig *LinuxConfig // Configuration specific to Linux evdev devices.
}

// Option is a function that modifies ClientOptions.
type Option func(*ClientOptions)

// WithLogger sets the logger for the haptic client.
func WithLogger(l Logger) Option {
	return func(opts *ClientOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the haptic client.
func WithLogLevel(level LogLevel) Option {
	return func(opts *ClientOptions) {
		opts.LogLevel = level
	}
}

// WithLogFile directs log output to the given file.
func WithLogFile(path string) Option {
	return func(opts *ClientOptions) {
		opts.LogFilePath = path
	}
}

// WithPulser bypasses platform detection and uses p for every pulse.
func WithPulser(p Pulser) Option {
	return func(opts *ClientOptions) {
		opts.Pulser = p
	}
}

// WithSleeper replaces time.Sleep for inter-step delays.
func WithSleeper(s Sleeper) Option {
	return func(opts *ClientOptions) {
		opts.Sleeper = s
	}
}

// WithAsync makes every cue return immediately while its sequence plays on
// its own goroutine. Close waits for sequences still playing.
func WithAsync(async bool) Option {
	return func(opts *ClientOptions) {
		opts.Async = async
	}
}

// WithLinuxConfig sets the evdev configuration used on Linux.
func WithLinuxConfig(config LinuxConfig) Option {
	return func(opts *ClientOptions) {
		opts.LinuxConfig = &config
	}
}
