package cli

import (
	"fmt"
	"strings"

	"github.com/leandrodaf/haptic/sdk/contracts"
	"github.com/leandrodaf/haptic/sdk/haptic"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ClientFactory builds the haptic client used by commands.
type ClientFactory func(opts ...contracts.Option) (contracts.HapticClient, error)

// RootOptions holds configuration shared by all commands.
type RootOptions struct {
	ConfigFile string
	NewClient  ClientFactory

	v *viper.Viper
}

// ValidLogLevels defines the accepted --log-level values.
var ValidLogLevels = map[string]contracts.LogLevel{
	"debug": contracts.DebugLevel,
	"info":  contracts.InfoLevel,
	"warn":  contracts.WarnLevel,
	"error": contracts.ErrorLevel,
}

// NewRootCommand creates the hapticctl root command. A nil factory means
// haptic.NewHapticClient.
func NewRootCommand(factory ClientFactory) *cobra.Command {
	if factory == nil {
		factory = haptic.NewHapticClient
	}
	opts := &RootOptions{NewClient: factory, v: viper.New()}

	cmd := &cobra.Command{
		Use:   "hapticctl",
		Short: "Trigger haptic cues",
		Long: `Trigger named haptic cues on the local feedback device.

Settings come from flags, HAPTIC_* environment variables or a config file
(YAML, TOML or JSON) with the keys log-level, log-file, device and async.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigFile, "config", "", "config file")
	flags.String("log-level", "warn", "log level (debug|info|warn|error)")
	flags.String("log-file", "", "write logs to this file instead of stderr")
	flags.String("device", "", "evdev force-feedback device (linux); empty autodetects")
	flags.Bool("async", false, "return before compound cues finish playing")
	for _, name := range []string{"log-level", "log-file", "device", "async"} {
		_ = opts.v.BindPFlag(name, flags.Lookup(name))
	}

	opts.v.SetEnvPrefix("haptic")
	opts.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	opts.v.AutomaticEnv()

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewFireCommand(opts))
	cmd.AddCommand(NewScrubCommand(opts))

	return cmd
}

func (o *RootOptions) load() error {
	if o.ConfigFile != "" {
		o.v.SetConfigFile(o.ConfigFile)
		if err := o.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", o.ConfigFile, err)
		}
	}
	if _, ok := ValidLogLevels[o.v.GetString("log-level")]; !ok {
		return fmt.Errorf("invalid log level %q", o.v.GetString("log-level"))
	}
	return nil
}

// clientOptions translates the resolved settings into client options.
func (o *RootOptions) clientOptions() []contracts.Option {
	opts := []contracts.Option{
		contracts.WithLogLevel(ValidLogLevels[o.v.GetString("log-level")]),
		contracts.WithAsync(o.v.GetBool("async")),
		contracts.WithLinuxConfig(contracts.LinuxConfig{DevicePath: o.v.GetString("device")}),
	}
	if path := o.v.GetString("log-file"); path != "" {
		opts = append(opts, contracts.WithLogFile(path))
	}
	return opts
}

// withClient opens a client, runs fn and closes the client, waiting for async cues.
func (o *RootOptions) withClient(fn func(contracts.HapticClient) error) (err error) {
	client, err := o.NewClient(o.clientOptions()...)
	if err != nil {
		return fmt.Errorf("create haptic client: %w", err)
	}
	defer func() {
		if cerr := client.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close haptic client: %w", cerr)
		}
	}()
	return fn(client)
}
