package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Tobionecenobi/SEB/builder"
	"github.com/Tobionecenobi/SEB/errors"
	"github.com/Tobionecenobi/SEB/examples"
	"github.com/Tobionecenobi/SEB/logger"
	"github.com/Tobionecenobi/SEB/subunit"
	"github.com/Tobionecenobi/SEB/world"
)

const version = "0.1.0"

// Configuration keys, shared by flags, SEB_* environment variables and the
// optional seb.toml / seb.yaml file.
const (
	keyFile    = "file"
	keyExample = "example"
	keyDepth   = "depth"
	keyForm    = "form"
	keyJSONLog = "json-log"
	keyVerbose = "verbose"
)

// app carries the configuration of one invocation.
type app struct {
	v *viper.Viper
}

// newRootCmd wires every command to a fresh viper instance.
func newRootCmd() (*cobra.Command, error) {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "seb",
		Short:         "Scattering expressions for structures built from sub-units",
		Long:          "seb builds a World from a YAML or TOML description and prints form factors, amplitudes, phase factors, sizes and intensity curves of its structures.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	// Global flags.
	pf := rootCmd.PersistentFlags()
	pf.StringP(keyFile, "f", "", "Description file (.yaml, .yml or .toml)")
	pf.StringP(keyExample, "e", "", "Use a built-in example instead of a description file")
	pf.Int(keyDepth, -1, "Nesting levels to resolve; -1 resolves all")
	pf.String(keyForm, subunit.QVar.String(), "Term representation: GENERIC, XVAR, QVAR, BETA, GUINIER or ONE")
	pf.Bool(keyJSONLog, false, "Log as JSON")
	pf.BoolP(keyVerbose, "v", false, "Log construction and queries at debug level")

	// Bind flags to viper.
	if err := bindFlags(a.v, pf, keyFile, keyExample, keyDepth, keyForm, keyJSONLog, keyVerbose); err != nil {
		return nil, err
	}

	// Env vars: SEB_FILE, SEB_DEPTH, ...
	a.v.SetEnvPrefix("SEB")
	a.v.AutomaticEnv()

	// Config file.
	a.v.SetConfigName("seb")
	a.v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(filepath.Join(home, ".config", "seb"))
	}

	rootCmd.AddCommand(
		a.newTreeCmd(),
		a.newLinksCmd(),
		a.newGraphsCmd(),
		a.newFormFactorCmd(),
		a.newAmplitudeCmd(),
		a.newPhaseCmd(),
		a.newRg2Cmd(),
		a.newCountCmd(),
		a.newEvaluateCmd(),
		newKindsCmd(),
		newExamplesCmd(),
		newVersionCmd(),
	)
	return rootCmd, nil
}

// bindFlags binds each key to the flag of the same name in fs.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys ...string) error {
	for _, k := range keys {
		if err := v.BindPFlag(k, fs.Lookup(k)); err != nil {
			return errors.Wrapf(err, "binding flag %q", k)
		}
	}
	return nil
}

// setup reads the optional config file and sets up logging.
func (a *app) setup() error {
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errors.Wrap(err, "reading config")
		}
	}
	if err := logger.Initialize(a.v.GetBool(keyJSONLog), a.v.GetBool(keyVerbose)); err != nil {
		return errors.Wrap(err, "initializing logger")
	}
	return nil
}

// document returns the configured example or description file.
func (a *app) document() (*builder.Document, error) {
	if name := a.v.GetString(keyExample); name != "" {
		return examples.Lookup(name)
	}
	path := a.v.GetString(keyFile)
	if path == "" {
		return nil, errors.WithHint(errors.New("no description file"), "pass --file or --example, or set SEB_FILE")
	}
	return builder.LoadDocument(path)
}

// load builds the World of the configured document.
func (a *app) load() (*world.World, *builder.Document, error) {
	doc, err := a.document()
	if err != nil {
		return nil, nil, err
	}
	logger.Logger.Debugw("building world", logger.FieldName, doc.Name, "steps", len(doc.Steps))
	w, err := builder.BuildWorld([]world.Option{world.WithLogger(logger.Named("world"))}, nil, builder.Describe(doc))
	if err != nil {
		return nil, nil, err
	}
	return w, doc, nil
}

// queryOptions turns --depth and --form into query options.
func (a *app) queryOptions() ([]world.QueryOption, error) {
	var opts []world.QueryOption
	if d := a.v.GetInt(keyDepth); d >= 0 {
		opts = append(opts, world.WithDepth(d))
	}
	f, err := subunit.ParseForm(a.v.GetString(keyForm))
	if err != nil {
		return nil, err
	}
	return append(opts, world.WithForm(f)), nil
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print seb version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("seb %s\n", version)
		},
	}
}
