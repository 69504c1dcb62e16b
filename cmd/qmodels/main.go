// Command qmodels builds the Hamiltonians of the model catalog, prints
// their records, and optionally charts and stores their energy spectra.
package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"qmodels"
	"qmodels/config"
	"qmodels/spectrum"
	"qmodels/store"
)

var (
	configFile string
	dbPath     string
	plot       bool
)

func main() {
	log.SetFlags(log.Lmicroseconds | log.Llongfile | log.LstdFlags)

	rootCmd := &cobra.Command{
		Use:           "qmodels",
		Short:         "quantum many-body model catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	runCmd := &cobra.Command{
		Use:   "run [model...]",
		Short: "build models and print their records",
		RunE:  run,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "yaml model configuration")
	runCmd.Flags().StringVar(&dbPath, "db", "", "sqlite store for build records and spectra")
	runCmd.Flags().BoolVar(&plot, "plot", false, "chart the energy spectrum")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum model",
		Short: "print the energy levels of a model",
		Args:  cobra.ExactArgs(1),
		RunE:  runSpectrum,
	}
	spectrumCmd.Flags().StringVar(&dbPath, "db", "", "read the spectrum from this store instead of rebuilding")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list cataloged models and their reference parameters",
		RunE:  runList,
	}

	rootCmd.AddCommand(runCmd, spectrumCmd, listCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Printf("%+v", err)
		os.Exit(1)
	}
}

func selectModels(args []string) ([]qmodels.Model, error) {
	var cfgs []config.ModelConfig
	switch {
	case configFile != "":
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, errors.Wrap(err, "")
		}
		cfgs = cfg.Models
	case len(args) > 0:
		for _, a := range args {
			mc, ok := config.Presets[a]
			if !ok {
				return nil, errors.Errorf("unknown model %q", a)
			}
			cfgs = append(cfgs, mc)
		}
	default:
		cfgs = config.Default().Models
	}

	models := make([]qmodels.Model, 0, len(cfgs))
	for _, mc := range cfgs {
		m, err := mc.Spec()
		if err != nil {
			return nil, errors.Wrap(err, "")
		}
		models = append(models, m)
	}
	return models, nil
}

func run(cmd *cobra.Command, args []string) error {
	models, err := selectModels(args)
	if err != nil {
		return errors.Wrap(err, "")
	}

	var st *store.Store
	if dbPath != "" {
		st, err = store.Open(dbPath)
		if err != nil {
			return errors.Wrap(err, "")
		}
		defer st.Close()
	}

	for _, m := range models {
		op, err := m.Build()
		if err != nil {
			return errors.Wrap(err, m.Name())
		}
		rec := qmodels.NewRecord(m, op)
		b, err := rec.JSON()
		if err != nil {
			return errors.Wrap(err, "")
		}
		fmt.Println(string(b))

		if !plot && st == nil {
			continue
		}
		energies, err := spectrum.Energies(op)
		if err != nil {
			return errors.Wrap(err, m.Name())
		}
		if plot {
			fmt.Println(spectrum.Chart(m.Name(), energies))
			fmt.Println()
		}
		if st != nil {
			if err := st.SaveBuild(rec, energies); err != nil {
				return errors.Wrap(err, m.Name())
			}
		}
	}
	return nil
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	models, err := selectModels(args)
	if err != nil {
		return errors.Wrap(err, "")
	}
	m := models[0]

	var energies []float64
	if dbPath != "" {
		st, err := store.Open(dbPath)
		if err != nil {
			return errors.Wrap(err, "")
		}
		defer st.Close()
		energies, err = st.Spectrum(m.Name())
		if err != nil {
			return errors.Wrap(err, m.Name())
		}
	}
	if len(energies) == 0 {
		op, err := m.Build()
		if err != nil {
			return errors.Wrap(err, m.Name())
		}
		energies, err = spectrum.Energies(op)
		if err != nil {
			return errors.Wrap(err, m.Name())
		}
	}

	for _, e := range energies {
		fmt.Printf("%.10f\n", e)
	}
	fmt.Println(spectrum.Chart(m.Name(), energies))
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tNAME\tPARAMETERS")
	for _, name := range config.PresetNames {
		m, err := config.Presets[name].Spec()
		if err != nil {
			return errors.Wrap(err, "")
		}

		params := m.Params()
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		kvs := make([]string, 0, len(keys))
		for _, k := range keys {
			kvs = append(kvs, fmt.Sprintf("%s=%v", k, params[k]))
		}

		fmt.Fprintf(w, "%s\t%s\t%s\n", name, m.Name(), strings.Join(kvs, " "))
	}
	return w.Flush()
}
