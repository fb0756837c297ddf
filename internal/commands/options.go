package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/videogrid/internal/model"
)

// Config keys
const (
	KeyCatalog = "catalog"
	KeyShowID  = "show-id"
)

// RootOptions holds settings shared by every subcommand.
type RootOptions struct {
	ConfigDir string

	catalog string
	showID  bool
}

// AddRootArgs registers the persistent flags.
func AddRootArgs(cmd *cobra.Command, o *RootOptions) {
	cmd.PersistentFlags().String(KeyCatalog, "",
		"Catalog YAML file to use instead of the bundled catalog.")
	cmd.PersistentFlags().Bool(KeyShowID, false,
		"Show video identities.")
	cmd.PersistentFlags().StringVar(&o.ConfigDir, "config-dir", "",
		"Directory holding .videogrid.yaml.")
}

// Load merges the config file, environment and flags.
func (o *RootOptions) Load(cmd *cobra.Command) error {
	v := viper.New()
	v.SetConfigName(".videogrid") // .yaml is implicit
	v.SetEnvPrefix("VIDEOGRID")
	v.AutomaticEnv()

	if o.ConfigDir != "" {
		v.AddConfigPath(o.ConfigDir)
	} else {
		v.AddConfigPath("./")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	for _, key := range []string{KeyCatalog, KeyShowID} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return err
		}
	}
	// Dashes cannot appear in environment variable names
	if err := v.BindEnv(KeyShowID, "VIDEOGRID_SHOW_ID"); err != nil {
		return err
	}

	o.catalog = v.GetString(KeyCatalog)
	o.showID = v.GetBool(KeyShowID)
	return nil
}

// CatalogPath returns the configured catalog, empty for the bundled one.
func (o *RootOptions) CatalogPath() string {
	return o.catalog
}

// Videos loads the configured catalog.
func (o *RootOptions) Videos() ([]model.Video, error) {
	if o.catalog == "" {
		return model.BundledCatalog(), nil
	}
	videos, err := model.LoadCatalogFile(o.catalog)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", o.catalog, err)
	}
	return videos, nil
}
