// Package cmd contiene la línea de comandos de listing-app.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "listing-app",
	Short: "Property listing and booking front-end",
	Long: `listing-app sirve el catálogo de propiedades, el detalle con reviews y el
formulario de reserva sobre la API remota de propiedades.`,
	SilenceUsage: true,
	// Sin subcomando arranca el servidor
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (env vars override it)")
	rootCmd.AddCommand(serveCmd, quoteCmd)
}

// Execute corre el comando raíz
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
