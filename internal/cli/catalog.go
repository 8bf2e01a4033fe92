package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/njprem/BizSuite_BackEnd/internal/importer"
	"github.com/njprem/BizSuite_BackEnd/internal/repository/ports"
	"github.com/njprem/BizSuite_BackEnd/internal/service"
)

// offlineImports serves schema metadata without a database.
func offlineImports() *service.ImportService {
	return service.NewImportService(importer.NewPipeline(importer.NewRegistry(), ports.Store{}), nil, service.ImportServiceConfig{})
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List importable entity types and their columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tREQUIRED\tOPTIONAL")
			for _, schema := range offlineImports().Schemas() {
				var required, optional []string
				for _, f := range schema.Fields {
					if f.Required {
						required = append(required, f.Name)
					} else {
						optional = append(optional, f.Name)
					}
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", schema.Type, strings.Join(required, ","), strings.Join(optional, ","))
			}
			return w.Flush()
		},
	}
}

func newTemplateCmd() *cobra.Command {
	var entityType string
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Print a CSV template for an entity type",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := offlineImports().Template(entityType)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(body)
			return err
		},
	}
	cmd.Flags().StringVarP(&entityType, "type", "t", "", "Entity type")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}
