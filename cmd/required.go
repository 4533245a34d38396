package cmd

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/masnyjimmy/reqdoc/docs"
	"github.com/masnyjimmy/reqdoc/requiredness"
	"github.com/spf13/cobra"
)

const defaultContexts = "GET,POST,PUT,PATCH,DELETE,response"

var requiredCmd = &cobra.Command{
	Use:   "required",
	Short: "Print the resolved required flag of every parameter and field",
	Long: `Required resolves requiredDetails for every parameter group, route parameter
and entity field under each requested context and prints a table.
Contexts are HTTP methods or "response".`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		input, _ := cmd.Flags().GetString("input")
		list, _ := cmd.Flags().GetString("context")

		contexts, err := requiredness.ParseContexts(list)
		if err != nil {
			return err
		}

		document, err := loadDocument(input)
		if err != nil {
			return err
		}

		return PrintRequirements(cmd.OutOrStdout(), document, contexts)
	},
}

func init() {
	rootCmd.AddCommand(requiredCmd)

	requiredCmd.Flags().StringP("context", "c", defaultContexts, "Comma separated contexts to resolve")
}

type requirementSection struct {
	scope string
	decls []requiredness.Declaration
}

func paramDeclarations(params docs.Params) []requiredness.Declaration {
	out := make([]requiredness.Declaration, len(params))
	for idx, p := range params {
		out[idx] = p.Declaration()
	}
	return out
}

func requirementSections(document *docs.Document) []requirementSection {
	out := make([]requirementSection, 0)

	for _, name := range slices.Sorted(maps.Keys(document.ParamGroups)) {
		out = append(out, requirementSection{
			scope: "group " + name,
			decls: paramDeclarations(document.ParamGroups[name]),
		})
	}

	for _, route := range document.Routes {
		params := append(slices.Clone(route.Params), route.Headers...)
		if len(params) == 0 {
			continue
		}
		out = append(out, requirementSection{
			scope: "route " + route.Method + " " + route.Path,
			decls: paramDeclarations(params),
		})
	}

	for _, entity := range document.Entities {
		decls := make([]requiredness.Declaration, len(entity.Fields))
		for idx, f := range entity.Fields {
			decls[idx] = f.Declaration()
		}
		out = append(out, requirementSection{
			scope: "entity " + entity.Name,
			decls: decls,
		})
	}

	return out
}

// PrintRequirements writes one row per declaration and one column per context.
func PrintRequirements(w io.Writer, document *docs.Document, contexts []requiredness.Context) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := []string{"SCOPE", "NAME"}
	for _, ctx := range contexts {
		header = append(header, ctx.String())
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, section := range requirementSections(document) {
		rows, err := requiredness.Matrix(section.decls, contexts)
		if err != nil {
			return fmt.Errorf("%v: %w", section.scope, err)
		}

		for _, row := range rows {
			cells := []string{section.scope, row.Name}
			for _, v := range row.Required {
				cells = append(cells, strconv.FormatBool(v))
			}
			fmt.Fprintln(tw, strings.Join(cells, "\t"))
		}
	}

	return tw.Flush()
}
