package cmd

import (
	"fmt"
	"reflect"
	"text/tabwriter"

	"github.com/Station-Manager/appctx"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newBeansCmd(params *rootParams) *cobra.Command {
	return &cobra.Command{
		Use:   "beans",
		Short: "List beans in construction order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := buildContainer(cmd, params)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTYPE\tDEPENDS ON")
			byID := lo.KeyBy(c.Descriptors(), func(d appctx.BeanDescriptor) string { return d.ID })
			for _, id := range c.BeanIDs() {
				fmt.Fprintf(w, "%s\t%T\t%v\n", id, c.MustGet(id), byID[id].DependencyIDs)
			}
			return w.Flush()
		},
	}
}

func newGetCmd(params *rootParams) *cobra.Command {
	return &cobra.Command{
		Use:   "get <bean-id>",
		Short: "Show a single bean",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildContainer(cmd, params)
			if err != nil {
				return err
			}
			v, err := c.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %T %s\n", args[0], v, identity(v))
			return nil
		},
	}
}

func newCheckCmd(params *rootParams) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Initialize the container and report the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := buildContainer(cmd, params)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d beans (%s order)\n", len(c.BeanIDs()), c.Ordering())
			return nil
		},
	}
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List bean kinds available to manifests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := newCatalog()
			if err != nil {
				return err
			}
			for _, k := range catalog.Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}
}

// identity prints the address of pointer-like beans and the value otherwise.
func identity(v any) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return fmt.Sprintf("%p", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
