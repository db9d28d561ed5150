// Command bstdemo builds a BSTree from a list of integers, prints its in-order
// traversal, then removes values one at a time and prints the traversal again.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/g-m-twostay/bstree/Trees"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	cfgValues    = "values"
	cfgRemove    = "remove"
	cfgSeparator = "separator"

	envPrefix = "BSTDEMO"
)

var (
	defaultValues = []int{6, 324, 23, 1, 2, 3, 89, 346, 443, 3134, 13, -33, 4}
	defaultRemove = []int{3134, 6, 346}
)

func newRootCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bstdemo",
		Short:         "Insert, traverse and remove integers in an unbalanced binary search tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := intSlice(v, cfgValues)
			if err != nil {
				return err
			}
			remove, err := intSlice(v, cfgRemove)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), values, remove, v.GetString(cfgSeparator))
		},
	}
	registerFlags(cmd, v)
	return cmd
}

// registerFlags registers the configuration flags with the provided
// command and binds them into v, so they can also come from BSTDEMO_* variables.
func registerFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().IntSlice(cfgValues, defaultValues, "Values to insert, in insertion order")
	cmd.Flags().IntSlice(cfgRemove, defaultRemove, "Values to remove after printing, in order")
	cmd.Flags().String(cfgSeparator, strings.Repeat("=", 49), "Line printed between traversals")

	v.SetEnvPrefix(envPrefix)
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()
	for _, name := range []string{
		cfgValues,
		cfgRemove,
		cfgSeparator,
	} {
		v.BindPFlag(name, cmd.Flags().Lookup(name)) // nolint: errcheck
	}
}

// intSlice reads an int list from v. Flags give []int already, environment
// variables give a comma or space separated string.
func intSlice(v *viper.Viper, key string) ([]int, error) {
	raw := v.Get(key)
	s, ok := raw.(string)
	if !ok {
		return v.GetIntSlice(key), nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	vs := make([]int, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid integer %q: %w", key, f, err)
		}
		vs = append(vs, x)
	}
	return vs, nil
}

func printInOrder(w io.Writer, tree *Trees.BSTree[int]) {
	for _, v := range tree.InOrder() {
		fmt.Fprintln(w, v)
	}
}

func run(w io.Writer, values, remove []int, separator string) error {
	tree := Trees.New(values...)
	printInOrder(w, tree)
	fmt.Fprintln(w, separator)
	for _, v := range remove {
		if !tree.Remove(v) {
			fmt.Fprintf(w, "%d not found\n", v)
		}
		printInOrder(w, tree)
		fmt.Fprintln(w, separator)
	}
	if tree.Corrupt() {
		return fmt.Errorf("tree corrupt after removals")
	}
	return nil
}

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
