package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var attachFlag bool

var resolveCmd = &cobra.Command{
	Use:   "resolve WORD SPEC",
	Short: "Resolve a particle allomorph for a word",
	Long: "Prints the surface form of the particle named by SPEC after WORD. " +
		"A SPEC that is not a known particle form is fused through the copula 이다.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := newResolver()
		if err != nil {
			return err
		}
		word, spec := args[0], args[1]
		if attachFlag {
			fmt.Println(resolver.Attach(word, spec))
			return nil
		}
		fmt.Println(resolver.Resolve(word, spec))
		return nil
	},
}

func init() {
	resolveCmd.Flags().BoolVarP(&attachFlag, "attach", "a", false, "Print the word with the particle appended")
	RootCmd.AddCommand(resolveCmd)
}
