package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"kosa/pkg/kosa"
)

var splitCmd = &cobra.Command{
	Use:   "split SYLLABLE",
	Short: "Split a Hangul syllable into its phonemes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		onset, nucleus, coda, err := kosa.SplitPhonemes(args[0])
		if err != nil {
			return err
		}
		if coda == "" {
			fmt.Printf("%s %s\n", onset, nucleus)
			return nil
		}
		fmt.Printf("%s %s %s\n", onset, nucleus, coda)
		return nil
	},
}

var joinCmd = &cobra.Command{
	Use:   "join ONSET NUCLEUS [CODA]",
	Short: "Compose a Hangul syllable from phonemes",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		coda := ""
		if len(args) == 3 {
			coda = args[2]
		}
		syllable, err := kosa.JoinPhonemes(args[0], args[1], coda)
		if err != nil {
			return err
		}
		fmt.Println(syllable)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(splitCmd)
	RootCmd.AddCommand(joinCmd)
}
