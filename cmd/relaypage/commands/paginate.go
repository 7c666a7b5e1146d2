package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ncobase/relaypage/dataset"
	"github.com/ncobase/relaypage/paging"
	"github.com/ncobase/relaypage/types"
	"github.com/spf13/cobra"
)

func newPaginateCommand(a *app) *cobra.Command {
	var (
		first, last   int
		after, before string
		encode        bool
		secret        string
		format        string
		compact       bool
	)

	cmd := &cobra.Command{
		Use:   "paginate [file|-]",
		Short: "Print one page of a dataset as a Relay connection",
		Long: `Paginate loads a JSON or YAML document (a top-level array is a sequence,
a top-level object a mapping) and prints the selected window as JSON.
Use "-" to read standard input. Without a file the dataset configured
under "dataset" is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			flags := cmd.Flags()

			pagingCfg := *a.cfg.Paging
			if flags.Changed("encode") {
				pagingCfg.EncodeCursor = encode
			}
			if flags.Changed("secret") {
				pagingCfg.Secret = secret
			}
			if pagingCfg.EncodeCursor && pagingCfg.Secret == "" {
				return errors.New("encoded cursors need a secret: set paging.secret or pass --secret (see keygen)")
			}

			p, err := paging.NewPaginator(ctx, &pagingCfg, a.logger)
			if err != nil {
				return err
			}

			var d *dataset.Dataset
			switch {
			case len(args) == 0:
				d, err = dataset.Open(ctx, a.cfg.Dataset)
			case args[0] == "-":
				d, err = dataset.Decode(cmd.InOrStdin(), format)
			default:
				d, err = dataset.LoadFile(args[0])
			}
			if err != nil {
				return err
			}

			pageArgs := paging.Args{
				First:  types.OptionalPointer(first, flags.Changed("first")),
				Last:   types.OptionalPointer(last, flags.Changed("last")),
				After:  types.OptionalPointer(after, flags.Changed("after")),
				Before: types.OptionalPointer(before, flags.Changed("before")),
			}
			conn, err := d.Page(ctx, p, pageArgs)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if !compact {
				enc.SetIndent("", "  ")
			}
			if err := enc.Encode(conn); err != nil {
				return fmt.Errorf("failed to write connection: %w", err)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&first, "first", 0, "return at most N items from the start of the window")
	flags.IntVar(&last, "last", 0, "return at most N items from the end of the window")
	flags.StringVar(&after, "after", "", "start after this cursor")
	flags.StringVar(&before, "before", "", "end before this cursor")
	flags.BoolVar(&encode, "encode", false, "emit opaque cursors (overrides paging.encode_cursor)")
	flags.StringVar(&secret, "secret", "", "cursor secret (overrides paging.secret)")
	flags.StringVar(&format, "format", dataset.FormatJSON, "stdin document format: json or yaml")
	flags.BoolVar(&compact, "compact", false, "print compact JSON")
	return cmd
}
