package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/vectorizer-go"
	"github.com/ironsheep/vectorizer-go/internal/imaging"
)

func downloadCmd(g *globalFlags) *cobra.Command {
	var receipt, format, svgVersion, out string

	c := &cobra.Command{
		Use:   "download <image-token>",
		Short: "Download a retained image again, e.g. in another format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &vectorizer.DownloadRequest{
				ImageToken: args[0],
				Receipt:    receipt,
				Output: vectorizer.OutputOptions{
					FileFormat: vectorizer.FileFormat(format),
					SVGVersion: vectorizer.SVGVersion(svgVersion),
				},
			}
			// Fail on bad flags before credentials are looked up.
			if err := req.Validate(); err != nil {
				return err
			}

			client, _, err := g.setup()
			if err != nil {
				return err
			}
			res, err := client.Download(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), res, outputPath(out, "", args[0], res))
		},
	}

	c.Flags().StringVar(&receipt, "receipt", "", "Receipt from a preview result")
	c.Flags().StringVar(&format, "format", "", "Output format: svg|eps|pdf|dxf|png")
	c.Flags().StringVar(&svgVersion, "svg-version", "", "SVG version: svg_1_0|svg_1_1|svg_tiny_1_2")
	c.Flags().StringVarP(&out, "out", "o", "", `Output file, "-" for stdout (default: <image-token>.<ext>)`)
	return c
}

func deleteCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <image-token>",
		Short: "Delete a retained image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := g.setup()
			if err != nil {
				return err
			}
			res, err := client.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

func accountCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show subscription status and remaining credits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := g.setup()
			if err != nil {
				return err
			}
			res, err := client.Account(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

func paletteCmd() *cobra.Command {
	var count int
	var minDistance float64

	c := &cobra.Command{
		Use:   "palette <image>",
		Short: "Suggest a --palette value from the dominant colors of a local image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := suggestPalette(imaging.NewImageCache(), args[0], count, minDistance)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), p.String())
			return err
		},
	}

	c.Flags().IntVarP(&count, "count", "n", 8, "Maximum number of colors")
	c.Flags().Float64Var(&minDistance, "min-distance", 0.1, "Minimum Lab distance between colors")
	return c
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <image>",
		Short: "Show dimensions and format of a local image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := imaging.LoadImageInfo(imaging.NewImageCache(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), info)
		},
	}
}

func versionCmd(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "vectorizer %s (sdk %s)\n", info.Version, vectorizer.Version)
			fmt.Fprintf(w, "  Build time: %s\n", info.BuildTime)
			fmt.Fprintf(w, "  Git commit: %s\n", info.GitCommit)
		},
	}
}
