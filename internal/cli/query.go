package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/five82/wolfy/internal/wolfram"
)

// requestTimeout bounds one CLI request locally. It is never retried.
const requestTimeout = 30 * time.Second

func newShortCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "short <query>",
		Short: "Print the short answer (/v1/result)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnswer(cmd, e, args, (*wolfram.Client).ShortAnswer)
		},
	}
}

func newSpokenCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "spoken <query>",
		Short: "Print the spoken-form answer (/v1/spoken)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnswer(cmd, e, args, (*wolfram.Client).Spoken)
		},
	}
}

type answerFunc func(c *wolfram.Client, ctx context.Context, input string, opts wolfram.AnswerOptions) (string, error)

func runAnswer(cmd *cobra.Command, e *env, args []string, call answerFunc) error {
	input, err := joinInput(args)
	if err != nil {
		return err
	}
	units, err := e.unitsOption()
	if err != nil {
		return err
	}
	client, err := e.client()
	if err != nil {
		return err
	}

	answer, err := call(client, cmd.Context(), input, wolfram.AnswerOptions{Units: units, Timeout: e.cfg.Timeout})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), answer)
	return nil
}

func newSimpleCmd(e *env) *cobra.Command {
	var (
		output     string
		dataURL    bool
		layout     string
		background string
		foreground string
		fontSize   int
		width      int
	)

	cmd := &cobra.Command{
		Use:   "simple <query>",
		Short: "Save the rendered answer image (/v1/simple)",
		Long: "Fetches the image answer. Without --output the image is written to a new\n" +
			"file in the OS temp directory and its path is printed. Use --output - to\n" +
			"write the raw image to stdout.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := joinInput(args)
			if err != nil {
				return err
			}
			units, err := e.unitsOption()
			if err != nil {
				return err
			}
			client, err := e.client()
			if err != nil {
				return err
			}

			res, err := client.Simple(cmd.Context(), input, wolfram.SimpleOptions{
				Layout:     wolfram.Layout(strings.ToLower(layout)),
				Background: background,
				Foreground: wolfram.Foreground(strings.ToLower(foreground)),
				FontSize:   fontSize,
				Width:      width,
				Units:      units,
				Timeout:    e.cfg.Timeout,
			})
			if err != nil {
				return err
			}
			if !res.HasImage() {
				return fmt.Errorf("no image: %s", res.NoResult)
			}
			return writeImage(cmd.OutOrStdout(), res, output, dataURL)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the image to this file (- for stdout)")
	cmd.Flags().BoolVar(&dataURL, "data-url", false, "Print the image as a base64 data URL instead of saving it")
	cmd.Flags().StringVar(&layout, "layout", "", "Pod layout (divider, labelbar)")
	cmd.Flags().StringVar(&background, "background", "", "Background colour name or hex value")
	cmd.Flags().StringVar(&foreground, "foreground", "", "Text colour (white, black)")
	cmd.Flags().IntVar(&fontSize, "font-size", 0, "Font size in points")
	cmd.Flags().IntVar(&width, "width", 0, "Image width in pixels")
	return cmd
}

func writeImage(out io.Writer, res *wolfram.SimpleResult, output string, dataURL bool) error {
	if dataURL {
		fmt.Fprintln(out, res.DataURL())
		return nil
	}
	if output == "-" {
		_, err := out.Write(res.Image)
		return err
	}

	var path string
	if output == "" {
		pattern := "wolfy-*"
		if res.Ext != "" {
			pattern += "." + res.Ext
		}
		file, err := os.CreateTemp("", pattern)
		if err != nil {
			return fmt.Errorf("create image file: %w", err)
		}
		path = file.Name()
		_, werr := file.Write(res.Image)
		cerr := file.Close()
		if werr != nil {
			return fmt.Errorf("write image: %w", werr)
		}
		if cerr != nil {
			return fmt.Errorf("write image: %w", cerr)
		}
	} else {
		path = filepath.Clean(output)
		if err := os.WriteFile(path, res.Image, 0o644); err != nil {
			return fmt.Errorf("write image: %w", err)
		}
	}

	fmt.Fprintf(out, "%s (%s, %s)\n", path, res.ContentType, humanize.Bytes(uint64(len(res.Image))))
	return nil
}

func newFullCmd(e *env) *cobra.Command {
	var (
		output      string
		formats     []string
		includePods []string
		excludePods []string
		podTitles   []string
		ip          string
		latLong     string
		location    string
		width       int
		maxWidth    int
		plotWidth   int
		mag         float64
		reinterpret bool
		translation bool
		ignoreCase  bool
		primaryOnly bool
	)

	cmd := &cobra.Command{
		Use:   "full <query>",
		Short: "Run a full query (/v2/query)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := joinInput(args)
			if err != nil {
				return err
			}
			units, err := e.unitsOption()
			if err != nil {
				return err
			}
			parsedFormats, err := wolfram.ParseFormats(strings.Join(formats, ","))
			if err != nil {
				return err
			}
			switch output {
			case "text", "json", "yaml":
			default:
				return fmt.Errorf("unknown output %q (want text, json or yaml)", output)
			}
			client, err := e.client()
			if err != nil {
				return err
			}

			resp, err := client.Full(cmd.Context(), input, wolfram.FullOptions{
				Formats:       parsedFormats,
				IncludePodIDs: includePods,
				ExcludePodIDs: excludePods,
				PodTitles:     podTitles,
				Location:      wolfram.Location{IP: ip, LatLong: latLong, Location: location},
				Size:          wolfram.Size{Width: width, MaxWidth: maxWidth, PlotWidth: plotWidth, Mag: mag},
				Reinterpret:   reinterpret,
				Translation:   translation,
				IgnoreCase:    ignoreCase,
				Units:         units,
				Timeout:       e.cfg.Timeout,
			})
			if err != nil {
				return err
			}
			e.logger.Debug("full query",
				"success", resp.QueryResult.Success,
				"numpods", resp.QueryResult.NumPods,
				"timing", resp.QueryResult.Timing,
			)

			if primaryOnly {
				text := resp.QueryResult.PrimaryText()
				if text == "" {
					return fmt.Errorf("no primary result")
				}
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}
			return writeFull(cmd.OutOrStdout(), resp, output)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "text", "Output format (text, json, yaml)")
	flags.StringSliceVar(&formats, "format", []string{string(wolfram.FormatPlainText)}, "Pod formats (image, imagemap, plaintext, minput, moutput, cell, mathml, sound, wav)")
	flags.StringArrayVar(&includePods, "include-pod", nil, "Only return pods with this id (repeatable)")
	flags.StringArrayVar(&excludePods, "exclude-pod", nil, "Drop pods with this id (repeatable)")
	flags.StringArrayVar(&podTitles, "pod-title", nil, "Only return pods with this title (repeatable)")
	flags.StringVar(&ip, "ip", "", "Caller IP address used for location")
	flags.StringVar(&latLong, "latlong", "", "Caller location as lat,long")
	flags.StringVar(&location, "location", "", "Caller location as a place name")
	flags.IntVar(&width, "width", 0, "Image width in pixels")
	flags.IntVar(&maxWidth, "max-width", 0, "Maximum image width in pixels")
	flags.IntVar(&plotWidth, "plot-width", 0, "Plot width in pixels")
	flags.Float64Var(&mag, "mag", 0, "Image magnification")
	flags.BoolVar(&reinterpret, "reinterpret", false, "Let the API reinterpret queries it does not understand")
	flags.BoolVar(&translation, "translation", false, "Allow translation of non-English queries")
	flags.BoolVar(&ignoreCase, "ignore-case", false, "Ignore case in the query")
	flags.BoolVar(&primaryOnly, "primary", false, "Print only the primary result text")
	return cmd
}

func writeFull(out io.Writer, resp *wolfram.FullResponse, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	qr := resp.QueryResult
	if !qr.Success {
		fmt.Fprintln(out, "No result")
		for _, dym := range qr.DidYouMeans {
			fmt.Fprintf(out, "  did you mean: %s\n", dym.Val)
		}
		for _, tip := range qr.Tips {
			fmt.Fprintf(out, "  tip: %s\n", tip.Text)
		}
		return nil
	}
	for _, pod := range qr.Pods {
		text := pod.Text()
		if text == "" {
			continue
		}
		fmt.Fprintf(out, "%s:\n", pod.Title)
		for _, line := range strings.Split(text, "\n") {
			fmt.Fprintf(out, "  %s\n", line)
		}
	}
	return nil
}
