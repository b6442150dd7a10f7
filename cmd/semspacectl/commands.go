package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/deepx/semspace/pkg/infra/httpx"
	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"gopkg.in/yaml.v3"
)

const (
	defaultServer  = "http://127.0.0.1:8000"
	defaultTimeout = 5 * time.Minute
)

var newClient = func() httpx.Doer {
	return httpx.NewFastHTTPClient(httpx.WithTimeout(defaultTimeout))
}

type errorPayload struct {
	Error string `json:"error"`
}

func newRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "semspacectl",
		Short:         "Command line client for the SemSpace API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().String("server", defaultServer, "SemSpace API base URL")
	rootCmd.PersistentFlags().StringP("output", "o", "json", "Output format: json or yaml")

	rootCmd.AddCommand(
		sentenceCmd("expand", "Expand a sentence into ideas", "/expand"),
		sentenceCmd("continuum", "Generate a wide range of ideas around a sentence", "/expand_continuum"),
		sentenceCmd("embed", "Embed a sentence and add it to the index", "/embed"),
		searchCmd(),
		exploreCmd(),
		statsCmd(),
	)
	return rootCmd
}

func sentenceCmd(use, short, path string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <sentence>",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return post(cmd, path, map[string]interface{}{
				"sentence": strings.Join(args, " "),
			})
		},
	}
}

func searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <sentence>",
		Short: "Find the nearest indexed sentences",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			neighbors, _ := cmd.Flags().GetInt("neighbors")
			return post(cmd, "/search", map[string]interface{}{
				"sentence":  strings.Join(args, " "),
				"neighbors": neighbors,
			})
		},
	}
	cmd.Flags().IntP("neighbors", "k", 5, "Number of neighbours to return")
	return cmd
}

func exploreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore <sentence>",
		Short: "Expand a sentence and project it with its ideas into 3D",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{
				"sentence": strings.Join(args, " "),
			}
			if projector, _ := cmd.Flags().GetString("projector"); projector != "" {
				payload["projector"] = projector
			}
			return post(cmd, "/explore", payload)
		},
	}
	cmd.Flags().String("projector", "", "Projection method: umap or tsne (server default when empty)")
	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show index size and dimension",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := httpx.GetJSON(cmd.Context(), newClient(), endpoint(cmd, "/stats"), nil, defaultTimeout)
			if err != nil {
				return err
			}
			return render(cmd, resp)
		},
	}
}

func endpoint(cmd *cobra.Command, path string) string {
	server, _ := cmd.Flags().GetString("server")
	return strings.TrimRight(server, "/") + path
}

func post(cmd *cobra.Command, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	resp, err := httpx.PostJSON(cmd.Context(), newClient(), endpoint(cmd, path), nil, body, defaultTimeout)
	if err != nil {
		return err
	}
	return render(cmd, resp)
}

// render prints a successful response in the selected format and turns error
// responses into command errors.
func render(cmd *cobra.Command, resp *httpx.Response) error {
	if resp.StatusCode != fasthttp.StatusOK {
		var payload errorPayload
		if err := json.Unmarshal(resp.Body, &payload); err != nil || payload.Error == "" {
			return fmt.Errorf("status %d", resp.StatusCode)
		}
		return fmt.Errorf("status %d: %s", resp.StatusCode, payload.Error)
	}

	format, _ := cmd.Flags().GetString("output")
	var decoded interface{}
	if err := json.Unmarshal(resp.Body, &decoded); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(decoded)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(decoded); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.New("unsupported output format: " + format)
	}
}
