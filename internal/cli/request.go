// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/onereq/onereq"
	"github.com/onereq/onereq/onereqerr"
)

// methodFlags holds the flag values shared by every method subcommand.
// One instance is bound per cobra.Command.
type methodFlags struct {
	headers      []string
	timeoutMs    int
	body         string
	bodyFile     string
	bodyEncoding string
	noJSON       bool
	cancelAfter  int
}

// newMethodCmd returns the subcommand for one recognized HTTP method,
// e.g. "get" or "post".
func newMethodCmd(method string) *cobra.Command {
	f := &methodFlags{}
	cmd := &cobra.Command{
		Use:   method + " <url>",
		Short: fmt.Sprintf("Send a single %s request", strings.ToUpper(method)),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMethod(method, args[0], f)
		},
	}
	cmd.Flags().StringArrayVar(&f.headers, "header", nil, "request header as key:value (repeatable)")
	cmd.Flags().IntVar(&f.timeoutMs, "timeout", onereq.DefaultTimeoutMs, "timeout in milliseconds")
	cmd.Flags().StringVar(&f.body, "body", "", "request body as a literal string, mutually exclusive with --body-file")
	cmd.Flags().StringVar(&f.bodyFile, "body-file", "", "path to a file to send as the request body")
	cmd.Flags().StringVar(&f.bodyEncoding, "body-encoding", "utf8", "encoding of --body/--body-file's text")
	cmd.Flags().BoolVar(&f.noJSON, "no-json", false, "disable auto-decoding of a JSON response body")
	cmd.Flags().IntVar(&f.cancelAfter, "cancel-after", 0, "if set, call Cancel() this many milliseconds after Perform()")
	return cmd
}

func runMethod(method, rawURL string, f *methodFlags) error {
	if f.body != "" && f.bodyFile != "" {
		return fmt.Errorf("--body and --body-file are mutually exclusive")
	}

	opts := []onereq.Option{
		onereq.WithMethod(strings.ToUpper(method)),
		onereq.WithTimeout(f.timeoutMs),
		onereq.WithAutoJSONResponseParse(!f.noJSON),
	}
	for _, h := range f.headers {
		name, value, ok := strings.Cut(h, ":")
		if !ok {
			return fmt.Errorf("invalid --header %q, want key:value", h)
		}
		opts = append(opts, onereq.WithHeader(strings.TrimSpace(name), strings.TrimSpace(value)))
	}

	bodyText := f.body
	if f.bodyFile != "" {
		raw, err := os.ReadFile(f.bodyFile)
		if err != nil {
			return fmt.Errorf("reading --body-file: %w", err)
		}
		bodyText = string(raw)
	}
	if bodyText != "" {
		opts = append(opts, onereq.WithBodyText(bodyText, f.bodyEncoding))
	}

	req, err := onereq.NewRequest(rawURL, opts...)
	if err != nil {
		return reportErr(err)
	}

	if f.cancelAfter > 0 {
		go func() {
			time.Sleep(time.Duration(f.cancelAfter) * time.Millisecond)
			_, _ = req.Cancel()
		}()
	}

	resp, err := req.Perform()
	if err != nil {
		return reportErr(err)
	}

	fmt.Printf("%d %s\n", resp.StatusCode(), resp.StatusMessage())
	for name, values := range resp.Headers() {
		for _, v := range values {
			fmt.Printf("%s: %s\n", name, v)
		}
	}
	fmt.Println()
	printBody(resp)
	return nil
}

func printBody(resp interface {
	Body() (interface{}, bool)
}) {
	body, ok := resp.Body()
	if !ok {
		return
	}
	switch v := body.(type) {
	case []byte:
		os.Stdout.Write(v)
		fmt.Println()
	default:
		pretty, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			fmt.Printf("%v\n", v)
			return
		}
		fmt.Println(string(pretty))
	}
}

// reportErr prints err's onereqerr.Kind and message and returns it
// unmodified so cobra's Execute still sees a non-nil error and exits
// non-zero.
func reportErr(err error) error {
	kind := onereqerr.KindOf(err)
	fmt.Fprintf(os.Stderr, "%s: %s\n", kind, err)
	return err
}
