package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/wolfy/internal/history"
	"github.com/five82/wolfy/internal/wolfram"
)

// queryResultMsg carries a finished query back into Update.
type queryResultMsg struct {
	entry history.Entry
}

// querySettings holds the per-request options shared by every endpoint.
type querySettings struct {
	units    wolfram.Units
	timeout  int
	imageDir string
}

func runQuery(ctx context.Context, client wolfram.Querier, endpoint Endpoint, input string, s querySettings) tea.Cmd {
	return func() tea.Msg {
		started := time.Now()
		answer, err := dispatch(ctx, client, endpoint, input, s)
		return queryResultMsg{entry: history.Entry{
			Endpoint: string(endpoint),
			Input:    input,
			Answer:   answer,
			Err:      err,
			Started:  started,
			Elapsed:  time.Since(started),
		}}
	}
}

func dispatch(ctx context.Context, client wolfram.Querier, endpoint Endpoint, input string, s querySettings) (string, error) {
	answerOpts := wolfram.AnswerOptions{Units: s.units, Timeout: s.timeout}

	switch endpoint {
	case EndpointSpoken:
		return client.Spoken(ctx, input, answerOpts)
	case EndpointFull:
		resp, err := client.Full(ctx, input, wolfram.FullOptions{
			Formats: []wolfram.Format{wolfram.FormatPlainText},
			Units:   s.units,
			Timeout: s.timeout,
		})
		if err != nil {
			return "", err
		}
		return formatFull(resp.QueryResult), nil
	case EndpointSimple:
		res, err := client.Simple(ctx, input, wolfram.SimpleOptions{Units: s.units, Timeout: s.timeout})
		if err != nil {
			return "", err
		}
		return saveSimple(res, s.imageDir)
	default:
		return client.ShortAnswer(ctx, input, answerOpts)
	}
}

// formatFull renders pods as "title" headings followed by their plaintext.
// Unsuccessful queries fall back to the suggestions the API offers.
func formatFull(qr wolfram.QueryResult) string {
	var b strings.Builder
	for _, pod := range qr.Pods {
		text := pod.Text()
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("# " + pod.Title + "\n")
		b.WriteString(text)
	}
	if b.Len() > 0 {
		return b.String()
	}

	lines := []string{"No result"}
	for _, dym := range qr.DidYouMeans {
		lines = append(lines, "did you mean: "+dym.Val)
	}
	for _, tip := range qr.Tips {
		lines = append(lines, "tip: "+tip.Text)
	}
	return strings.Join(lines, "\n")
}

// saveSimple writes the returned image under dir and describes it.
func saveSimple(res *wolfram.SimpleResult, dir string) (string, error) {
	if !res.HasImage() {
		if res == nil {
			return "", nil
		}
		return res.NoResult, nil
	}
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create image dir: %w", err)
	}
	pattern := "wolfy-*"
	if res.Ext != "" {
		pattern += "." + res.Ext
	}
	file, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer file.Close()
	if _, err := file.Write(res.Image); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return fmt.Sprintf("%s, %d bytes saved to %s", res.ContentType, len(res.Image), filepath.Clean(file.Name())), nil
}
