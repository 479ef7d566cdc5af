package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/reusee/bfc/logs"
	"github.com/reusee/bfc/nets"
	"github.com/reusee/bfc/programs"
)

// MaxSize bounds remote and stdin sources.
const MaxSize = 64 << 20

var ErrTooLarge = errors.New("source too large")

// Load reads and parses the program named by ref: a file path, "-" for
// stdin, or an http(s) URL.
type Load func(ctx context.Context, ref string) (*programs.Program, error)

func (Module) Load(
	client nets.HTTPClient,
	stdin Stdin,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, ref string) (*programs.Program, error) {
		content, err := read(ctx, client, stdin, ref)
		if err != nil {
			return nil, err
		}
		logger.DebugContext(ctx, "source loaded",
			"ref", ref,
			"bytes", len(content),
		)
		return programs.ParseBytes(name(ref), content)
	}
}

func name(ref string) string {
	if ref == "-" {
		return "<stdin>"
	}
	return ref
}

func isURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") ||
		strings.HasPrefix(ref, "https://")
}

func read(ctx context.Context, client *http.Client, stdin io.Reader, ref string) ([]byte, error) {
	switch {

	case ref == "-":
		if stdin == nil {
			return nil, nil
		}
		return readLimited(stdin, ref)

	case isURL(ref):
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
		if err != nil {
			return nil, err
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", ref, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch %s: %s", ref, resp.Status)
		}
		return readLimited(resp.Body, ref)

	}

	content, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return content, nil
}

func readLimited(r io.Reader, ref string) ([]byte, error) {
	content, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ref, err)
	}
	if len(content) > MaxSize {
		return nil, fmt.Errorf("%w: %s", ErrTooLarge, ref)
	}
	return content, nil
}
