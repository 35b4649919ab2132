package massrename

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/BrandonKowalski/massrename/internal/logging"
)

const (
	pathBatchSize = 256
	maxPathBytes  = 64 * 1024
)

// ReadPaths reads newline separated paths from r and sends them to out in
// batches of FilesReceived. Blank lines and trailing carriage returns are
// dropped. It returns when r is exhausted, on a read error, or when ctx is
// cancelled while waiting to send; a blocked read is not interrupted.
func ReadPaths(ctx context.Context, r io.Reader, out chan<- Message) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxPathBytes)

	total := 0
	batch := make([]string, 0, pathBatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		select {
		case out <- FilesReceived{Paths: batch}:
			total += len(batch)
			batch = make([]string, 0, pathBatchSize)
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := strings.TrimSuffix(scanner.Text(), "\r")
		if path == "" {
			continue
		}

		batch = append(batch, path)
		if len(batch) == pathBatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read paths: %w", err)
	}

	if err := flush(); err != nil {
		return err
	}

	logging.GetLogger().Debug("Finished reading paths", "count", total)
	return nil
}
