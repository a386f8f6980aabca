package runtime

import (
	"context"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/nxadm/tail"
	"golang.org/x/sync/errgroup"
)

// WatchFile follows a definitions file, validating each appended line and
// logging a verdict for it. Useful while hand-editing a definitions file:
// feedback arrives as soon as a line is written. Returns when ctx is
// cancelled or the tail fails.
func (s *Session) WatchFile(ctx context.Context, filename string) error {
	t, err := tail.TailFile(filename, tail.Config{
		ReOpen:    true,
		MustExist: true,
		Follow:    true,
	})
	if err != nil {
		return err
	}
	log := s.log.Named("watch").With("file", filename)
	log.Info("Watching definitions file")

	lines := make(chan string)
	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		defer close(lines)
		for {
			select {
			case <-ctx.Done():
				_ = t.Stop()
				return ctx.Err()
			case l, ok := <-t.Lines:
				if !ok {
					return nil
				}
				if l.Err != nil {
					return l.Err
				}
				select {
				case lines <- l.Text:
				case <-ctx.Done():
					_ = t.Stop()
					return ctx.Err()
				}
			}
		}
	})
	grp.Go(func() error {
		for line := range lines {
			s.vetLine(log, line)
		}
		return nil
	})
	return grp.Wait()
}

func (s *Session) vetLine(log hclog.Logger, line string) {
	line = strings.TrimSpace(line)
	if skipLine(line) {
		return
	}
	def, err := s.Parse(line)
	if err != nil {
		log.Error("Invalid key definition", "definition", line, "error", err)
		return
	}
	log.Info("Valid key definition", "definition", def.String())
}
