package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
)

func runStats(ctx context.Context, reg registry, out io.Writer) error {
	stats, err := reg.Stats(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load pending verification stats")
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "pending\t%d\n", stats.Pending)
	fmt.Fprintf(w, "expired\t%d\n", stats.Expired)
	fmt.Fprintf(w, "active\t%d\n", stats.Pending-stats.Expired)

	return errors.WithStack(w.Flush())
}
