package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

type cleanupOptions struct {
	force  bool
	dryRun bool
	in     io.Reader
	out    io.Writer
}

func runCleanup(ctx context.Context, reg registry, opts cleanupOptions) error {
	if opts.dryRun {
		expired, err := reg.CountExpired(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count expired pending verifications")
		}

		fmt.Fprintf(opts.out, "%d expired pending verification(s) would be deleted\n", expired)

		return nil
	}

	deleted, err := reg.CleanupExpired(ctx, opts.force, promptConfirm(opts.in, opts.out))
	if errors.Is(err, domainerrors.ErrCleanupNotConfirmed) {
		fmt.Fprintln(opts.out, "Cleanup cancelled")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to clean up expired pending verifications")
	}

	fmt.Fprintf(opts.out, "Deleted %d expired pending verification(s)\n", deleted)

	return nil
}

// promptConfirm asks on out and accepts only a literal "yes" on in.
func promptConfirm(in io.Reader, out io.Writer) usecase.ConfirmFunc {
	return func(expired int64) bool {
		fmt.Fprintf(out, "Delete %d expired pending verification(s)? Type 'yes' to continue: ", expired)

		answer, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && answer == "" {
			return false
		}

		return strings.TrimSpace(answer) == "yes"
	}
}
