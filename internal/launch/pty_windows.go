//go:build windows

package launch

import (
	"context"
	"errors"

	"github.com/ruminaider/termpick/internal/logging"
)

var errConPTYUnavailable = errors.New("conpty support not implemented")

func run(_ context.Context, _ *Spec, _ *logging.Logger) error {
	return errConPTYUnavailable
}
