// SPDX-License-Identifier: MIT

package store

import (
	"log/slog"

	"github.com/katalvlaran/lvarray/internal/logging"
)

var logger = logging.NoopLogger()

// SetLogger installs the logger used for segmentation decisions.
// A nil logger disables logging. Not safe to call concurrently with
// store construction.
func SetLogger(l *slog.Logger) {
	if l == nil {
		logger = logging.NoopLogger()
		return
	}
	logger = &logging.Logger{Logger: l}
}
