package channel

import "github.com/g3n/panima/util/logger"

// Package logger, named the way every g3n subsystem names its own
// (animation/logger.go, gls/logger.go, ...): a child of the shared
// default logger, filtered to ERROR unless a host raises the level.
var log = logger.New("CHANNEL", logger.Default)
