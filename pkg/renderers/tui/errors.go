package tui

import "errors"

// ErrAborted reports that the user interrupted the prompt session. Partial
// edit batches are discarded; nothing reaches the host.
var ErrAborted = errors.New("tui: session aborted")
