package wire

import "errors"

// ErrUnknownMessageType means an envelope's "type" field did not match
// any message this package's codec knows how to decode, or named a
// message whose content is required but missing.
var ErrUnknownMessageType = errors.New("wire: unknown or malformed message envelope")
