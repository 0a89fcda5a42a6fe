package export

import "errors"

// ErrUnsupportedFormat is returned for formats other than csv and json.
var ErrUnsupportedFormat = errors.New("unsupported export format")
