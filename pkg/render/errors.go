package render

import "errors"

// ErrRenderFailed wraps any template, markdown or CSS-inlining failure.
var ErrRenderFailed = errors.New("render: failed to render email")
