// Package render turns a composed draft (subject + plain body text) into a
// deliverable email: branded, CSS-inlined HTML plus a plain-text twin.
//
// The body text is treated as markdown (bullet lines become a real list),
// wrapped in the brand's layout, then post-processed: CSS is inlined for
// mail-client compatibility and the plain-text variant is extracted from the
// final HTML so both parts always agree.
//
// Rendering also honors the request context: a subject override, an optional
// long-form/tone intro with per-tone greeting families, and the CTA
// text/URL pair (an empty CTA is valid and simply omits the button).
package render
