// Package brand loads and validates the visual/sending identity used to
// render and deliver emails: colors, logo, copy blocks, sender metadata and
// labeling policy.
//
// Brands live on disk as <dir>/<brand_id>/brand.json (or brand.yaml) and are
// consumed read-only by the rendering and delivery layers. Parsed configs
// are LRU-cached, so repeated renders of the same brand never re-read disk.
package brand
