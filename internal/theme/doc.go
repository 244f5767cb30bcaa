// Package theme rewrites theme pages so that plain-text box labels naming a
// library set become links to that set's library page, showing its box image.
//
// Only boxes whose content is plain text are touched. A box that already holds
// an image or a link is left byte-for-byte as it is, which makes a second pass
// over an already linked page a no-op.
package theme
