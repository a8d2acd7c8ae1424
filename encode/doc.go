// Package encode turns browse render descriptions into text for
// terminals. It walks adaptors to a bounded depth, so a single call can
// produce either a one-node view or an indented tree, optionally
// colorized for ttys.
package encode
