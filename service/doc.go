// Package service exposes archive browsing over JSON-RPC. Each TCP
// connection gets its own session with a private store of opened
// documents; adaptors never cross sessions, so the lazy navigation state
// needs no locking of its own.
package service
