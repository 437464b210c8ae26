// Package tokenstore owns the client's session token.
//
// A Store holds at most one opaque token. Every effective mutation bumps a
// revision counter, which the Watcher polls to notice changes made by any
// process sharing the same database file. Changes are fanned out to
// subscribers through a Broker.
package tokenstore
