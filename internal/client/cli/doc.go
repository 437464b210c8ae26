// Package cli is the interactive photoalbum client.
//
// Each screen of the album is a REPL command:
//
//   - home, status: whether the user is logged in
//   - register: create an account (only while logged out)
//   - login, logout
//   - list: the user's pictures
//   - upload <path>: send a picture
//   - delete <id>: remove a picture after confirmation
//
// App.Run starts the token watcher and the session gate in the background
// and blocks in the REPL until the user exits or input ends.
package cli
