// Package cli provides the interactive NauticalFlow admin console.
//
// It wires configuration, the session store, the request gateway and an
// interactive REPL. Typical flow: restore or prompt for a session, start
// the background watchers, then execute user commands.
//
// Key features:
//   - Login / Logout / Whoami
//   - Guarded backend calls: get, post, put, patch, delete
//   - Online status watcher (ping on an interval)
//   - Logout propagation between consoles sharing a redis store
//
// Every logout, whatever its cause, ends with the session controller
// navigating the App to the entry path; the App then asks for credentials
// again. The REPL is started via App.Run(ctx), which blocks until the user
// exits.
package cli
