// Package cli provides the interactive StyloCoin terminal dashboard.
//
// It wires configuration, the local session database, the backend client
// and the page services into a REPL. Typical flow: restore the saved
// session, start a background connectivity watcher, then execute user
// commands until "exit".
//
// Key features:
//   - Sign in / sign up / sign out, with the session kept across runs
//   - Member pages: home, profile, wallet, transactions, deposits, income,
//     mining packages, support tickets
//   - Admin pages: users, deposit confirmation, package management,
//     ticket handling, income report
//
// Every page command passes through a guard before it runs, so signed-out
// users are asked to sign in and members cannot reach admin pages.
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
